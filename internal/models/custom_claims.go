package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims is the payload of access and refresh tokens. Refresh tokens
// carry only UserID and TokenType.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}
