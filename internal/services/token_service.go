package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lifehub/internal/config"
	"lifehub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	bearerPrefix = "bearer "
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService signs and verifies RS256 tokens. Access tokens carry the
// username and role of the member. A refresh token carries only the user id,
// and its jti is the id of the refresh_tokens row that tracks it.
type TokenService struct {
	config.JWTConfig
}

func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return &TokenService{
		JWTConfig: *jwtConfig,
	}
}

func (ts *TokenService) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, errors.New("user cannot be nil")
	}

	claims := models.CustomClaims{
		UserID:    user.ID.String(),
		Username:  user.Username,
		Role:      user.Role,
		TokenType: TokenTypeAccess,
	}
	return ts.sign(claims, uuid.NewString(), ts.AccessTokenDuration)
}

// GenerateRefreshToken signs a refresh token whose jti is tokenID. The caller
// stores the matching row under the same id.
func (ts *TokenService) GenerateRefreshToken(userID, tokenID uuid.UUID) (string, time.Time, error) {
	if userID == uuid.Nil {
		return "", time.Time{}, errors.New("user ID cannot be nil")
	}
	if tokenID == uuid.Nil {
		return "", time.Time{}, errors.New("token ID cannot be nil")
	}

	claims := models.CustomClaims{
		UserID:    userID.String(),
		TokenType: TokenTypeRefresh,
	}
	return ts.sign(claims, tokenID.String(), ts.RefreshTokenDuration)
}

func (ts *TokenService) sign(claims models.CustomClaims, jti string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    ts.Issuer,
		Subject:   claims.UserID,
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}
	return signed, expiresAt, nil
}

func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	return ts.validate(tokenString, TokenTypeAccess)
}

func (ts *TokenService) ValidateRefreshToken(tokenString string) (*models.CustomClaims, error) {
	return ts.validate(tokenString, TokenTypeRefresh)
}

// ExtractTokenFromHeader accepts "Bearer <token>" with any casing of the scheme.
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

// GetJTI reads the jti without checking the signature.
func (ts *TokenService) GetJTI(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	claims := &models.CustomClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	return claims.ID, nil
}

func (ts *TokenService) validate(tokenString, expectedType string) (*models.CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ts.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	switch {
	case claims.Issuer != ts.Issuer:
		return nil, ErrInvalidIssuer
	case claims.TokenType != expectedType:
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.PublicKey, nil
}
