package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accessClaims(jti string, userID string, expiresAt *time.Time) *CustomClaims {
	claims := &CustomClaims{UserID: userID, Username: "hanako", Role: RoleMember, TokenType: "access"}
	claims.ID = jti
	if expiresAt != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*expiresAt)
	}
	return claims
}

func TestNewBlacklistedToken(t *testing.T) {
	userID := uuid.New()
	expiry := time.Now().Add(15 * time.Minute).Truncate(time.Second)

	token, err := NewBlacklistedToken(accessClaims("jti-logout", userID.String(), &expiry))

	require.NoError(t, err)
	assert.Equal(t, "jti-logout", token.JTI)
	assert.Equal(t, userID, token.UserID)
	assert.True(t, expiry.Equal(token.ExpiresAt))
}

func TestNewBlacklistedToken_Rejects(t *testing.T) {
	expiry := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		claims *CustomClaims
	}{
		{name: "nil claims"},
		{name: "missing jti", claims: accessClaims("", uuid.NewString(), &expiry)},
		{name: "missing expiry", claims: accessClaims("jti", uuid.NewString(), nil)},
		{name: "user id is not a uuid", claims: accessClaims("jti", "hanako", &expiry)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBlacklistedToken(tt.claims)
			assert.Error(t, err)
		})
	}
}

func TestBlacklistedToken_Blocks(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&BlacklistedToken{ExpiresAt: now.Add(time.Minute)}).Blocks(now))
	assert.False(t, (&BlacklistedToken{ExpiresAt: now}).Blocks(now))
	assert.False(t, (&BlacklistedToken{ExpiresAt: now.Add(-time.Minute)}).Blocks(now))
}
