package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_Usable(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Minute)
	successor := uuid.New()

	tests := []struct {
		name   string
		token  RefreshToken
		usable bool
	}{
		{
			name:   "live session",
			token:  RefreshToken{ExpiresAt: now.Add(7 * 24 * time.Hour)},
			usable: true,
		},
		{
			name:  "expires exactly now",
			token: RefreshToken{ExpiresAt: now},
		},
		{
			name:  "revoked at logout",
			token: RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &earlier},
		},
		{
			name:  "rotated into a successor",
			token: RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &earlier, ReplacedByID: &successor},
		},
	}

	for i := range tests {
		tt := &tests[i]
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.usable, tt.token.Usable(now))
		})
	}
}

func TestRefreshToken_Replayed(t *testing.T) {
	revokedAt := time.Now()
	successor := uuid.New()

	assert.False(t, (&RefreshToken{}).Replayed())
	assert.False(t, (&RefreshToken{RevokedAt: &revokedAt}).Replayed(), "logout revocation has no successor")
	assert.True(t, (&RefreshToken{RevokedAt: &revokedAt, ReplacedByID: &successor}).Replayed())
}

func TestRefreshToken_MatchesJTI(t *testing.T) {
	token := RefreshToken{ID: uuid.New()}

	assert.True(t, token.MatchesJTI(token.ID.String()))
	assert.False(t, token.MatchesJTI(uuid.NewString()))
	assert.False(t, token.MatchesJTI(""))
}
