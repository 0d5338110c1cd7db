package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken tracks one issued refresh JWT by the SHA-256 of its text. The
// row id doubles as the token's jti. Refreshing revokes the row and points it
// at its successor, so a rotated token that shows up again is a replay.
type RefreshToken struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash    string     `gorm:"type:char(64);not null;index" json:"-"`
	ExpiresAt    time.Time  `gorm:"not null;index" json:"expires_at"`
	RevokedAt    *time.Time `gorm:"index" json:"revoked_at,omitempty"`
	ReplacedByID *uuid.UUID `gorm:"type:uuid" json:"replaced_by_id,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (rt *RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	return nil
}

// Usable reports whether the token may still be exchanged at now.
func (rt *RefreshToken) Usable(now time.Time) bool {
	return rt.RevokedAt == nil && now.Before(rt.ExpiresAt)
}

// Replayed reports a token that was already exchanged once. Logout revokes
// without a successor, so only rotated tokens count.
func (rt *RefreshToken) Replayed() bool {
	return rt.RevokedAt != nil && rt.ReplacedByID != nil
}

// MatchesJTI checks the row against the jti of the presented token.
func (rt *RefreshToken) MatchesJTI(jti string) bool {
	return rt.ID.String() == jti
}
