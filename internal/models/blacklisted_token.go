package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlacklistedToken rejects a logged-out access token until the token's own
// expiry. After that the signature check fails anyway and the row is purged
// by the cleanup job.
type BlacklistedToken struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JTI           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"jti"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expires_at"`
	BlacklistedAt time.Time `gorm:"not null" json:"blacklisted_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// NewBlacklistedToken builds the entry for a validated access token.
func NewBlacklistedToken(claims *CustomClaims) (*BlacklistedToken, error) {
	if claims == nil || claims.ID == "" {
		return nil, errors.New("token has no jti")
	}
	if claims.ExpiresAt == nil {
		return nil, errors.New("token has no expiry")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.New("token has no valid user id")
	}

	return &BlacklistedToken{
		JTI:       claims.ID,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (bt *BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}

func (bt *BlacklistedToken) BeforeCreate(tx *gorm.DB) error {
	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	return nil
}

// Blocks reports whether the entry still has to reject its token at now.
func (bt *BlacklistedToken) Blocks(now time.Time) bool {
	return now.Before(bt.ExpiresAt)
}
