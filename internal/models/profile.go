package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultAvatar = "avatars/default.png"

// Profile is the public face of a user. It is created together with the user
// and removed with it.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Bio       *string   `gorm:"type:text" json:"bio"`
	Avatar    string    `gorm:"type:varchar(255);not null;default:'avatars/default.png'" json:"avatar"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Avatar == "" {
		p.Avatar = DefaultAvatar
	}
	return p.Validate()
}

func (p *Profile) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user_id is required")
	}
	return nil
}

func (p *Profile) TableName() string {
	return "profiles"
}
