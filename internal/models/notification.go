package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationKind string

const (
	NotificationFollow      NotificationKind = "follow"
	NotificationLikePost    NotificationKind = "like_post"
	NotificationLikeComment NotificationKind = "like_comment"
	NotificationComment     NotificationKind = "comment"
)

var ErrSelfNotification = errors.New("notification sender and recipient must differ")

func (k NotificationKind) Valid() bool {
	switch k {
	case NotificationFollow, NotificationLikePost, NotificationLikeComment, NotificationComment:
		return true
	}
	return false
}

// Notification records that Sender did something to Recipient's content.
// PostID and CommentID survive as NULL when the target is removed.
type Notification struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	SenderID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID uuid.UUID        `gorm:"type:uuid;not null;index:idx_notifications_recipient_read" json:"recipient_id"`
	Kind        NotificationKind `gorm:"type:varchar(20);not null" json:"kind"`
	PostID      *uuid.UUID       `gorm:"type:uuid" json:"post_id,omitempty"`
	CommentID   *uuid.UUID       `gorm:"type:uuid" json:"comment_id,omitempty"`
	IsRead      bool             `gorm:"not null;default:false;index:idx_notifications_recipient_read" json:"is_read"`
	CreatedAt   time.Time        `gorm:"not null;index" json:"created_at"`

	Sender    *User    `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Recipient *User    `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
	Post      *Post    `gorm:"foreignKey:PostID;constraint:OnDelete:SET NULL" json:"-"`
	Comment   *Comment `gorm:"foreignKey:CommentID;constraint:OnDelete:SET NULL" json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return n.Validate()
}

func (n *Notification) Validate() error {
	if n.SenderID == n.RecipientID {
		return ErrSelfNotification
	}
	if !n.Kind.Valid() {
		return fmt.Errorf("invalid notification kind: %s", n.Kind)
	}
	return nil
}

func (n *Notification) TableName() string {
	return "notifications"
}
