package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DeletedMessageBody replaces the body of a soft-deleted message.
	DeletedMessageBody = "このメッセージは削除されました。"

	ReplySubjectPrefix   = "Re: "
	ForwardSubjectPrefix = "Fwd: "

	forwardBodyTemplate = "\n\n---- Original Message ----\nFrom: %s\nTo: %s\nDate: %s\n\n%s"
)

type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_recipient_read" json:"recipient_id"`
	Subject     string    `gorm:"type:varchar(100);not null" json:"subject"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	IsRead      bool      `gorm:"not null;default:false;index:idx_messages_recipient_read" json:"is_read"`
	IsEdited    bool      `gorm:"not null;default:false" json:"is_edited"`
	Deleted     bool      `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Sender      *User        `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Recipient   *User        `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE" json:"attachments"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return m.Validate()
}

func (m *Message) Validate() error {
	if m.SenderID == uuid.Nil || m.RecipientID == uuid.Nil {
		return errors.New("sender and recipient are required")
	}
	if strings.TrimSpace(m.Subject) == "" {
		return errors.New("subject is required")
	}
	if utf8.RuneCountInString(m.Subject) > MaxTitleLength {
		return errors.New("subject must be at most 100 characters")
	}
	if strings.TrimSpace(m.Body) == "" {
		return errors.New("body is required")
	}
	return nil
}

// SoftDelete blanks the body and marks the message as edited. The row stays.
func (m *Message) SoftDelete() {
	m.Body = DeletedMessageBody
	m.IsEdited = true
	m.Deleted = true
}

// IsDeleted reports the stored flag only. A body that happens to equal
// DeletedMessageBody is ordinary text.
func (m *Message) IsDeleted() bool {
	return m.Deleted
}

func (m *Message) IsParticipant(userID uuid.UUID) bool {
	return m.SenderID == userID || m.RecipientID == userID
}

func (m *Message) ReplySubject() string {
	return ReplySubjectPrefix + m.Subject
}

func (m *Message) ForwardSubject() string {
	return ForwardSubjectPrefix + m.Subject
}

// ForwardBody quotes the message below two blank lines. Names are the
// usernames of the original sender and recipient.
func (m *Message) ForwardBody(senderName, recipientName string) string {
	return fmt.Sprintf(forwardBodyTemplate, senderName, recipientName, m.CreatedAt.Format(time.RFC3339), m.Body)
}

func (m *Message) TableName() string {
	return "messages"
}

// Attachment is a stored upload owned by a message.
type Attachment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MessageID   uuid.UUID `gorm:"type:uuid;not null;index" json:"message_id"`
	Path        string    `gorm:"type:varchar(255);not null" json:"path"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string    `gorm:"type:varchar(100)" json:"content_type"`
	Size        int64     `gorm:"not null;default:0" json:"size"`
	CreatedAt   time.Time `gorm:"not null;index" json:"created_at"`
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.MessageID == uuid.Nil {
		return errors.New("message_id is required")
	}
	if a.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

func (a *Attachment) TableName() string {
	return "attachments"
}
