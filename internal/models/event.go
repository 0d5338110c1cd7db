package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEventEndBeforeStart = errors.New("end_time must not precede start_time")

// Event is a calendar entry, optionally tied to a ledger entry. The link is
// cleared when the ledger entry goes away.
type Event struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_events_user_start" json:"user_id"`
	Title          string     `gorm:"type:varchar(100);not null" json:"title"`
	StartTime      time.Time  `gorm:"not null;index:idx_events_user_start" json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Description    string     `gorm:"type:text" json:"description"`
	RelatedEntryID *uuid.UUID `gorm:"type:uuid;index" json:"related_entry_id,omitempty"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`

	User         *User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	RelatedEntry *LedgerEntry `gorm:"foreignKey:RelatedEntryID;constraint:OnDelete:SET NULL" json:"related_entry,omitempty"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return e.Validate()
}

func (e *Event) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(e.Title) > MaxTitleLength {
		return errors.New("title must be at most 100 characters")
	}
	if e.StartTime.IsZero() {
		return errors.New("start_time is required")
	}
	if e.EndTime != nil && e.EndTime.Before(e.StartTime) {
		return ErrEventEndBeforeStart
	}
	return nil
}

func (e *Event) OwnerID() uuid.UUID {
	return e.UserID
}

func (e *Event) TableName() string {
	return "events"
}
