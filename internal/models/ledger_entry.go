package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LedgerCategory string

const (
	CategoryIncome  LedgerCategory = "income"
	CategoryExpense LedgerCategory = "expense"
)

func (c LedgerCategory) Valid() bool {
	return c == CategoryIncome || c == CategoryExpense
}

// Label is the Japanese display name.
func (c LedgerCategory) Label() string {
	switch c {
	case CategoryIncome:
		return "収入"
	case CategoryExpense:
		return "支出"
	}
	return string(c)
}

// LedgerEntry is one dated income or expense line. Amount is whole yen.
type LedgerEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_ledger_entries_user_date" json:"user_id"`
	Date      time.Time      `gorm:"type:date;not null;index:idx_ledger_entries_user_date" json:"date"`
	Category  LedgerCategory `gorm:"type:varchar(20);not null" json:"category"`
	Amount    int64          `gorm:"not null" json:"amount"`
	Memo      *string        `gorm:"type:text" json:"memo"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return e.Validate()
}

func (e *LedgerEntry) BeforeUpdate(tx *gorm.DB) error {
	if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
		return nil
	}
	return e.Validate()
}

func (e *LedgerEntry) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user_id is required")
	}
	if e.Date.IsZero() {
		return errors.New("date is required")
	}
	if !e.Category.Valid() {
		return fmt.Errorf("invalid category: %s", e.Category)
	}
	if e.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	return nil
}

func (e *LedgerEntry) OwnerID() uuid.UUID {
	return e.UserID
}

func (e *LedgerEntry) TableName() string {
	return "ledger_entries"
}
