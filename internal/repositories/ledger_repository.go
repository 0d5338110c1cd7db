package repositories

import (
	"errors"
	"fmt"

	"lifehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrLedgerEntryNotFound = errors.New("ledger entry not found")

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) WithTx(tx *gorm.DB) LedgerRepositoryInterface {
	return &ledgerRepository{db: tx}
}

func (r *ledgerRepository) Create(entry *models.LedgerEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

func (r *ledgerRepository) GetByID(id uuid.UUID) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return &entry, nil
}

// ListByUser returns the owner's entries, latest date first.
func (r *ledgerRepository) ListByUser(userID uuid.UUID) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return entries, nil
}

func (r *ledgerRepository) Update(entry *models.LedgerEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	result := r.db.Model(&models.LedgerEntry{}).
		Where("id = ?", entry.ID).
		Updates(map[string]interface{}{
			"date":       entry.Date,
			"category":   entry.Category,
			"amount":     entry.Amount,
			"memo":       entry.Memo,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ledger entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLedgerEntryNotFound
	}
	return nil
}

// Delete removes the entry only. Callers unlink calendar events in the same
// transaction.
func (r *ledgerRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.LedgerEntry{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLedgerEntryNotFound
	}
	return nil
}
