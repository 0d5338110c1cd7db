package repositories

import (
	"errors"
	"fmt"
	"time"

	"lifehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepositoryInterface {
	return &eventRepository{db: db}
}

func (r *eventRepository) WithTx(tx *gorm.DB) EventRepositoryInterface {
	return &eventRepository{db: tx}
}

func (r *eventRepository) Create(event *models.Event) error {
	if err := r.db.Omit("RelatedEntry").Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *eventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := r.db.Preload("RelatedEntry").First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (r *eventRepository) ListByUser(userID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Preload("RelatedEntry").
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListByUserBetween returns events starting in [from, to), earliest first.
func (r *eventRepository) ListByUserBetween(userID uuid.UUID, from, to time.Time) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Preload("RelatedEntry").
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, from, to).
		Order("start_time ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) Update(event *models.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	result := r.db.Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"title":            event.Title,
			"start_time":       event.StartTime,
			"end_time":         event.EndTime,
			"description":      event.Description,
			"related_entry_id": event.RelatedEntryID,
			"updated_at":       gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// UnlinkLedgerEntry clears related_entry_id on every event pointing at entryID.
func (r *eventRepository) UnlinkLedgerEntry(entryID uuid.UUID) error {
	if err := r.db.Model(&models.Event{}).
		Where("related_entry_id = ?", entryID).
		Update("related_entry_id", nil).Error; err != nil {
		return fmt.Errorf("failed to unlink ledger entry: %w", err)
	}
	return nil
}
