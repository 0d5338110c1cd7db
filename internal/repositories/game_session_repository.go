package repositories

import (
	"errors"
	"fmt"
	"time"

	"lifehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gameSessionRepository struct {
	db *gorm.DB
}

func NewGameSessionRepository(db *gorm.DB) GameSessionRepositoryInterface {
	return &gameSessionRepository{db: db}
}

// Get returns the stored session, or a fresh zero session when none exists.
func (r *gameSessionRepository) Get(userID uuid.UUID) (*models.GameSession, error) {
	var session models.GameSession
	if err := r.db.First(&session, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.GameSession{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get game session: %w", err)
	}
	return &session, nil
}

func (r *gameSessionRepository) Save(session *models.GameSession) error {
	session.UpdatedAt = time.Now().UTC()

	err := r.db.Omit("User").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "message", "city", "fortune", "updated_at"}),
	}).Create(session).Error
	if err != nil {
		return fmt.Errorf("failed to save game session: %w", err)
	}
	return nil
}
