package repositories

import (
	"errors"
	"fmt"

	"lifehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound    = errors.New("message not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepositoryInterface {
	return &messageRepository{db: db}
}

func (r *messageRepository) WithTx(tx *gorm.DB) MessageRepositoryInterface {
	return &messageRepository{db: tx}
}

func (r *messageRepository) withParties() *gorm.DB {
	return r.db.Preload("Sender").
		Preload("Recipient").
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("attachments.created_at ASC")
		})
}

func (r *messageRepository) Create(message *models.Message) error {
	if err := r.db.Omit("Attachments").Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *messageRepository) GetByID(id uuid.UUID) (*models.Message, error) {
	var message models.Message
	if err := r.withParties().First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return &message, nil
}

func (r *messageRepository) Inbox(userID uuid.UUID) ([]models.Message, error) {
	return r.list("recipient_id = ?", userID)
}

func (r *messageRepository) Outbox(userID uuid.UUID) ([]models.Message, error) {
	return r.list("sender_id = ?", userID)
}

func (r *messageRepository) list(query string, userID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	if err := r.withParties().Where(query, userID).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// Update writes the editable columns. Attachments are managed separately.
func (r *messageRepository) Update(message *models.Message) error {
	result := r.db.Model(&models.Message{}).
		Where("id = ?", message.ID).
		Updates(map[string]interface{}{
			"subject":    message.Subject,
			"body":       message.Body,
			"is_edited":  message.IsEdited,
			"is_deleted": message.Deleted,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) MarkRead(id uuid.UUID) error {
	if err := r.db.Model(&models.Message{}).
		Where("id = ? AND is_read = ?", id, false).
		Update("is_read", true).Error; err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

func (r *messageRepository) CountUnread(recipientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Message{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func (r *messageRepository) AddAttachments(attachments []models.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}
	if err := r.db.Create(&attachments).Error; err != nil {
		return fmt.Errorf("failed to add attachments: %w", err)
	}
	return nil
}

func (r *messageRepository) GetAttachment(id uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	if err := r.db.First(&attachment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return &attachment, nil
}

func (r *messageRepository) DeleteAttachment(id uuid.UUID) error {
	result := r.db.Delete(&models.Attachment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}
