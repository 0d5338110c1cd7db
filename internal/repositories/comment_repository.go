package repositories

import (
	"errors"
	"fmt"

	"lifehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepositoryInterface {
	return &commentRepository{db: db}
}

func (r *commentRepository) WithTx(tx *gorm.DB) CommentRepositoryInterface {
	return &commentRepository{db: tx}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("User").First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *models.Comment) error {
	result := r.db.Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]interface{}{
			"body":       comment.Body,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) Delete(id uuid.UUID) error {
	if err := r.db.Model(&models.Notification{}).
		Where("comment_id = ?", id).
		Update("comment_id", nil).Error; err != nil {
		return fmt.Errorf("failed to clear notification links: %w", err)
	}

	if err := r.db.Where("comment_id = ?", id).Delete(&models.CommentLike{}).Error; err != nil {
		return fmt.Errorf("failed to delete comment likes: %w", err)
	}

	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) LikeExists(commentID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check comment like: %w", err)
	}
	return count > 0, nil
}

func (r *commentRepository) AddLike(commentID, userID uuid.UUID) error {
	if err := r.db.Create(&models.CommentLike{CommentID: commentID, UserID: userID}).Error; err != nil {
		return fmt.Errorf("failed to add comment like: %w", err)
	}
	return nil
}

func (r *commentRepository) RemoveLike(commentID, userID uuid.UUID) error {
	if err := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{}).Error; err != nil {
		return fmt.Errorf("failed to remove comment like: %w", err)
	}
	return nil
}

func (r *commentRepository) CountLikes(commentID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comment likes: %w", err)
	}
	return count, nil
}

func (r *commentRepository) CountLikesByComment(commentIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []likeCount
	if err := r.db.Model(&models.CommentLike{}).
		Select("comment_id AS target_id, COUNT(*) AS total").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count comment likes: %w", err)
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Total
	}
	return counts, nil
}
