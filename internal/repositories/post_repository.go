package repositories

import (
	"errors"
	"fmt"

	"lifehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepositoryInterface {
	return &postRepository{db: db}
}

func (r *postRepository) WithTx(tx *gorm.DB) PostRepositoryInterface {
	return &postRepository{db: tx}
}

func (r *postRepository) Create(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) GetByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// GetWithComments loads the post with its comments oldest first.
func (r *postRepository) GetWithComments(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// List returns the feed newest first.
func (r *postRepository) List() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Preload("Author").Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Update(post *models.Post) error {
	result := r.db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":      post.Title,
			"content":    post.Content,
			"image":      post.Image,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Delete removes the post with its likes and comments. Notifications that
// pointed at them keep their rows with the links cleared.
func (r *postRepository) Delete(id uuid.UUID) error {
	commentIDs := func() *gorm.DB {
		return r.db.Model(&models.Comment{}).Select("id").Where("post_id = ?", id)
	}

	steps := []struct {
		what string
		run  func() error
	}{
		{"notification links", func() error {
			return r.db.Model(&models.Notification{}).
				Where("post_id = ? OR comment_id IN (?)", id, commentIDs()).
				Updates(map[string]interface{}{"post_id": nil, "comment_id": nil}).Error
		}},
		{"comment likes", func() error {
			return r.db.Where("comment_id IN (?)", commentIDs()).Delete(&models.CommentLike{}).Error
		}},
		{"comments", func() error {
			return r.db.Where("post_id = ?", id).Delete(&models.Comment{}).Error
		}},
		{"post likes", func() error {
			return r.db.Where("post_id = ?", id).Delete(&models.PostLike{}).Error
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", step.what, err)
		}
	}

	result := r.db.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *postRepository) LikeExists(postID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check post like: %w", err)
	}
	return count > 0, nil
}

func (r *postRepository) AddLike(postID, userID uuid.UUID) error {
	if err := r.db.Create(&models.PostLike{PostID: postID, UserID: userID}).Error; err != nil {
		return fmt.Errorf("failed to add post like: %w", err)
	}
	return nil
}

func (r *postRepository) RemoveLike(postID, userID uuid.UUID) error {
	if err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{}).Error; err != nil {
		return fmt.Errorf("failed to remove post like: %w", err)
	}
	return nil
}

func (r *postRepository) CountLikes(postID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count post likes: %w", err)
	}
	return count, nil
}

func (r *postRepository) CountLikesByPost(postIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []likeCount
	if err := r.db.Model(&models.PostLike{}).
		Select("post_id AS target_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count post likes: %w", err)
	}

	for _, row := range rows {
		counts[row.TargetID] = row.Total
	}
	return counts, nil
}

func (r *postRepository) LikedByUser(userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var ids []uuid.UUID
	if err := r.db.Model(&models.PostLike{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load liked posts: %w", err)
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

type likeCount struct {
	TargetID uuid.UUID
	Total    int64
}
