package repositories

import (
	"fmt"

	"lifehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepositoryInterface {
	return &followRepository{db: db}
}

func (r *followRepository) WithTx(tx *gorm.DB) FollowRepositoryInterface {
	return &followRepository{db: tx}
}

func (r *followRepository) Exists(followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}

func (r *followRepository) Create(followerID, followeeID uuid.UUID) error {
	if err := r.db.Create(&models.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error; err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}
	return nil
}

func (r *followRepository) Delete(followerID, followeeID uuid.UUID) error {
	if err := r.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error; err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

func (r *followRepository) CountFollowers(userID uuid.UUID) (int64, error) {
	return r.count("followee_id = ?", userID)
}

func (r *followRepository) CountFollowing(userID uuid.UUID) (int64, error) {
	return r.count("follower_id = ?", userID)
}

func (r *followRepository) count(query string, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where(query, userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count follows: %w", err)
	}
	return count, nil
}
