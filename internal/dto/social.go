package dto

import (
	"time"

	"lifehub/internal/models"

	"github.com/google/uuid"
)

// ToggleResult is the state of a set membership after a toggle.
type ToggleResult struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}

// ProfileSummary is one row of the profile directory.
type ProfileSummary struct {
	Username string  `json:"username"`
	Bio      *string `json:"bio"`
	Avatar   string  `json:"avatar"`
}

type ProfileUpdateRequest struct {
	Bio *string `json:"bio" form:"bio" validate:"omitempty,max=1000"`
}

type ProfileResponse struct {
	Username  string  `json:"username"`
	Bio       *string `json:"bio"`
	Avatar    string  `json:"avatar"`
	Followers int64   `json:"followers"`
	Following int64   `json:"following"`
	// IsFollowing reports whether the viewer follows this profile.
	IsFollowing bool `json:"isFollowing"`
	IsSelf      bool `json:"isSelf"`
}

type PostRequest struct {
	Title   string `json:"title" form:"title" validate:"required,max=100"`
	Content string `json:"content" form:"content" validate:"required"`
}

type CommentRequest struct {
	Body string `json:"body" form:"body" validate:"required"`
}

type PostSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     *string   `json:"image,omitempty"`
	Author    string    `json:"author"`
	LikeCount int64     `json:"likeCount"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentView struct {
	ID        uuid.UUID `json:"id"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	LikeCount int64     `json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostDetailResponse struct {
	PostSummary
	Comments []CommentView `json:"comments"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}
