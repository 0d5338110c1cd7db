package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"
	"lifehub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidPost    = errors.New("invalid post")
	ErrInvalidComment = errors.New("invalid comment")
)

type FeedService struct {
	transactor  repositories.Transactor
	postRepo    repositories.PostRepositoryInterface
	commentRepo repositories.CommentRepositoryInterface
	store       storage.FileStore
	notifier    *notifier
	audit       AuditServiceInterface
	auditLogger AuditLoggerInterface
}

func NewFeedService(
	transactor repositories.Transactor,
	postRepo repositories.PostRepositoryInterface,
	commentRepo repositories.CommentRepositoryInterface,
	notificationRepo repositories.NotificationRepositoryInterface,
	store storage.FileStore,
	publisher NotificationPublisher,
	audit AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) FeedServiceInterface {
	return &FeedService{
		transactor:  transactor,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		store:       store,
		notifier:    newNotifier(notificationRepo, publisher, metrics, auditLogger),
		audit:       audit,
		auditLogger: auditLogger,
	}
}

// ListPosts returns every post newest first with like counts and whether the
// actor liked each one.
func (s *FeedService) ListPosts(actorID uuid.UUID) ([]dto.PostSummary, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	counts, err := s.postRepo.CountLikesByPost(ids)
	if err != nil {
		return nil, err
	}
	liked, err := s.postRepo.LikedByUser(actorID, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, postSummary(&posts[i], counts[posts[i].ID], liked[posts[i].ID]))
	}
	return summaries, nil
}

func (s *FeedService) GetPost(actorID, postID uuid.UUID) (*dto.PostDetailResponse, error) {
	post, err := s.postRepo.GetWithComments(postID)
	if err != nil {
		return nil, err
	}

	likes, err := s.postRepo.CountLikes(postID)
	if err != nil {
		return nil, err
	}
	liked, err := s.postRepo.LikeExists(postID, actorID)
	if err != nil {
		return nil, err
	}

	commentIDs := make([]uuid.UUID, len(post.Comments))
	for i := range post.Comments {
		commentIDs[i] = post.Comments[i].ID
	}
	commentLikes, err := s.commentRepo.CountLikesByComment(commentIDs)
	if err != nil {
		return nil, err
	}

	comments := make([]dto.CommentView, 0, len(post.Comments))
	for i := range post.Comments {
		comment := &post.Comments[i]
		comments = append(comments, dto.CommentView{
			ID:        comment.ID,
			Body:      comment.Body,
			Author:    usernameOf(comment.User),
			LikeCount: commentLikes[comment.ID],
			CreatedAt: comment.CreatedAt,
		})
	}

	return &dto.PostDetailResponse{
		PostSummary: postSummary(post, likes, liked),
		Comments:    comments,
	}, nil
}

func (s *FeedService) CreatePost(actorID uuid.UUID, req *dto.PostRequest, image *storage.Upload) (*models.Post, error) {
	post := &models.Post{
		AuthorID: actorID,
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}

	if image != nil {
		stored, err := s.store.Save(storage.DirPostImages, *image)
		if err != nil {
			return nil, err
		}
		post.Image = &stored.Path
	}

	if err := s.postRepo.Create(post); err != nil {
		if post.Image != nil {
			s.removeFile(*post.Image)
		}
		return nil, err
	}

	s.audit.Record(actorID, models.AuditActionCreate, models.AuditResourcePost, post.ID, nil)
	return s.postRepo.GetByID(post.ID)
}

// UpdatePost replaces title and content. A new image replaces the old file.
func (s *FeedService) UpdatePost(actorID, postID uuid.UUID, req *dto.PostRequest, image *storage.Upload) (*models.Post, error) {
	post, err := s.ownedPost(actorID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}

	previous := post.Image
	if image != nil {
		stored, err := s.store.Save(storage.DirPostImages, *image)
		if err != nil {
			return nil, err
		}
		post.Image = &stored.Path
	}

	if err := s.postRepo.Update(post); err != nil {
		if image != nil {
			s.removeFile(*post.Image)
		}
		return nil, err
	}

	if image != nil && previous != nil {
		s.removeFile(*previous)
	}

	s.audit.Record(actorID, models.AuditActionUpdate, models.AuditResourcePost, post.ID, nil)
	return s.postRepo.GetByID(post.ID)
}

func (s *FeedService) DeletePost(actorID, postID uuid.UUID) error {
	post, err := s.ownedPost(actorID, postID)
	if err != nil {
		return err
	}

	err = s.transactor.Transaction(func(tx *gorm.DB) error {
		return s.postRepo.WithTx(tx).Delete(postID)
	})
	if err != nil {
		return err
	}

	if post.Image != nil {
		s.removeFile(*post.Image)
	}

	s.audit.Record(actorID, models.AuditActionDelete, models.AuditResourcePost, post.ID, nil)
	return nil
}

func (s *FeedService) TogglePostLike(actorID, postID uuid.UUID) (*dto.ToggleResult, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	var (
		result       dto.ToggleResult
		notification *models.Notification
	)

	err = s.transactor.Transaction(func(tx *gorm.DB) error {
		posts := s.postRepo.WithTx(tx)

		exists, err := posts.LikeExists(postID, actorID)
		if err != nil {
			return err
		}

		if exists {
			err = posts.RemoveLike(postID, actorID)
		} else {
			err = posts.AddLike(postID, actorID)
			if err == nil {
				notification, err = s.notifier.record(tx, actorID, post.AuthorID, models.NotificationLikePost, &post.ID, nil)
			}
		}
		if err != nil {
			return err
		}

		result.Active = !exists
		result.Count, err = posts.CountLikes(postID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle post like: %w", err)
	}

	s.notifier.publish(notification)
	return &result, nil
}

// CreateComment adds a comment and notifies the post author.
func (s *FeedService) CreateComment(actorID, postID uuid.UUID, req *dto.CommentRequest) (*models.Comment, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{PostID: post.ID, UserID: actorID, Body: req.Body}
	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidComment, err)
	}

	var notification *models.Notification
	err = s.transactor.Transaction(func(tx *gorm.DB) error {
		if err := s.commentRepo.WithTx(tx).Create(comment); err != nil {
			return err
		}
		var err error
		notification, err = s.notifier.record(tx, actorID, post.AuthorID, models.NotificationComment, &post.ID, &comment.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.notifier.publish(notification)
	return s.commentRepo.GetByID(comment.ID)
}

func (s *FeedService) UpdateComment(actorID, commentID uuid.UUID, req *dto.CommentRequest) (*models.Comment, error) {
	comment, err := s.ownedComment(actorID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Body = req.Body
	if err := comment.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidComment, err)
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(commentID)
}

func (s *FeedService) DeleteComment(actorID, commentID uuid.UUID) error {
	if _, err := s.ownedComment(actorID, commentID); err != nil {
		return err
	}

	return s.transactor.Transaction(func(tx *gorm.DB) error {
		return s.commentRepo.WithTx(tx).Delete(commentID)
	})
}

func (s *FeedService) ToggleCommentLike(actorID, commentID uuid.UUID) (*dto.ToggleResult, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}

	var (
		result       dto.ToggleResult
		notification *models.Notification
	)

	err = s.transactor.Transaction(func(tx *gorm.DB) error {
		comments := s.commentRepo.WithTx(tx)

		exists, err := comments.LikeExists(commentID, actorID)
		if err != nil {
			return err
		}

		if exists {
			err = comments.RemoveLike(commentID, actorID)
		} else {
			err = comments.AddLike(commentID, actorID)
			if err == nil {
				notification, err = s.notifier.record(tx, actorID, comment.UserID, models.NotificationLikeComment, &comment.PostID, &comment.ID)
			}
		}
		if err != nil {
			return err
		}

		result.Active = !exists
		result.Count, err = comments.CountLikes(commentID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle comment like: %w", err)
	}

	s.notifier.publish(notification)
	return &result, nil
}

func (s *FeedService) ownedPost(actorID, postID uuid.UUID) (*models.Post, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(post, actorID); err != nil {
		s.auditLogger.LogAuthorizationFailure(context.Background(), "post_modify", actorID, postID)
		return nil, err
	}
	return post, nil
}

func (s *FeedService) ownedComment(actorID, commentID uuid.UUID) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(comment, actorID); err != nil {
		s.auditLogger.LogAuthorizationFailure(context.Background(), "comment_modify", actorID, commentID)
		return nil, err
	}
	return comment, nil
}

func (s *FeedService) removeFile(path string) {
	if err := s.store.Remove(path); err != nil {
		s.auditLogger.LogAttachmentCleanup(context.Background(), path, err)
	}
}

func postSummary(post *models.Post, likes int64, liked bool) dto.PostSummary {
	return dto.PostSummary{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Image:     post.Image,
		Author:    usernameOf(post.Author),
		LikeCount: likes,
		Liked:     liked,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func usernameOf(user *models.User) string {
	if user == nil {
		return ""
	}
	return user.Username
}
