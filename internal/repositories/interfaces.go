package repositories

import (
	"time"

	"lifehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transactor runs fn in a single database transaction. Repositories rebound
// to tx with WithTx take part in it.
type Transactor interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	ExistsByEmailOrUsername(email, username string) (bool, error)
	UpdateFailedLoginAttempts(user *models.User) error
	WithTx(tx *gorm.DB) UserRepositoryInterface
}

type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByUserID(userID uuid.UUID) (*models.Profile, error)
	GetByUsername(username string) (*models.Profile, error)
	List() ([]models.Profile, error)
	Update(profile *models.Profile) error
	WithTx(tx *gorm.DB) ProfileRepositoryInterface
}

type FollowRepositoryInterface interface {
	Exists(followerID, followeeID uuid.UUID) (bool, error)
	Create(followerID, followeeID uuid.UUID) error
	Delete(followerID, followeeID uuid.UUID) error
	CountFollowers(userID uuid.UUID) (int64, error)
	CountFollowing(userID uuid.UUID) (int64, error)
	WithTx(tx *gorm.DB) FollowRepositoryInterface
}

type PostRepositoryInterface interface {
	Create(post *models.Post) error
	GetByID(id uuid.UUID) (*models.Post, error)
	GetWithComments(id uuid.UUID) (*models.Post, error)
	List() ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uuid.UUID) error

	LikeExists(postID, userID uuid.UUID) (bool, error)
	AddLike(postID, userID uuid.UUID) error
	RemoveLike(postID, userID uuid.UUID) error
	CountLikes(postID uuid.UUID) (int64, error)
	CountLikesByPost(postIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	LikedByUser(userID uuid.UUID, postIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	WithTx(tx *gorm.DB) PostRepositoryInterface
}

type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uuid.UUID) error

	LikeExists(commentID, userID uuid.UUID) (bool, error)
	AddLike(commentID, userID uuid.UUID) error
	RemoveLike(commentID, userID uuid.UUID) error
	CountLikes(commentID uuid.UUID) (int64, error)
	CountLikesByComment(commentIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	WithTx(tx *gorm.DB) CommentRepositoryInterface
}

type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	ListByRecipient(recipientID uuid.UUID, limit int) ([]models.Notification, error)
	MarkRead(id uuid.UUID) error
	CountUnread(recipientID uuid.UUID) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepositoryInterface
}

type MessageRepositoryInterface interface {
	Create(message *models.Message) error
	GetByID(id uuid.UUID) (*models.Message, error)
	Inbox(userID uuid.UUID) ([]models.Message, error)
	Outbox(userID uuid.UUID) ([]models.Message, error)
	Update(message *models.Message) error
	MarkRead(id uuid.UUID) error
	CountUnread(recipientID uuid.UUID) (int64, error)

	AddAttachments(attachments []models.Attachment) error
	GetAttachment(id uuid.UUID) (*models.Attachment, error)
	DeleteAttachment(id uuid.UUID) error

	WithTx(tx *gorm.DB) MessageRepositoryInterface
}

type LedgerRepositoryInterface interface {
	Create(entry *models.LedgerEntry) error
	GetByID(id uuid.UUID) (*models.LedgerEntry, error)
	ListByUser(userID uuid.UUID) ([]models.LedgerEntry, error)
	Update(entry *models.LedgerEntry) error
	Delete(id uuid.UUID) error
	WithTx(tx *gorm.DB) LedgerRepositoryInterface
}

type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	ListByUser(userID uuid.UUID) ([]models.Event, error)
	ListByUserBetween(userID uuid.UUID, from, to time.Time) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
	UnlinkLedgerEntry(entryID uuid.UUID) error
	WithTx(tx *gorm.DB) EventRepositoryInterface
}

type GameSessionRepositoryInterface interface {
	Get(userID uuid.UUID) (*models.GameSession, error)
	Save(session *models.GameSession) error
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Rotate(tokenID, replacedByID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}

type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
