package services

import (
	"context"
	"time"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/storage"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID, tokenID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuditServiceInterface records who changed what.
type AuditServiceInterface interface {
	Record(actorID uuid.UUID, action, resource string, resourceID uuid.UUID, metadata map[string]interface{})
	Activity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	ResourceHistory(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
}

type ProfileServiceInterface interface {
	List() ([]dto.ProfileSummary, error)
	Detail(actorID uuid.UUID, username string) (*dto.ProfileResponse, error)
	Update(actorID uuid.UUID, req *dto.ProfileUpdateRequest, avatar *storage.Upload) (*dto.ProfileResponse, error)
	ToggleFollow(actorID uuid.UUID, username string) (*dto.ToggleResult, error)
}

type FeedServiceInterface interface {
	ListPosts(actorID uuid.UUID) ([]dto.PostSummary, error)
	GetPost(actorID, postID uuid.UUID) (*dto.PostDetailResponse, error)
	CreatePost(actorID uuid.UUID, req *dto.PostRequest, image *storage.Upload) (*models.Post, error)
	UpdatePost(actorID, postID uuid.UUID, req *dto.PostRequest, image *storage.Upload) (*models.Post, error)
	DeletePost(actorID, postID uuid.UUID) error
	TogglePostLike(actorID, postID uuid.UUID) (*dto.ToggleResult, error)

	CreateComment(actorID, postID uuid.UUID, req *dto.CommentRequest) (*models.Comment, error)
	UpdateComment(actorID, commentID uuid.UUID, req *dto.CommentRequest) (*models.Comment, error)
	DeleteComment(actorID, commentID uuid.UUID) error
	ToggleCommentLike(actorID, commentID uuid.UUID) (*dto.ToggleResult, error)
}

type NotificationServiceInterface interface {
	List(actorID uuid.UUID, limit int) (*dto.NotificationListResponse, error)
	MarkRead(actorID, notificationID uuid.UUID) error
}

type MessageServiceInterface interface {
	Inbox(actorID uuid.UUID) (*dto.MessageListResponse, error)
	Outbox(actorID uuid.UUID) (*dto.MessageListResponse, error)
	UnreadCount(actorID uuid.UUID) (int64, error)
	Send(actorID uuid.UUID, req *dto.MessageRequest, files []storage.Upload) (*models.Message, error)
	Get(actorID, messageID uuid.UUID) (*models.Message, error)
	Update(actorID, messageID uuid.UUID, req *dto.MessageUpdateRequest, files []storage.Upload) (*models.Message, error)
	Delete(actorID, messageID uuid.UUID) error
	ReplyDraft(actorID, messageID uuid.UUID) (*dto.MessageDraft, error)
	Reply(actorID, messageID uuid.UUID, req *dto.ReplyRequest, files []storage.Upload) (*models.Message, error)
	ForwardDraft(actorID, messageID uuid.UUID) (*dto.MessageDraft, error)
	Forward(actorID, messageID uuid.UUID, req *dto.ForwardRequest, files []storage.Upload) (*models.Message, error)
	DeleteAttachment(actorID, attachmentID uuid.UUID) error
}

type LedgerServiceInterface interface {
	List(actorID uuid.UUID) (*dto.LedgerListResponse, error)
	Get(actorID, entryID uuid.UUID) (*models.LedgerEntry, error)
	Create(actorID uuid.UUID, req *dto.LedgerEntryRequest) (*models.LedgerEntry, error)
	Update(actorID, entryID uuid.UUID, req *dto.LedgerEntryRequest) (*models.LedgerEntry, error)
	Delete(actorID, entryID uuid.UUID) error
	MonthlyTable(actorID uuid.UUID) ([]models.MonthlyBucket, error)
	Graph(actorID uuid.UUID) (*dto.LedgerGraphResponse, error)
	Chart(actorID uuid.UUID) (*models.ChartData, error)
}

type EventServiceInterface interface {
	Dashboard(actorID uuid.UUID) (*dto.DashboardResponse, error)
	List(actorID uuid.UUID) ([]models.Event, error)
	Get(actorID, eventID uuid.UUID) (*models.Event, error)
	Create(actorID uuid.UUID, req *dto.EventRequest) (*models.Event, error)
	Update(actorID, eventID uuid.UUID, req *dto.EventRequest) (*models.Event, error)
	Delete(actorID, eventID uuid.UUID) error
}

type GameServiceInterface interface {
	Janken(hand string) (*dto.JankenResult, error)
	NumberGuess(actorID uuid.UUID) (*dto.NumberGuessState, error)
	Guess(actorID uuid.UUID, guess int) (*dto.NumberGuessState, error)
	ResetNumberGuess(actorID uuid.UUID) (*dto.NumberGuessState, error)
	FortuneWeather(ctx context.Context, actorID uuid.UUID) (*dto.FortuneWeatherResponse, error)
	SetCity(ctx context.Context, actorID uuid.UUID, city string) (*dto.FortuneWeatherResponse, error)
	DrawFortune(ctx context.Context, actorID uuid.UUID) (*dto.FortuneWeatherResponse, error)
	ResetFortune(ctx context.Context, actorID uuid.UUID) (*dto.FortuneWeatherResponse, error)
}

type WeatherServiceInterface interface {
	Current(ctx context.Context, city string) models.Weather
}

// Randomizer is the source of every game draw.
type Randomizer interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NotificationPublisher pushes committed notifications to live connections.
type NotificationPublisher interface {
	Publish(userID uuid.UUID, kind string, data interface{})
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogNotificationCreated(ctx context.Context, notificationID, senderID, recipientID uuid.UUID, kind string)
	LogMessageSent(ctx context.Context, messageID, senderID, recipientID uuid.UUID, kind string, attachments int)
	LogMessageDeleted(ctx context.Context, messageID, actorID uuid.UUID)
	LogAttachmentCleanup(ctx context.Context, path string, err error)
	LogLedgerEntryChanged(ctx context.Context, entryID, userID uuid.UUID, action string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogWeatherLookupFailed(ctx context.Context, city string, errorMsg string)
	LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, resourceID uuid.UUID)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
