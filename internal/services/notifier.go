package services

import (
	"context"

	"lifehub/internal/models"
	"lifehub/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LiveNotificationKind is the envelope type of pushed notifications.
const LiveNotificationKind = "notification"

// notifier writes notification rows inside the caller's transaction and
// pushes them to live connections once the transaction has committed.
type notifier struct {
	repo        repositories.NotificationRepositoryInterface
	publisher   NotificationPublisher
	metrics     MetricsRecorderInterface
	auditLogger AuditLoggerInterface
}

func newNotifier(
	repo repositories.NotificationRepositoryInterface,
	publisher NotificationPublisher,
	metrics MetricsRecorderInterface,
	auditLogger AuditLoggerInterface,
) *notifier {
	return &notifier{
		repo:        repo,
		publisher:   publisher,
		metrics:     metrics,
		auditLogger: auditLogger,
	}
}

// record returns nil without writing when sender and recipient are the same user.
func (n *notifier) record(tx *gorm.DB, senderID, recipientID uuid.UUID, kind models.NotificationKind, postID, commentID *uuid.UUID) (*models.Notification, error) {
	if senderID == recipientID {
		return nil, nil
	}

	notification := &models.Notification{
		SenderID:    senderID,
		RecipientID: recipientID,
		Kind:        kind,
		PostID:      postID,
		CommentID:   commentID,
	}
	if err := n.repo.WithTx(tx).Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// publish must only be called after commit.
func (n *notifier) publish(notification *models.Notification) {
	if notification == nil {
		return
	}

	n.metrics.IncrementCounter(MetricNotificationCreated, map[string]string{"kind": string(notification.Kind)})
	n.auditLogger.LogNotificationCreated(context.Background(), notification.ID, notification.SenderID, notification.RecipientID, string(notification.Kind))

	if n.publisher != nil {
		n.publisher.Publish(notification.RecipientID, LiveNotificationKind, notification)
	}
}
