package services

import (
	"context"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultNotificationLimit = 20
	MaxNotificationLimit     = 100
)

type NotificationService struct {
	repo        repositories.NotificationRepositoryInterface
	auditLogger AuditLoggerInterface
}

func NewNotificationService(repo repositories.NotificationRepositoryInterface, auditLogger AuditLoggerInterface) NotificationServiceInterface {
	return &NotificationService{repo: repo, auditLogger: auditLogger}
}

// List returns the actor's newest notifications with the total unread count.
func (s *NotificationService) List(actorID uuid.UUID, limit int) (*dto.NotificationListResponse, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	if limit > MaxNotificationLimit {
		limit = MaxNotificationLimit
	}

	notifications, err := s.repo.ListByRecipient(actorID, limit)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(actorID)
	if err != nil {
		return nil, err
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}
	return &dto.NotificationListResponse{Notifications: notifications, Unread: unread}, nil
}

func (s *NotificationService) MarkRead(actorID, notificationID uuid.UUID) error {
	notification, err := s.repo.GetByID(notificationID)
	if err != nil {
		return err
	}
	if notification.RecipientID != actorID {
		s.auditLogger.LogAuthorizationFailure(context.Background(), "notification_mark_read", actorID, notificationID)
		return ErrForbidden
	}
	if notification.IsRead {
		return nil
	}
	return s.repo.MarkRead(notificationID)
}
