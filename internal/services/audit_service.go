package services

import (
	"errors"
	"log/slog"

	"lifehub/internal/models"
	"lifehub/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidResource = errors.New("resource and resource_id are required")
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// AuditService writes the user-visible change history. Failures are logged
// and never fail the change that triggered them.
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

func (s *AuditService) Record(actorID uuid.UUID, action, resource string, resourceID uuid.UUID, metadata map[string]interface{}) {
	log := &models.AuditLog{
		UserID:     &actorID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID.String(),
		Metadata:   metadata,
	}

	if err := s.repo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"resource", resource,
			"resource_id", resourceID)
	}
}

// Activity pages through a user's history, newest first.
func (s *AuditService) Activity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	offset, limit = clampPage(offset, limit)
	return s.repo.GetByUserID(userID, offset, limit)
}

// ResourceHistory lists every recorded change to one resource, newest first.
func (s *AuditService) ResourceHistory(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if resource == "" || resourceID == "" {
		return nil, 0, ErrInvalidResource
	}

	offset, limit = clampPage(offset, limit)
	return s.repo.GetByResource(resource, resourceID, offset, limit)
}

func clampPage(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return offset, limit
}
