package repositories

import (
	"testing"
	"time"

	"lifehub/internal/database"
	"lifehub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) log(userID *uuid.UUID, action, resource, resourceID string) *models.AuditLog {
	entry := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  "192.168.1.1",
		UserAgent:  "Mozilla/5.0",
	}
	s.Require().NoError(s.repo.Create(entry))
	return entry
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_Create() {
	userID := uuid.New()

	entry := s.log(&userID, models.AuditActionLogin, models.AuditResourceUser, userID.String())

	s.NotEqual(uuid.Nil, entry.ID)
	s.NotZero(entry.CreatedAt)
	s.Error(s.repo.Create(nil))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateAnonymous() {
	entry := s.log(nil, models.AuditActionFailedLogin, models.AuditResourceUser, "")

	s.NotEqual(uuid.Nil, entry.ID)
	s.Nil(entry.UserID)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_GetByUserID_Pagination() {
	userID := uuid.New()
	otherID := uuid.New()

	for i := 0; i < 5; i++ {
		s.log(&userID, models.AuditActionCreate, models.AuditResourceLedgerEntry, uuid.New().String())
		time.Sleep(5 * time.Millisecond)
	}
	s.log(&otherID, models.AuditActionLogin, models.AuditResourceUser, otherID.String())

	logs, total, err := s.repo.GetByUserID(userID, 0, 2)
	s.NoError(err)
	s.Len(logs, 2)
	s.Equal(int64(5), total)
	s.False(logs[0].CreatedAt.Before(logs[1].CreatedAt))

	logs, total, err = s.repo.GetByUserID(userID, 4, 2)
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(int64(5), total)

	for _, entry := range logs {
		s.Equal(userID, *entry.UserID)
	}
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_GetByResource() {
	userID := uuid.New()
	postID := uuid.New().String()

	for _, action := range []string{models.AuditActionCreate, models.AuditActionUpdate, models.AuditActionDelete} {
		s.log(&userID, action, models.AuditResourcePost, postID)
	}
	s.log(&userID, models.AuditActionUpdate, models.AuditResourcePost, uuid.New().String())

	logs, total, err := s.repo.GetByResource(models.AuditResourcePost, postID, 0, 10)
	s.NoError(err)
	s.Len(logs, 3)
	s.Equal(int64(3), total)
	for _, entry := range logs {
		s.Equal(postID, entry.ResourceID)
	}
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_DeleteOlderThan() {
	userID := uuid.New()
	old := s.log(&userID, models.AuditActionLogin, models.AuditResourceUser, userID.String())
	s.Require().NoError(s.db.Model(&models.AuditLog{}).
		Where("id = ?", old.ID).
		Update("created_at", time.Now().Add(-48*time.Hour)).Error)
	s.log(&userID, models.AuditActionLogout, models.AuditResourceUser, userID.String())

	count, err := s.repo.DeleteOlderThan(24 * time.Hour)
	s.NoError(err)
	s.Equal(int64(1), count)

	_, total, err := s.repo.GetByUserID(userID, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
}
