package services

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"lifehub/internal/models"
	"lifehub/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuditServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockAuditLogRepositoryInterface
	service AuditServiceInterface
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuditServiceTestSuite) TestRecord() {
	actor, post := uuid.New(), uuid.New()

	s.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(actor, *log.UserID)
		s.Equal(models.AuditActionDelete, log.Action)
		s.Equal(models.AuditResourcePost, log.Resource)
		s.Equal(post.String(), log.ResourceID)
		s.Equal("hello", log.Metadata["title"])
		return nil
	})

	s.service.Record(actor, models.AuditActionDelete, models.AuditResourcePost, post, map[string]interface{}{"title": "hello"})
}

func (s *AuditServiceTestSuite) TestRecord_SwallowsErrors() {
	s.repo.EXPECT().Create(gomock.Any()).Return(errors.New("disk full"))

	s.NotPanics(func() {
		s.service.Record(uuid.New(), models.AuditActionCreate, models.AuditResourceEvent, uuid.New(), nil)
	})
}

func (s *AuditServiceTestSuite) TestActivity_ClampsPaging() {
	userID := uuid.New()

	s.repo.EXPECT().GetByUserID(userID, 0, defaultActivityLimit).Return(nil, int64(0), nil)
	s.repo.EXPECT().GetByUserID(userID, 40, maxActivityLimit).Return([]*models.AuditLog{{}}, int64(41), nil)

	_, _, err := s.service.Activity(userID, -5, 0)
	s.NoError(err)

	logs, total, err := s.service.Activity(userID, 40, 1000)
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(int64(41), total)
}

func (s *AuditServiceTestSuite) TestActivity_RequiresUser() {
	_, _, err := s.service.Activity(uuid.Nil, 0, 10)
	s.ErrorIs(err, ErrInvalidUserID)
}

func (s *AuditServiceTestSuite) TestResourceHistory() {
	postID := uuid.NewString()

	s.repo.EXPECT().GetByResource(models.AuditResourcePost, postID, 0, defaultActivityLimit).
		Return([]*models.AuditLog{{Resource: models.AuditResourcePost, ResourceID: postID}}, int64(1), nil)

	logs, total, err := s.service.ResourceHistory(models.AuditResourcePost, postID, 0, 0)
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(int64(1), total)
}

func (s *AuditServiceTestSuite) TestResourceHistory_RequiresResource() {
	_, _, err := s.service.ResourceHistory(models.AuditResourcePost, "", 0, 10)
	s.ErrorIs(err, ErrInvalidResource)
}
