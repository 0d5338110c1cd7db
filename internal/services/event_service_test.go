package services

import (
	"testing"
	"time"

	"lifehub/internal/database"
	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type EventServiceTestSuite struct {
	suite.Suite
	env     *testEnv
	service EventServiceInterface
	ledger  LedgerServiceInterface
	owner   *models.User
	other   *models.User
}

func TestEventServiceSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}

func (s *EventServiceTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	now := func() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC) }
	s.service = NewEventService(s.env.events, s.env.ledger, s.env.audit, s.env.auditLogger, now)
	s.ledger = NewLedgerService(s.env.db, s.env.ledger, s.env.events, s.env.audit, s.env.auditLogger, NoopMetrics{})
	s.owner = database.CreateTestUser(s.T(), s.env.db, "planner")
	s.other = database.CreateTestUser(s.T(), s.env.db, "visitor")
}

func (s *EventServiceTestSuite) create(userID uuid.UUID, title string, start time.Time) *models.Event {
	event, err := s.service.Create(userID, &dto.EventRequest{Title: title, StartTime: start})
	s.Require().NoError(err)
	return event
}

func (s *EventServiceTestSuite) TestDashboard_CurrentMonthOnly() {
	s.create(s.owner.ID, "月末", time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC))
	s.create(s.owner.ID, "月初", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	s.create(s.owner.ID, "先月", time.Date(2024, 4, 30, 23, 59, 0, 0, time.UTC))
	s.create(s.owner.ID, "来月", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	s.create(s.other.ID, "他人", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))

	dashboard, err := s.service.Dashboard(s.owner.ID)

	s.Require().NoError(err)
	s.Equal("2024-05", dashboard.Month)
	s.Require().Len(dashboard.Events, 2)
	s.Equal("月初", dashboard.Events[0].Title)
	s.Equal("月末", dashboard.Events[1].Title)
}

func (s *EventServiceTestSuite) TestList_AscendingAndEmpty() {
	s.create(s.owner.ID, "b", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	s.create(s.owner.ID, "a", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	events, err := s.service.List(s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("a", events[0].Title)

	none, err := s.service.List(s.other.ID)
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *EventServiceTestSuite) TestCreate_EndBeforeStart() {
	start := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(-time.Minute)

	_, err := s.service.Create(s.owner.ID, &dto.EventRequest{Title: "逆転", StartTime: start, EndTime: &end})

	s.ErrorIs(err, models.ErrEventEndBeforeStart)
}

func (s *EventServiceTestSuite) TestCreate_RelatedEntryRules() {
	foreign, err := s.ledger.Create(s.other.ID, &dto.LedgerEntryRequest{Date: "2024-05-01", Category: "expense", Amount: 10})
	s.Require().NoError(err)
	foreignID := foreign.ID.String()
	missing := uuid.NewString()
	malformed := "not-a-uuid"
	start := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	_, err = s.service.Create(s.owner.ID, &dto.EventRequest{Title: "x", StartTime: start, RelatedEntryID: &foreignID})
	s.ErrorIs(err, ErrForbidden)

	_, err = s.service.Create(s.owner.ID, &dto.EventRequest{Title: "x", StartTime: start, RelatedEntryID: &missing})
	s.ErrorIs(err, repositories.ErrLedgerEntryNotFound)

	_, err = s.service.Create(s.owner.ID, &dto.EventRequest{Title: "x", StartTime: start, RelatedEntryID: &malformed})
	s.ErrorIs(err, ErrInvalidID)
}

func (s *EventServiceTestSuite) TestUpdateDelete_OwnerOnly() {
	event := s.create(s.owner.ID, "会議", time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC))

	_, err := s.service.Get(s.other.ID, event.ID)
	s.ErrorIs(err, ErrForbidden)

	end := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	updated, err := s.service.Update(s.owner.ID, event.ID, &dto.EventRequest{
		Title:       "定例会議",
		StartTime:   event.StartTime,
		EndTime:     &end,
		Description: "議事録",
	})
	s.Require().NoError(err)
	s.Equal("定例会議", updated.Title)
	s.Equal("議事録", updated.Description)
	s.Require().NotNil(updated.EndTime)

	s.ErrorIs(s.service.Delete(s.other.ID, event.ID), ErrForbidden)
	s.Require().NoError(s.service.Delete(s.owner.ID, event.ID))

	_, err = s.service.Get(s.owner.ID, event.ID)
	s.ErrorIs(err, repositories.ErrEventNotFound)
}
