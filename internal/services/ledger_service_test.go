package services

import (
	"testing"
	"time"

	"lifehub/internal/database"
	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"

	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	env     *testEnv
	service LedgerServiceInterface
	events  EventServiceInterface
	owner   *models.User
	other   *models.User
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.service = NewLedgerService(s.env.db, s.env.ledger, s.env.events, s.env.audit, s.env.auditLogger, NoopMetrics{})
	s.events = NewEventService(s.env.events, s.env.ledger, s.env.audit, s.env.auditLogger, nil)
	s.owner = database.CreateTestUser(s.T(), s.env.db, "kakeibo")
	s.other = database.CreateTestUser(s.T(), s.env.db, "stranger")
}

func (s *LedgerServiceTestSuite) create(date, category string, amount int64, memo string) *models.LedgerEntry {
	req := &dto.LedgerEntryRequest{Date: date, Category: category, Amount: amount}
	if memo != "" {
		req.Memo = &memo
	}
	entry, err := s.service.Create(s.owner.ID, req)
	s.Require().NoError(err)
	return entry
}

func (s *LedgerServiceTestSuite) TestCreate_Validation() {
	cases := map[string]struct {
		req  dto.LedgerEntryRequest
		want error
	}{
		"bad date":     {dto.LedgerEntryRequest{Date: "2024/01/01", Category: "income", Amount: 1}, ErrInvalidLedgerDate},
		"bad category": {dto.LedgerEntryRequest{Date: "2024-01-01", Category: "gift", Amount: 1}, ErrInvalidLedgerCategory},
		"negative":     {dto.LedgerEntryRequest{Date: "2024-01-01", Category: "expense", Amount: -5}, ErrNegativeAmount},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			req := tc.req
			_, err := s.service.Create(s.owner.ID, &req)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *LedgerServiceTestSuite) TestCreate_EmptyMemoStoredAsNull() {
	empty := ""
	entry, err := s.service.Create(s.owner.ID, &dto.LedgerEntryRequest{Date: "2024-04-01", Category: "expense", Amount: 300, Memo: &empty})

	s.Require().NoError(err)
	s.Nil(entry.Memo)
}

func (s *LedgerServiceTestSuite) TestList_PivotAndTotals() {
	s.create("2024-01-25", "income", 200000, "給料")
	s.create("2024-01-30", "expense", 80000, "家賃")
	s.create("2024-02-03", "expense", 4500, "食費")

	list, err := s.service.List(s.owner.ID)
	s.Require().NoError(err)
	s.Len(list.Entries, 3)
	s.Require().Len(list.Monthly, 2)
	s.Equal("2024-01", list.Monthly[0].MonthLabel())
	s.Equal(int64(120000), list.Monthly[0].Balance)
	s.Equal(models.LedgerTotals{Income: 200000, Expense: 84500, Balance: 115500}, list.Totals)

	graph, err := s.service.Graph(s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(graph.Breakdown, 2)
	s.Equal("家賃", graph.Breakdown[0].Label)

	chart, err := s.service.Chart(s.owner.ID)
	s.Require().NoError(err)
	s.Equal([]string{"2024-01", "2024-02"}, chart.Labels)

	table, err := s.service.MonthlyTable(s.other.ID)
	s.Require().NoError(err)
	s.Empty(table)
}

func (s *LedgerServiceTestSuite) TestGetUpdate_OwnerOnly() {
	entry := s.create("2024-03-01", "expense", 1000, "本")

	_, err := s.service.Get(s.other.ID, entry.ID)
	s.ErrorIs(err, ErrForbidden)

	_, err = s.service.Update(s.other.ID, entry.ID, &dto.LedgerEntryRequest{Date: "2024-03-01", Category: "expense", Amount: 1})
	s.ErrorIs(err, ErrForbidden)

	updated, err := s.service.Update(s.owner.ID, entry.ID, &dto.LedgerEntryRequest{Date: "2024-03-02", Category: "income", Amount: 1500})
	s.Require().NoError(err)
	s.Equal(models.CategoryIncome, updated.Category)
	s.Equal(int64(1500), updated.Amount)
	s.Nil(updated.Memo)
	s.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), updated.Date.UTC())
}

func (s *LedgerServiceTestSuite) TestDelete_UnlinksEvents() {
	entry := s.create("2024-03-01", "expense", 1000, "コンサート")
	id := entry.ID.String()
	event, err := s.events.Create(s.owner.ID, &dto.EventRequest{
		Title:          "ライブ",
		StartTime:      time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC),
		RelatedEntryID: &id,
	})
	s.Require().NoError(err)
	s.Require().NotNil(event.RelatedEntryID)

	s.ErrorIs(s.service.Delete(s.other.ID, entry.ID), ErrForbidden)
	s.Require().NoError(s.service.Delete(s.owner.ID, entry.ID))

	_, err = s.service.Get(s.owner.ID, entry.ID)
	s.ErrorIs(err, repositories.ErrLedgerEntryNotFound)

	reloaded, err := s.events.Get(s.owner.ID, event.ID)
	s.Require().NoError(err)
	s.Nil(reloaded.RelatedEntryID)
}

func (s *LedgerServiceTestSuite) TestWritesAreAudited() {
	entry := s.create("2024-03-01", "expense", 1000, "")
	s.Require().NoError(s.service.Delete(s.owner.ID, entry.ID))

	logs, total, err := s.env.auditLogs.GetByResource(models.AuditResourceLedgerEntry, entry.ID.String(), 0, 10)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(logs, 2)
}
