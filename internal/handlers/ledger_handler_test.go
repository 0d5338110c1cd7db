package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"
	"lifehub/internal/services"
	"lifehub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := service_mocks.NewMockLedgerServiceInterface(ctrl)
	handler := NewLedgerHandler(ledger)
	e := newTestEcho()
	userID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		memo := "家賃"
		ledger.EXPECT().
			Create(userID, &dto.LedgerEntryRequest{Date: "2024-05-01", Category: "expense", Amount: 80000, Memo: &memo}).
			Return(&models.LedgerEntry{ID: uuid.New(), Amount: 80000}, nil)

		c, rec := authedContext(e, newRequest(http.MethodPost, "/records", map[string]interface{}{
			"date": "2024-05-01", "category": "expense", "amount": 80000, "memo": memo,
		}), userID)

		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown category fails validation", func(t *testing.T) {
		c, _ := authedContext(e, newRequest(http.MethodPost, "/records", map[string]interface{}{
			"date": "2024-05-01", "category": "gift", "amount": 1,
		}), userID)

		assert.Error(t, handler.Create(c))
	})

	t.Run("malformed date fails validation", func(t *testing.T) {
		c, _ := authedContext(e, newRequest(http.MethodPost, "/records", map[string]interface{}{
			"date": "05/01/2024", "category": "income", "amount": 1,
		}), userID)

		assert.Error(t, handler.Create(c))
	})
}

func TestLedgerHandler_ServiceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := service_mocks.NewMockLedgerServiceInterface(ctrl)
	handler := NewLedgerHandler(ledger)
	e := newTestEcho()
	userID, entryID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"other owner", services.ErrForbidden, http.StatusForbidden, "LEDGER_002"},
		{"missing", repositories.ErrLedgerEntryNotFound, http.StatusNotFound, "LEDGER_001"},
		{"bad category", services.ErrInvalidLedgerCategory, http.StatusBadRequest, "LEDGER_003"},
		{"negative amount", services.ErrNegativeAmount, http.StatusBadRequest, "VALIDATION_001"},
		{"wrapped date", fmt.Errorf("%w: %q", services.ErrInvalidLedgerDate, "2024-13-01"), http.StatusBadRequest, "VALIDATION_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger.EXPECT().Update(userID, entryID, gomock.Any()).Return(nil, tt.err)

			c, rec := authedContext(e, newRequest(http.MethodPut, "/records/x", map[string]interface{}{
				"date": "2024-05-01", "category": "income", "amount": 10,
			}), userID, "id", entryID.String())

			require.NoError(t, handler.Update(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(rec).Error.Code)
		})
	}
}

func TestLedgerHandler_Chart(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := service_mocks.NewMockLedgerServiceInterface(ctrl)
	handler := NewLedgerHandler(ledger)
	userID := uuid.New()

	ledger.EXPECT().Chart(userID).Return(&models.ChartData{
		Labels: []string{}, Income: []int64{}, Expense: []int64{}, Balance: []int64{},
		ExpenseLabels: []string{}, ExpenseValues: []int64{},
	}, nil)

	c, rec := authedContext(newTestEcho(), newRequest(http.MethodGet, "/records/chart", nil), userID)
	require.NoError(t, handler.Chart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"labels":[],"income":[],"expense":[],"balance":[],"expense_labels":[],"expense_values":[]}}`, rec.Body.String())
}

func TestEventHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := service_mocks.NewMockEventServiceInterface(ctrl)
	handler := NewEventHandler(events)
	e := newTestEcho()
	userID, eventID := uuid.New(), uuid.New()
	start := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	t.Run("end before start", func(t *testing.T) {
		events.EXPECT().Create(userID, gomock.Any()).Return(nil, models.ErrEventEndBeforeStart)

		c, rec := authedContext(e, newRequest(http.MethodPost, "/schedule", map[string]interface{}{
			"title": "Dentist", "startTime": start, "endTime": start.Add(-time.Hour),
		}), userID)

		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EVENT_003", decodeError(rec).Error.Code)
	})

	t.Run("foreign ledger link", func(t *testing.T) {
		events.EXPECT().Update(userID, eventID, gomock.Any()).Return(nil, services.ErrForbidden)

		c, rec := authedContext(e, newRequest(http.MethodPut, "/events/x", map[string]interface{}{
			"title": "Dentist", "startTime": start, "relatedEntryId": uuid.NewString(),
		}), userID, "id", eventID.String())

		require.NoError(t, handler.Update(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "EVENT_002", decodeError(rec).Error.Code)
	})

	t.Run("malformed related entry", func(t *testing.T) {
		c, _ := authedContext(e, newRequest(http.MethodPost, "/schedule", map[string]interface{}{
			"title": "Dentist", "startTime": start, "relatedEntryId": "nope",
		}), userID)

		assert.Error(t, handler.Create(c))
	})

	t.Run("dashboard", func(t *testing.T) {
		events.EXPECT().Dashboard(userID).Return(&dto.DashboardResponse{Month: "2024-05", Events: []models.Event{}}, nil)

		c, rec := authedContext(e, newRequest(http.MethodGet, "/schedule", nil), userID)
		require.NoError(t, handler.Dashboard(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var dashboard dto.DashboardResponse
		require.NoError(t, decodeData(rec, &dashboard))
		assert.Equal(t, "2024-05", dashboard.Month)
	})

	t.Run("delete missing", func(t *testing.T) {
		events.EXPECT().Delete(userID, eventID).Return(repositories.ErrEventNotFound)

		c, rec := authedContext(e, newRequest(http.MethodDelete, "/events/x", nil), userID, "id", eventID.String())
		require.NoError(t, handler.Delete(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
