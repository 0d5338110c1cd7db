package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_Validate(t *testing.T) {
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)
	after := start.Add(time.Hour)
	owner := uuid.New()

	assert.NoError(t, (&Event{UserID: owner, Title: "歯医者", StartTime: start}).Validate())
	assert.NoError(t, (&Event{UserID: owner, Title: "歯医者", StartTime: start, EndTime: &after}).Validate())
	assert.NoError(t, (&Event{UserID: owner, Title: "歯医者", StartTime: start, EndTime: &start}).Validate())
	assert.ErrorIs(t, (&Event{UserID: owner, Title: "歯医者", StartTime: start, EndTime: &before}).Validate(), ErrEventEndBeforeStart)
	assert.Error(t, (&Event{UserID: owner, StartTime: start}).Validate())
	assert.Error(t, (&Event{UserID: owner, Title: "x"}).Validate())
}

func TestNotification_Validate(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.NoError(t, (&Notification{SenderID: a, RecipientID: b, Kind: NotificationFollow}).Validate())
	assert.ErrorIs(t, (&Notification{SenderID: a, RecipientID: a, Kind: NotificationFollow}).Validate(), ErrSelfNotification)

	err := (&Notification{SenderID: a, RecipientID: b, Kind: "poke"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid notification kind")
}

func TestLedgerEntry_Validate(t *testing.T) {
	owner := uuid.New()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, (&LedgerEntry{UserID: owner, Date: day, Category: CategoryIncome, Amount: 1000}).Validate())
	assert.Error(t, (&LedgerEntry{UserID: owner, Date: day, Category: "gift", Amount: 1000}).Validate())
	assert.Error(t, (&LedgerEntry{UserID: owner, Category: CategoryExpense, Amount: 1000}).Validate())
	assert.Error(t, (&LedgerEntry{UserID: owner, Date: day, Category: CategoryExpense, Amount: -1}).Validate())
}

func TestLedgerCategory_Label(t *testing.T) {
	assert.Equal(t, "収入", CategoryIncome.Label())
	assert.Equal(t, "支出", CategoryExpense.Label())
}

func TestFollow_BeforeCreate_RejectsSelf(t *testing.T) {
	id := uuid.New()
	assert.ErrorIs(t, (&Follow{FollowerID: id, FolloweeID: id}).BeforeCreate(nil), ErrSelfFollow)
}

func TestGameSession_Reset(t *testing.T) {
	answer := 7
	fortune := "大吉"
	session := GameSession{Answer: &answer, Message: "hint", City: "Osaka", Fortune: &fortune}

	session.Reset()

	assert.False(t, session.HasAnswer())
	assert.Empty(t, session.Message)
	assert.Empty(t, session.City)
	assert.Nil(t, session.Fortune)
}

func TestPlaceholderWeather(t *testing.T) {
	w := PlaceholderWeather("Sapporo")

	assert.Equal(t, "Sapporo", w.City)
	assert.Equal(t, "情報取得エラー", w.Condition)
	assert.Equal(t, "--", w.Temperature)
	assert.Empty(t, w.IconURL)
	assert.False(t, w.Available())
}
