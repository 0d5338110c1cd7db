package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_SetMetadata(t *testing.T) {
	log := &AuditLog{Action: AuditActionUpdate, Resource: AuditResourceLedgerEntry}

	log.SetMetadata("category", CategoryExpense)
	log.SetMetadata("amount", int64(1200))
	log.SetMetadata("amount", int64(1500))

	assert.Equal(t, JSONBMap{"category": CategoryExpense, "amount": int64(1500)}, log.Metadata)
}

func TestAuditLog_MetadataSurvivesStorage(t *testing.T) {
	log := &AuditLog{Action: AuditActionUpdate, Resource: AuditResourceMessage}
	log.SetMetadata("attachments_added", 2)

	stored, err := log.Metadata.Value()
	require.NoError(t, err)

	var loaded AuditLog
	require.NoError(t, loaded.Metadata.Scan(stored))

	assert.Equal(t, float64(2), loaded.GetMetadata("attachments_added", 0))
	assert.Equal(t, "none", loaded.GetMetadata("reason", "none"))
}

func TestAuditLog_GetMetadata_Empty(t *testing.T) {
	log := &AuditLog{Action: AuditActionDelete, Resource: AuditResourceMessage}

	assert.Equal(t, 0, log.GetMetadata("attachments_added", 0))

	value, err := log.Metadata.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestAuditLog_String(t *testing.T) {
	actor := uuid.New()
	entryID := uuid.New()
	log := &AuditLog{
		UserID:     &actor,
		Action:     AuditActionCreate,
		Resource:   AuditResourceLedgerEntry,
		ResourceID: entryID.String(),
		IPAddress:  "203.0.113.7",
		CreatedAt:  time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	}

	str := log.String()
	assert.Contains(t, str, actor.String())
	assert.Contains(t, str, "ledger_entry/"+entryID.String())
	assert.Contains(t, str, "Action: create")
	assert.Contains(t, str, "2024-04-01T09:00:00Z")

	log.UserID = nil
	assert.Contains(t, log.String(), "User: anonymous")
}
