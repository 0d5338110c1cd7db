package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// AuditLogger writes domain events as structured log lines. It complements
// the audit_logs table, which only records user-facing changes.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogNotificationCreated(ctx context.Context, notificationID, senderID, recipientID uuid.UUID, kind string) {
	al.logger.InfoContext(ctx, "notification created",
		slog.String("event_type", "notification_created"),
		slog.String("notification_id", notificationID.String()),
		slog.String("sender_id", senderID.String()),
		slog.String("recipient_id", recipientID.String()),
		slog.String("kind", kind),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMessageSent(ctx context.Context, messageID, senderID, recipientID uuid.UUID, kind string, attachments int) {
	al.logger.InfoContext(ctx, "message sent",
		slog.String("event_type", "message_sent"),
		slog.String("message_id", messageID.String()),
		slog.String("sender_id", senderID.String()),
		slog.String("recipient_id", recipientID.String()),
		slog.String("kind", kind),
		slog.Int("attachments", attachments),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMessageDeleted(ctx context.Context, messageID, actorID uuid.UUID) {
	al.logger.InfoContext(ctx, "message soft deleted",
		slog.String("event_type", "message_deleted"),
		slog.String("message_id", messageID.String()),
		slog.String("actor_id", actorID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAttachmentCleanup(ctx context.Context, path string, err error) {
	al.logger.WarnContext(ctx, "failed to remove orphaned upload",
		slog.String("event_type", "attachment_cleanup_failed"),
		slog.String("path", path),
		slog.Any("error", err),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLedgerEntryChanged(ctx context.Context, entryID, userID uuid.UUID, action string) {
	al.logger.InfoContext(ctx, "ledger entry changed",
		slog.String("event_type", "ledger_entry_"+action),
		slog.String("entry_id", entryID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogWeatherLookupFailed(ctx context.Context, city string, errorMsg string) {
	al.logger.WarnContext(ctx, "weather lookup failed",
		slog.String("event_type", "weather_lookup_failed"),
		slog.String("city", city),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, resourceID uuid.UUID) {
	al.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("operation", operation),
		slog.String("user_id", userID.String()),
		slog.String("resource_id", resourceID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	RequestIDKey     contextKey = "request_id"
)

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}

	return ""
}
