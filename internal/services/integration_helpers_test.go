package services

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"

	"lifehub/internal/database"
	"lifehub/internal/repositories"
	"lifehub/internal/storage"

	"github.com/google/uuid"
)

type publishedEvent struct {
	userID uuid.UUID
	kind   string
	data   interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(userID uuid.UUID, kind string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{userID: userID, kind: kind, data: data})
}

func (p *recordingPublisher) published() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

// testEnv wires real repositories over an in-memory database.
type testEnv struct {
	db          *database.DB
	store       *storage.LocalStore
	publisher   *recordingPublisher
	audit       AuditServiceInterface
	auditLogger AuditLoggerInterface

	users         repositories.UserRepositoryInterface
	profiles      repositories.ProfileRepositoryInterface
	follows       repositories.FollowRepositoryInterface
	posts         repositories.PostRepositoryInterface
	comments      repositories.CommentRepositoryInterface
	notifications repositories.NotificationRepositoryInterface
	messages      repositories.MessageRepositoryInterface
	ledger        repositories.LedgerRepositoryInterface
	events        repositories.EventRepositoryInterface
	auditLogs     repositories.AuditLogRepositoryInterface
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := database.SetupTestDB(t)
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditLogs := repositories.NewAuditLogRepository(db.DB)

	return &testEnv{
		db:          db,
		store:       storage.NewLocalStore(t.TempDir(), 1<<20),
		publisher:   &recordingPublisher{},
		audit:       NewAuditService(auditLogs, discard),
		auditLogger: NewAuditLogger(discard),

		users:         repositories.NewUserRepository(db.DB),
		profiles:      repositories.NewProfileRepository(db.DB),
		follows:       repositories.NewFollowRepository(db.DB),
		posts:         repositories.NewPostRepository(db.DB),
		comments:      repositories.NewCommentRepository(db.DB),
		notifications: repositories.NewNotificationRepository(db.DB),
		messages:      repositories.NewMessageRepository(db.DB),
		ledger:        repositories.NewLedgerRepository(db.DB),
		events:        repositories.NewEventRepository(db.DB),
		auditLogs:     auditLogs,
	}
}

func textUpload(name, content string) storage.Upload {
	return storage.Upload{
		FileName:    name,
		ContentType: "text/plain",
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(content))), nil
		},
	}
}
