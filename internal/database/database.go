package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"lifehub/internal/config"
	"lifehub/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// Models lists every persisted type in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.RefreshToken{},
		&models.BlacklistedToken{},
		&models.AuditLog{},
		&models.Follow{},
		&models.Post{},
		&models.PostLike{},
		&models.Comment{},
		&models.CommentLike{},
		&models.Notification{},
		&models.Message{},
		&models.Attachment{},
		&models.LedgerEntry{},
		&models.Event{},
		&models.GameSession{},
	}
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(Models()...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// CreateIndexes adds the postgres-only partial and expression indexes that
// struct tags cannot express. Failures are logged and skipped.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_username_lower ON users(LOWER(username))",
		"CREATE INDEX IF NOT EXISTS idx_users_deleted_at_null ON users(deleted_at) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_refresh_tokens_active ON refresh_tokens(user_id) WHERE revoked_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_notifications_unread ON notifications(recipient_id, created_at DESC) WHERE is_read = false",
		"CREATE INDEX IF NOT EXISTS idx_messages_inbox ON messages(recipient_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_messages_outbox ON messages(sender_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_posts_feed ON posts(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_recent ON ledger_entries(user_id, date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_events_related_entry ON events(related_entry_id) WHERE related_entry_id IS NOT NULL",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

func (db *DB) CleanupExpiredTokens() error {
	now := time.Now()

	if err := db.DB.Where("expires_at < ?", now).Delete(&models.RefreshToken{}).Error; err != nil {
		return fmt.Errorf("failed to cleanup expired refresh tokens: %w", err)
	}

	if err := db.DB.Where("expires_at < ?", now).Delete(&models.BlacklistedToken{}).Error; err != nil {
		return fmt.Errorf("failed to cleanup expired blacklisted tokens: %w", err)
	}

	return nil
}

// runMigrations applies the SQL migrations over a short-lived lib/pq
// connection, separate from the gorm pool.
func runMigrations(dsn string) (bool, error) {
	migrationDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return false, fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer migrationDB.Close()

	return RunMigrationsIfEnabled(migrationDB)
}

// Initialize connects, migrates and indexes the database. SQL migrations run
// when AUTO_MIGRATE=true; otherwise, or if they fail, AutoMigrate is used.
func Initialize(cfg *config.Config) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	ran, err := runMigrations(cfg.Database.DSN())
	if err != nil {
		slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
	}
	if !ran || err != nil {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized")

	return db, nil
}
