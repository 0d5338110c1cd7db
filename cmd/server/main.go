package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifehub/internal/config"
	"lifehub/internal/database"
	"lifehub/internal/handlers"
	"lifehub/internal/middleware"
	"lifehub/internal/realtime"
	"lifehub/internal/repositories"
	"lifehub/internal/router"
	"lifehub/internal/services"
	"lifehub/internal/storage"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout      = 30 * time.Second
	tokenCleanupInterval = time.Hour
	visitorPruneInterval = time.Minute
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewPrometheusMetrics(registry)

	store := storage.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.MaxUploadBytes)
	hub := realtime.NewHub(logger.With("component", "realtime"))
	hub.ObserveConnections(func(total int) {
		metrics.RecordGauge(services.MetricLiveConnections, float64(total), nil)
	})

	userRepo := repositories.NewUserRepository(db.DB)
	profileRepo := repositories.NewProfileRepository(db.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db.DB)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)
	followRepo := repositories.NewFollowRepository(db.DB)
	postRepo := repositories.NewPostRepository(db.DB)
	commentRepo := repositories.NewCommentRepository(db.DB)
	notificationRepo := repositories.NewNotificationRepository(db.DB)
	messageRepo := repositories.NewMessageRepository(db.DB)
	ledgerRepo := repositories.NewLedgerRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	gameSessionRepo := repositories.NewGameSessionRepository(db.DB)

	auditLogger := services.NewAuditLogger(logger.With("component", "audit"))
	auditService := services.NewAuditService(auditRepo, logger)
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security)

	breakerConfig := services.DefaultCircuitBreakerConfig()
	breakerConfig.OnStateChange = services.WeatherBreakerHooks(auditLogger, metrics)
	weatherService := services.NewWeatherService(cfg.Weather, nil, services.NewCircuitBreaker(breakerConfig), metrics, auditLogger, logger)

	authService := services.NewAuthService(db, userRepo, profileRepo, refreshTokenRepo, auditRepo, blacklistedTokenRepo, passwordService, tokenService, metrics, logger)
	profileService := services.NewProfileService(db, profileRepo, followRepo, notificationRepo, store, hub, auditService, auditLogger, metrics)
	feedService := services.NewFeedService(db, postRepo, commentRepo, notificationRepo, store, hub, auditService, auditLogger, metrics)
	notificationService := services.NewNotificationService(notificationRepo, auditLogger)
	messageService := services.NewMessageService(db, messageRepo, userRepo, store, auditService, auditLogger, metrics)
	ledgerService := services.NewLedgerService(db, ledgerRepo, eventRepo, auditService, auditLogger, metrics)
	eventService := services.NewEventService(eventRepo, ledgerRepo, auditService, auditLogger, nil)
	gameService := services.NewGameService(gameSessionRepo, weatherService, nil, metrics, cfg.Weather.DefaultCity)

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2)
	authRateLimiter := middleware.NewRateLimiter(cfg.Security.AuthRateLimit, cfg.Security.AuthRateLimit*2)

	e := router.New(router.Handlers{
		Auth:          handlers.NewAuthHandler(authService),
		Activity:      handlers.NewActivityHandler(auditService),
		Health:        handlers.NewHealthCheckHandler(db),
		Profiles:      handlers.NewProfileHandler(profileService),
		Feed:          handlers.NewFeedHandler(feedService),
		Notifications: handlers.NewNotificationHandler(notificationService, hub, cfg.Server.CORSAllowOrigins),
		Messages:      handlers.NewMessageHandler(messageService),
		Ledger:        handlers.NewLedgerHandler(ledgerService),
		Events:        handlers.NewEventHandler(eventService),
		Games:         handlers.NewGameHandler(gameService),
	}, router.Deps{
		TokenService:     tokenService,
		BlacklistedRepo:  blacklistedTokenRepo,
		Registry:         registry,
		RateLimiter:      rateLimiter,
		AuthRateLimiter:  authRateLimiter,
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		MediaDir:         cfg.Storage.UploadDir,
		MaxUploadBytes:   cfg.Storage.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		rateLimiter.Run(gctx, visitorPruneInterval)
		return nil
	})

	g.Go(func() error {
		authRateLimiter.Run(gctx, visitorPruneInterval)
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(tokenCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := db.CleanupExpiredTokens(); err != nil {
					logger.Warn("token cleanup failed", "error", err)
				}
			}
		}
	})

	g.Go(func() error {
		logger.Info("starting lifehub server", "addr", srv.Addr, "env", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
