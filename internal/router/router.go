package router

import (
	"strconv"

	"lifehub/internal/handlers"
	"lifehub/internal/middleware"
	"lifehub/internal/repositories"
	"lifehub/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	APIPrefix   = "/api/v1"
	MediaPrefix = "/media"

	// a message may carry several attachments
	maxFilesPerRequest = 5
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Activity      *handlers.ActivityHandler
	Health        *handlers.HealthCheckHandler
	Profiles      *handlers.ProfileHandler
	Feed          *handlers.FeedHandler
	Notifications *handlers.NotificationHandler
	Messages      *handlers.MessageHandler
	Ledger        *handlers.LedgerHandler
	Events        *handlers.EventHandler
	Games         *handlers.GameHandler
}

type Deps struct {
	TokenService     services.TokenServiceInterface
	BlacklistedRepo  repositories.BlacklistedTokenRepositoryInterface
	Registry         *prometheus.Registry
	RateLimiter      *middleware.RateLimiter
	AuthRateLimiter  *middleware.RateLimiter
	CORSAllowOrigins []string
	MediaDir         string
	MaxUploadBytes   int64
}

// New builds the echo instance with the middleware chain and every route.
func New(h Handlers, d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(d.Registry)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(MediaPrefix + "/"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  d.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(bodyLimit(d.MaxUploadBytes)))

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	e.Static(MediaPrefix, d.MediaDir)

	api := e.Group(APIPrefix, d.RateLimiter.Middleware())
	api.GET("/health", h.Health.HealthCheck)

	auth := api.Group("/auth", d.AuthRateLimiter.Middleware())
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	requireAuth := middleware.RequireAuth(d.TokenService, d.BlacklistedRepo)

	// browsers cannot send headers on a websocket handshake
	api.GET("/notifications/stream", h.Notifications.Stream, middleware.TokenFromQuery(), requireAuth)

	p := api.Group("", requireAuth)
	p.POST("/auth/logout", h.Auth.Logout)
	p.GET("/activity", h.Activity.List)
	p.GET("/admin/audit", h.Activity.ResourceHistory, middleware.RequireAdmin())

	p.GET("/profiles", h.Profiles.List)
	p.GET("/profiles/:username", h.Profiles.Detail)
	p.PUT("/profile", h.Profiles.Update)
	p.POST("/follow/:username", h.Profiles.ToggleFollow)

	p.GET("/posts", h.Feed.ListPosts)
	p.POST("/posts", h.Feed.CreatePost)
	p.GET("/posts/:id", h.Feed.GetPost)
	p.PUT("/posts/:id", h.Feed.UpdatePost)
	p.DELETE("/posts/:id", h.Feed.DeletePost)
	p.POST("/posts/:id/like", h.Feed.TogglePostLike)
	p.POST("/posts/:id/comments", h.Feed.CreateComment)
	p.PUT("/comments/:id", h.Feed.UpdateComment)
	p.DELETE("/comments/:id", h.Feed.DeleteComment)
	p.POST("/comments/:id/like", h.Feed.ToggleCommentLike)

	p.GET("/notifications", h.Notifications.List)
	p.POST("/notifications/:id/read", h.Notifications.MarkRead)

	p.GET("/messages/inbox", h.Messages.Inbox)
	p.GET("/messages/outbox", h.Messages.Outbox)
	p.GET("/messages/unread-count", h.Messages.UnreadCount)
	p.POST("/messages", h.Messages.Send)
	p.GET("/messages/:id", h.Messages.Get)
	p.PUT("/messages/:id", h.Messages.Update)
	p.DELETE("/messages/:id", h.Messages.Delete)
	p.GET("/messages/:id/reply", h.Messages.ReplyDraft)
	p.POST("/messages/:id/reply", h.Messages.Reply)
	p.GET("/messages/:id/forward", h.Messages.ForwardDraft)
	p.POST("/messages/:id/forward", h.Messages.Forward)
	p.DELETE("/attachments/:id", h.Messages.DeleteAttachment)

	p.GET("/records", h.Ledger.List)
	p.POST("/records", h.Ledger.Create)
	p.GET("/records/graph", h.Ledger.Graph)
	p.GET("/records/chart", h.Ledger.Chart)
	p.GET("/records/:id", h.Ledger.Get)
	p.PUT("/records/:id", h.Ledger.Update)
	p.DELETE("/records/:id", h.Ledger.Delete)

	p.GET("/schedule", h.Events.Dashboard)
	p.POST("/schedule", h.Events.Create)
	p.GET("/events", h.Events.List)
	p.GET("/events/:id", h.Events.Get)
	p.PUT("/events/:id", h.Events.Update)
	p.DELETE("/events/:id", h.Events.Delete)

	p.POST("/games/janken", h.Games.Janken)
	p.GET("/games/number-guess", h.Games.NumberGuess)
	p.POST("/games/number-guess", h.Games.Guess)
	p.POST("/games/number-guess/reset", h.Games.ResetNumberGuess)
	p.GET("/games/fortune-weather", h.Games.FortuneWeather)
	p.POST("/games/fortune-weather/city", h.Games.SetCity)
	p.POST("/games/fortune-weather/draw", h.Games.DrawFortune)
	p.POST("/games/fortune-weather/reset", h.Games.ResetFortune)

	return e
}

// bodyLimit leaves room for maxFilesPerRequest uploads plus form fields.
func bodyLimit(maxUploadBytes int64) string {
	if maxUploadBytes <= 0 {
		return "2M"
	}
	return strconv.FormatInt(maxUploadBytes*maxFilesPerRequest+1<<20, 10) + "B"
}
