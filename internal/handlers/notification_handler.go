package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"lifehub/internal/errors"
	"lifehub/internal/realtime"
	"lifehub/internal/services"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// NotificationStream holds live connections; *realtime.Hub implements it.
type NotificationStream interface {
	Serve(ctx context.Context, userID uuid.UUID, conn realtime.Conn)
}

type NotificationHandler struct {
	notificationService services.NotificationServiceInterface
	stream              NotificationStream
	upgrader            websocket.Upgrader
}

// NewNotificationHandler accepts websocket upgrades from allowedOrigins; "*" allows any.
func NewNotificationHandler(notificationService services.NotificationServiceInterface, stream NotificationStream, allowedOrigins []string) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		stream:              stream,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

// List returns the caller's latest notifications and unread count
// @Summary List notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max items (default 20, max 100)"
// @Success 200 {object} SuccessResponse{data=dto.NotificationListResponse}
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	list, err := h.notificationService.List(userID, getIntParam(c, "limit", services.DefaultNotificationLimit))
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, list)
}

// MarkRead marks one of the caller's notifications read
// @Summary Mark a notification as read
// @Tags Notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse "NOTIFICATION_002"
// @Failure 404 {object} errors.ErrorResponse "NOTIFICATION_001"
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	notificationID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	if err := h.notificationService.MarkRead(userID, notificationID); err != nil {
		return respondServiceError(c, err, errors.NotificationNotPermitted)
	}
	return c.NoContent(http.StatusNoContent)
}

// Stream upgrades to a websocket that receives the caller's new notifications.
// It blocks until the client disconnects or the server shuts down.
// @Summary Live notification stream (websocket)
// @Tags Notifications
// @Security BearerAuth
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already answered the client.
		slog.Debug("websocket upgrade failed", "user_id", userID, "error", err)
		return nil
	}

	h.stream.Serve(c.Request().Context(), userID, conn)
	return nil
}
