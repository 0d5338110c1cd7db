package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"lifehub/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panic into a SYSTEM_001 response. The websocket stream
// has hijacked its connection, so nothing is written for it once committed.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				attrs := []any{
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				}
				if userID := c.Get("user_id"); userID != nil {
					attrs = append(attrs, "user_id", userID)
				}
				slog.ErrorContext(c.Request().Context(), "Panic recovered", attrs...)

				if c.Response().Committed {
					return
				}
				if sendErr := c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID)); sendErr != nil {
					slog.Error("Failed to send panic recovery response",
						"trace_id", traceID,
						"error", sendErr.Error(),
					)
				}
			}()

			return next(c)
		}
	}
}
