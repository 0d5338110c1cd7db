package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to responses. Files under mediaPrefix
// are user uploads: they may be cached but are served sandboxed.
func SecurityHeaders(mediaPrefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			if mediaPrefix != "" && strings.HasPrefix(c.Request().URL.Path, mediaPrefix) {
				h.Set("Content-Security-Policy", "default-src 'none'; img-src 'self'; sandbox")
				h.Set("Cache-Control", "private, max-age=86400")
				return next(c)
			}

			h.Set("Content-Security-Policy", "default-src 'self'")
			// private messages and ledgers must not be cached
			h.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")

			return next(c)
		}
	}
}
