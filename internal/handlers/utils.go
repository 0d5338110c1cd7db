package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"lifehub/internal/errors"
	"lifehub/internal/storage"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// actor returns the authenticated user ID, answering 401 itself when it is
// missing. Callers return the error when ok is false.
func actor(c echo.Context) (uuid.UUID, bool, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return uuid.Nil, false, SendError(c, errors.AuthMissingToken)
	}
	return userID, true, nil
}

// idParam parses the named path parameter as a UUID, answering 400 when it
// is malformed.
func idParam(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, SendError(c, errors.ValidationInvalidID, errors.WithDetails(name+" must be a valid UUID"))
	}
	return id, true, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formFile returns the upload in field, or nil when the request is not
// multipart or the field is absent.
func formFile(c echo.Context, field string) (*storage.Upload, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	upload := storage.FromFileHeader(fh)
	return &upload, nil
}

// formFiles returns every upload in field; JSON requests carry none.
func formFiles(c echo.Context, field string) ([]storage.Upload, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	headers := form.File[field]
	uploads := make([]storage.Upload, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, storage.FromFileHeader(fh))
	}
	return uploads, nil
}
