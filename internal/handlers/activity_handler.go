package handlers

import (
	"net/http"

	"lifehub/internal/errors"
	"lifehub/internal/models"
	"lifehub/internal/services"

	"github.com/labstack/echo/v4"
)

// ActivityHandler exposes the audit trail: a user's own history, and the
// per-resource history for admins.
type ActivityHandler struct {
	auditService services.AuditServiceInterface
}

func NewActivityHandler(auditService services.AuditServiceInterface) *ActivityHandler {
	return &ActivityHandler{auditService: auditService}
}

// List pages through the caller's audit log, newest first
// @Summary List own activity
// @Tags Activity
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse{data=[]models.AuditLog}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid pagination"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Router /activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	page, limit, ok, err := pagination(c)
	if !ok {
		return err
	}

	logs, total, err := h.auditService.Activity(userID, (page-1)*limit, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return sendPage(c, logs, total, page, limit)
}

// ResourceHistory lists every change recorded against one resource
// @Summary Audit history of a resource (admin)
// @Tags Activity
// @Security BearerAuth
// @Produce json
// @Param resource query string true "Resource kind, e.g. post or ledger_entry"
// @Param resource_id query string true "Resource ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} SuccessResponse{data=[]models.AuditLog}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005"
// @Router /admin/audit [get]
func (h *ActivityHandler) ResourceHistory(c echo.Context) error {
	page, limit, ok, err := pagination(c)
	if !ok {
		return err
	}

	logs, total, err := h.auditService.ResourceHistory(c.QueryParam("resource"), c.QueryParam("resource_id"), (page-1)*limit, limit)
	if err != nil {
		return respondServiceError(c, err, errors.AuthInsufficientPermission)
	}

	return sendPage(c, logs, total, page, limit)
}

func pagination(c echo.Context) (page, limit int, ok bool, err error) {
	page = getIntParam(c, "page", 1)
	limit = getIntParam(c, "limit", 20)

	if page < 1 {
		return 0, 0, false, SendError(c, errors.ValidationGeneral,
			errors.WithDetails("page: must be greater than 0"))
	}
	if limit < 1 || limit > 100 {
		return 0, 0, false, SendError(c, errors.ValidationGeneral,
			errors.WithDetails("limit: must be between 1 and 100"))
	}
	return page, limit, true, nil
}

func sendPage(c echo.Context, logs []*models.AuditLog, total int64, page, limit int) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: map[string]interface{}{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}
