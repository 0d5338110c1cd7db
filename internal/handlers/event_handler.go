package handlers

import (
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/errors"
	"lifehub/internal/services"

	"github.com/labstack/echo/v4"
)

// EventHandler serves the calendar.
type EventHandler struct {
	eventService services.EventServiceInterface
}

func NewEventHandler(eventService services.EventServiceInterface) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Dashboard returns this month's events
// @Summary Schedule dashboard
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.DashboardResponse}
// @Router /schedule [get]
func (h *EventHandler) Dashboard(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	dashboard, err := h.eventService.Dashboard(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, dashboard)
}

// List returns all of the caller's events by start time
// @Summary List events
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Event}
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	events, err := h.eventService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, events)
}

// Create adds an event, optionally linked to one of the caller's ledger entries
// @Summary Create event
// @Tags Calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.EventRequest true "Event"
// @Success 201 {object} SuccessResponse{data=models.Event}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or EVENT_003"
// @Failure 403 {object} errors.ErrorResponse "EVENT_002 - Linked entry belongs to another user"
// @Router /schedule [post]
func (h *EventHandler) Create(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	event, err := h.eventService.Create(userID, &req)
	if err != nil {
		return respondServiceError(c, err, errors.EventNotPermitted)
	}
	return SendData(c, http.StatusCreated, event)
}

// @Summary Event detail
// @Tags Calendar
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Router /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	eventID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	event, err := h.eventService.Get(userID, eventID)
	if err != nil {
		return respondServiceError(c, err, errors.EventNotPermitted)
	}
	return SendData(c, http.StatusOK, event)
}

// @Summary Update event
// @Tags Calendar
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.EventRequest true "Event"
// @Router /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	eventID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	event, err := h.eventService.Update(userID, eventID, &req)
	if err != nil {
		return respondServiceError(c, err, errors.EventNotPermitted)
	}
	return SendData(c, http.StatusOK, event)
}

// @Summary Delete event
// @Tags Calendar
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	eventID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	if err := h.eventService.Delete(userID, eventID); err != nil {
		return respondServiceError(c, err, errors.EventNotPermitted)
	}
	return c.NoContent(http.StatusNoContent)
}
