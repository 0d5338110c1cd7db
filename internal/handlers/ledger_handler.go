package handlers

import (
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/errors"
	"lifehub/internal/services"

	"github.com/labstack/echo/v4"
)

// LedgerHandler serves the household ledger and its reports.
type LedgerHandler struct {
	ledgerService services.LedgerServiceInterface
}

func NewLedgerHandler(ledgerService services.LedgerServiceInterface) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// List returns the caller's entries newest first with the monthly table and totals
// @Summary List ledger entries
// @Tags Ledger
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.LedgerListResponse}
// @Router /records [get]
func (h *LedgerHandler) List(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	list, err := h.ledgerService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, list)
}

// Create records an income or expense line
// @Summary Create ledger entry
// @Tags Ledger
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.LedgerEntryRequest true "Entry"
// @Success 201 {object} SuccessResponse{data=models.LedgerEntry}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or LEDGER_003"
// @Router /records [post]
func (h *LedgerHandler) Create(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	var req dto.LedgerEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	entry, err := h.ledgerService.Create(userID, &req)
	if err != nil {
		return respondServiceError(c, err, errors.LedgerEntryNotPermitted)
	}
	return SendData(c, http.StatusCreated, entry)
}

// Get returns one of the caller's entries
// @Summary Ledger entry detail
// @Tags Ledger
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} SuccessResponse{data=models.LedgerEntry}
// @Failure 403 {object} errors.ErrorResponse "LEDGER_002"
// @Failure 404 {object} errors.ErrorResponse "LEDGER_001"
// @Router /records/{id} [get]
func (h *LedgerHandler) Get(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	entryID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	entry, err := h.ledgerService.Get(userID, entryID)
	if err != nil {
		return respondServiceError(c, err, errors.LedgerEntryNotPermitted)
	}
	return SendData(c, http.StatusOK, entry)
}

// Update replaces every field of an entry
// @Summary Update ledger entry
// @Tags Ledger
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body dto.LedgerEntryRequest true "Entry"
// @Router /records/{id} [put]
func (h *LedgerHandler) Update(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	entryID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	var req dto.LedgerEntryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	entry, err := h.ledgerService.Update(userID, entryID, &req)
	if err != nil {
		return respondServiceError(c, err, errors.LedgerEntryNotPermitted)
	}
	return SendData(c, http.StatusOK, entry)
}

// Delete removes an entry; linked events keep existing without the link
// @Summary Delete ledger entry
// @Tags Ledger
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 204
// @Router /records/{id} [delete]
func (h *LedgerHandler) Delete(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	entryID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	if err := h.ledgerService.Delete(userID, entryID); err != nil {
		return respondServiceError(c, err, errors.LedgerEntryNotPermitted)
	}
	return c.NoContent(http.StatusNoContent)
}

// Graph returns the monthly pivot and the expense breakdown
// @Summary Ledger graph data
// @Tags Ledger
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.LedgerGraphResponse}
// @Router /records/graph [get]
func (h *LedgerHandler) Graph(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	graph, err := h.ledgerService.Graph(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, graph)
}

// Chart returns parallel arrays ready for a charting library
// @Summary Ledger chart data
// @Tags Ledger
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.ChartData}
// @Router /records/chart [get]
func (h *LedgerHandler) Chart(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	chart, err := h.ledgerService.Chart(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, chart)
}
