package handlers

import (
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/errors"
	"lifehub/internal/services"

	"github.com/labstack/echo/v4"
)

// GameHandler serves the mini-games. Game state lives in the caller's
// persisted session, never in the handler.
type GameHandler struct {
	gameService services.GameServiceInterface
}

func NewGameHandler(gameService services.GameServiceInterface) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// Janken plays one round of rock-paper-scissors
// @Summary Play janken
// @Tags Games
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.JankenRequest true "Hand: グー, チョキ or パー"
// @Success 200 {object} SuccessResponse{data=dto.JankenResult}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or GAME_001"
// @Router /games/janken [post]
func (h *GameHandler) Janken(c echo.Context) error {
	var req dto.JankenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.gameService.Janken(req.Hand)
	if err != nil {
		return respondServiceError(c, err, errors.AuthInsufficientPermission)
	}
	return SendData(c, http.StatusOK, result)
}

// NumberGuess shows the current game, starting one if needed
// @Summary Number guess state
// @Tags Games
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.NumberGuessState}
// @Router /games/number-guess [get]
func (h *GameHandler) NumberGuess(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	state, err := h.gameService.NumberGuess(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, state)
}

// Guess compares one guess with the answer
// @Summary Submit a guess between 1 and 10
// @Tags Games
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.GuessRequest true "Guess"
// @Success 200 {object} SuccessResponse{data=dto.NumberGuessState}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or GAME_002"
// @Router /games/number-guess [post]
func (h *GameHandler) Guess(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	var req dto.GuessRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	state, err := h.gameService.Guess(userID, req.Guess)
	if err != nil {
		return respondServiceError(c, err, errors.AuthInsufficientPermission)
	}
	return SendData(c, http.StatusOK, state)
}

// ResetNumberGuess clears the whole game session and starts a new game
// @Summary Reset number guess
// @Tags Games
// @Security BearerAuth
// @Router /games/number-guess/reset [post]
func (h *GameHandler) ResetNumberGuess(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	state, err := h.gameService.ResetNumberGuess(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, state)
}

// FortuneWeather shows the stored city, its weather and the current fortune
// @Summary Fortune and weather for the stored city
// @Tags Games
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.FortuneWeatherResponse}
// @Router /games/fortune-weather [get]
func (h *GameHandler) FortuneWeather(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	view, err := h.gameService.FortuneWeather(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, view)
}

// SetCity stores a new city; blank input falls back to the default
// @Summary Change the weather city
// @Tags Games
// @Security BearerAuth
// @Accept json
// @Param request body dto.CityRequest true "City"
// @Router /games/fortune-weather/city [post]
func (h *GameHandler) SetCity(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	var req dto.CityRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	view, err := h.gameService.SetCity(c.Request().Context(), userID, req.City)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, view)
}

// DrawFortune draws and stores a fortune
// @Summary Draw a fortune
// @Tags Games
// @Security BearerAuth
// @Router /games/fortune-weather/draw [post]
func (h *GameHandler) DrawFortune(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	view, err := h.gameService.DrawFortune(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, view)
}

// ResetFortune clears the fortune and keeps the city
// @Summary Reset fortune
// @Tags Games
// @Security BearerAuth
// @Router /games/fortune-weather/reset [post]
func (h *GameHandler) ResetFortune(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	view, err := h.gameService.ResetFortune(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, view)
}
