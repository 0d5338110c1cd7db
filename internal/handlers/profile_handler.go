package handlers

import (
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/errors"
	"lifehub/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves profiles and the follow toggle.
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
}

func NewProfileHandler(profileService services.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// List returns every profile
// @Summary List profiles
// @Tags Profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.ProfileSummary}
// @Router /profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.profileService.List()
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, profiles)
}

// Detail returns one profile with follow counts
// @Summary Profile detail
// @Tags Profiles
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} SuccessResponse{data=dto.ProfileResponse}
// @Failure 404 {object} errors.ErrorResponse "PROFILE_001"
// @Router /profiles/{username} [get]
func (h *ProfileHandler) Detail(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	profile, err := h.profileService.Detail(userID, c.Param("username"))
	if err != nil {
		return respondServiceError(c, err, errors.AuthInsufficientPermission)
	}
	return SendData(c, http.StatusOK, profile)
}

// Update changes the caller's bio and, for multipart requests, the avatar
// @Summary Update own profile
// @Tags Profiles
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param bio formData string false "Biography"
// @Param avatar formData file false "Avatar image"
// @Success 200 {object} SuccessResponse{data=dto.ProfileResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 413 {object} errors.ErrorResponse "VALIDATION_008"
// @Router /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	var req dto.ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	avatar, err := formFile(c, "avatar")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid avatar upload"))
	}

	profile, err := h.profileService.Update(userID, &req, avatar)
	if err != nil {
		return respondServiceError(c, err, errors.AuthInsufficientPermission)
	}
	return SendData(c, http.StatusOK, profile)
}

// ToggleFollow follows the named user, or unfollows when already following
// @Summary Toggle follow
// @Tags Profiles
// @Security BearerAuth
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} SuccessResponse{data=dto.ToggleResult}
// @Failure 400 {object} errors.ErrorResponse "PROFILE_002 - Cannot follow yourself"
// @Failure 404 {object} errors.ErrorResponse "PROFILE_001"
// @Router /follow/{username} [post]
func (h *ProfileHandler) ToggleFollow(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	result, err := h.profileService.ToggleFollow(userID, c.Param("username"))
	if err != nil {
		return respondServiceError(c, err, errors.AuthInsufficientPermission)
	}
	return SendData(c, http.StatusOK, result)
}
