package handlers

import (
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/errors"
	"lifehub/internal/services"

	"github.com/labstack/echo/v4"
)

// FeedHandler serves posts, comments and their likes.
type FeedHandler struct {
	feedService services.FeedServiceInterface
}

func NewFeedHandler(feedService services.FeedServiceInterface) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// ListPosts returns the feed, newest first
// @Summary List posts
// @Tags Feed
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.PostSummary}
// @Router /posts [get]
func (h *FeedHandler) ListPosts(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	posts, err := h.feedService.ListPosts(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, posts)
}

// GetPost returns a post with its comments and like counts
// @Summary Post detail
// @Tags Feed
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} SuccessResponse{data=dto.PostDetailResponse}
// @Failure 404 {object} errors.ErrorResponse "POST_001"
// @Router /posts/{id} [get]
func (h *FeedHandler) GetPost(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	postID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	post, err := h.feedService.GetPost(userID, postID)
	if err != nil {
		return respondServiceError(c, err, errors.PostNotPermitted)
	}
	return SendData(c, http.StatusOK, post)
}

// CreatePost publishes a post with an optional image
// @Summary Create post
// @Tags Feed
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param image formData file false "Image"
// @Success 201 {object} SuccessResponse{data=models.Post}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Router /posts [post]
func (h *FeedHandler) CreatePost(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	var req dto.PostRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	image, err := formFile(c, "image")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid image upload"))
	}

	post, err := h.feedService.CreatePost(userID, &req, image)
	if err != nil {
		return respondServiceError(c, err, errors.PostNotPermitted)
	}
	return SendData(c, http.StatusCreated, post)
}

// UpdatePost edits a post. Only the author may do so
// @Summary Update post
// @Tags Feed
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} SuccessResponse{data=models.Post}
// @Failure 403 {object} errors.ErrorResponse "POST_002"
// @Failure 404 {object} errors.ErrorResponse "POST_001"
// @Router /posts/{id} [put]
func (h *FeedHandler) UpdatePost(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	postID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	var req dto.PostRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	image, err := formFile(c, "image")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid image upload"))
	}

	post, err := h.feedService.UpdatePost(userID, postID, &req, image)
	if err != nil {
		return respondServiceError(c, err, errors.PostNotPermitted)
	}
	return SendData(c, http.StatusOK, post)
}

// DeletePost removes a post with its comments and likes
// @Summary Delete post
// @Tags Feed
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse "POST_002"
// @Router /posts/{id} [delete]
func (h *FeedHandler) DeletePost(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	postID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	if err := h.feedService.DeletePost(userID, postID); err != nil {
		return respondServiceError(c, err, errors.PostNotPermitted)
	}
	return c.NoContent(http.StatusNoContent)
}

// TogglePostLike likes or unlikes a post
// @Summary Toggle post like
// @Tags Feed
// @Security BearerAuth
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} SuccessResponse{data=dto.ToggleResult}
// @Router /posts/{id}/like [post]
func (h *FeedHandler) TogglePostLike(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	postID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	result, err := h.feedService.TogglePostLike(userID, postID)
	if err != nil {
		return respondServiceError(c, err, errors.PostNotPermitted)
	}
	return SendData(c, http.StatusOK, result)
}

// CreateComment adds a comment to a post
// @Summary Comment on a post
// @Tags Feed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.CommentRequest true "Comment"
// @Success 201 {object} SuccessResponse{data=models.Comment}
// @Router /posts/{id}/comments [post]
func (h *FeedHandler) CreateComment(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	postID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	var req dto.CommentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	comment, err := h.feedService.CreateComment(userID, postID, &req)
	if err != nil {
		return respondServiceError(c, err, errors.CommentNotPermitted)
	}
	return SendData(c, http.StatusCreated, comment)
}

// UpdateComment replaces the body of the caller's comment
// @Summary Edit own comment
// @Tags Feed
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Router /comments/{id} [put]
func (h *FeedHandler) UpdateComment(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	commentID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	var req dto.CommentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	comment, err := h.feedService.UpdateComment(userID, commentID, &req)
	if err != nil {
		return respondServiceError(c, err, errors.CommentNotPermitted)
	}
	return SendData(c, http.StatusOK, comment)
}

// DeleteComment removes the caller's comment
// @Summary Delete own comment
// @Tags Feed
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Router /comments/{id} [delete]
func (h *FeedHandler) DeleteComment(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	commentID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	if err := h.feedService.DeleteComment(userID, commentID); err != nil {
		return respondServiceError(c, err, errors.CommentNotPermitted)
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleCommentLike likes or unlikes a comment
// @Summary Toggle comment like
// @Tags Feed
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Router /comments/{id}/like [post]
func (h *FeedHandler) ToggleCommentLike(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	commentID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	result, err := h.feedService.ToggleCommentLike(userID, commentID)
	if err != nil {
		return respondServiceError(c, err, errors.CommentNotPermitted)
	}
	return SendData(c, http.StatusOK, result)
}
