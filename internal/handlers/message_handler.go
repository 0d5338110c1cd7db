package handlers

import (
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/errors"
	"lifehub/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// attachmentField is the multipart field carrying message files.
const attachmentField = "attachments"

// MessageHandler serves private messages and their attachments.
type MessageHandler struct {
	messageService services.MessageServiceInterface
}

func NewMessageHandler(messageService services.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Inbox lists received messages with the unread count
// @Summary Received messages, newest first
// @Tags Messages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.MessageListResponse}
// @Router /messages/inbox [get]
func (h *MessageHandler) Inbox(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	list, err := h.messageService.Inbox(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, list)
}

// Outbox lists sent messages
// @Summary Sent messages, newest first
// @Tags Messages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.MessageListResponse}
// @Router /messages/outbox [get]
func (h *MessageHandler) Outbox(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	list, err := h.messageService.Outbox(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, list)
}

// UnreadCount backs the unread badge
// @Summary Number of unread received messages
// @Tags Messages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UnreadCountResponse}
// @Router /messages/unread-count [get]
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	count, err := h.messageService.UnreadCount(userID)
	if err != nil {
		return SendSystemError(c, err)
	}
	return SendData(c, http.StatusOK, dto.UnreadCountResponse{Unread: count})
}

// Send composes a new message. Multipart requests may attach files
// @Summary Send message
// @Tags Messages
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param recipient formData string true "Recipient username"
// @Param subject formData string true "Subject"
// @Param body formData string true "Body"
// @Param attachments formData file false "Files"
// @Success 201 {object} SuccessResponse{data=models.Message}
// @Failure 404 {object} errors.ErrorResponse "MESSAGE_003 - Recipient not found"
// @Router /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}

	var req dto.MessageRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	files, err := formFiles(c, attachmentField)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid attachment upload"))
	}

	message, err := h.messageService.Send(userID, &req, files)
	if err != nil {
		return respondServiceError(c, err, errors.MessageNotPermitted)
	}
	return SendData(c, http.StatusCreated, message)
}

// Get returns a message to its sender or recipient; the recipient's first
// view marks it read
// @Summary Message detail
// @Tags Messages
// @Security BearerAuth
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} SuccessResponse{data=models.Message}
// @Failure 403 {object} errors.ErrorResponse "MESSAGE_002"
// @Failure 404 {object} errors.ErrorResponse "MESSAGE_001"
// @Router /messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	messageID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	message, err := h.messageService.Get(userID, messageID)
	if err != nil {
		return respondServiceError(c, err, errors.MessageNotPermitted)
	}
	return SendData(c, http.StatusOK, message)
}

// Update edits subject and body and appends any new files
// @Summary Edit sent message
// @Tags Messages
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} SuccessResponse{data=models.Message}
// @Failure 409 {object} errors.ErrorResponse "MESSAGE_004 - Message has been deleted"
// @Router /messages/{id} [put]
func (h *MessageHandler) Update(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	messageID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	var req dto.MessageUpdateRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	files, err := formFiles(c, attachmentField)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid attachment upload"))
	}

	message, err := h.messageService.Update(userID, messageID, &req, files)
	if err != nil {
		return respondServiceError(c, err, errors.MessageNotPermitted)
	}
	return SendData(c, http.StatusOK, message)
}

// Delete soft-deletes a sent message; the row stays with a placeholder body
// @Summary Delete sent message
// @Tags Messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	messageID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	if err := h.messageService.Delete(userID, messageID); err != nil {
		return respondServiceError(c, err, errors.MessageNotPermitted)
	}
	return c.NoContent(http.StatusNoContent)
}

// ReplyDraft pre-fills a reply to a received message
// @Summary Pre-filled reply
// @Tags Messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} SuccessResponse{data=dto.MessageDraft}
// @Router /messages/{id}/reply [get]
func (h *MessageHandler) ReplyDraft(c echo.Context) error {
	return h.draft(c, h.messageService.ReplyDraft)
}

// ForwardDraft pre-fills a forward of a sent message
// @Summary Pre-filled forward
// @Tags Messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} SuccessResponse{data=dto.MessageDraft}
// @Router /messages/{id}/forward [get]
func (h *MessageHandler) ForwardDraft(c echo.Context) error {
	return h.draft(c, h.messageService.ForwardDraft)
}

func (h *MessageHandler) draft(c echo.Context, build func(actorID, messageID uuid.UUID) (*dto.MessageDraft, error)) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	messageID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	draft, err := build(userID, messageID)
	if err != nil {
		return respondServiceError(c, err, errors.MessageNotPermitted)
	}
	return SendData(c, http.StatusOK, draft)
}

// Reply answers a received message; the recipient is the original sender
// @Summary Reply to message
// @Tags Messages
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Message ID"
// @Success 201 {object} SuccessResponse{data=models.Message}
// @Router /messages/{id}/reply [post]
func (h *MessageHandler) Reply(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	messageID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	var req dto.ReplyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	files, err := formFiles(c, attachmentField)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid attachment upload"))
	}

	message, err := h.messageService.Reply(userID, messageID, &req, files)
	if err != nil {
		return respondServiceError(c, err, errors.MessageNotPermitted)
	}
	return SendData(c, http.StatusCreated, message)
}

// Forward resends a sent message to a new recipient
// @Summary Forward message
// @Tags Messages
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Message ID"
// @Success 201 {object} SuccessResponse{data=models.Message}
// @Router /messages/{id}/forward [post]
func (h *MessageHandler) Forward(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	messageID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	var req dto.ForwardRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	files, err := formFiles(c, attachmentField)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid attachment upload"))
	}

	message, err := h.messageService.Forward(userID, messageID, &req, files)
	if err != nil {
		return respondServiceError(c, err, errors.MessageNotPermitted)
	}
	return SendData(c, http.StatusCreated, message)
}

// DeleteAttachment removes one file from a message the caller sent
// @Summary Delete attachment
// @Tags Messages
// @Security BearerAuth
// @Param id path string true "Attachment ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "MESSAGE_005"
// @Router /attachments/{id} [delete]
func (h *MessageHandler) DeleteAttachment(c echo.Context) error {
	userID, ok, err := actor(c)
	if !ok {
		return err
	}
	attachmentID, ok, err := idParam(c, "id")
	if !ok {
		return err
	}

	if err := h.messageService.DeleteAttachment(userID, attachmentID); err != nil {
		return respondServiceError(c, err, errors.MessageNotPermitted)
	}
	return c.NoContent(http.StatusNoContent)
}
