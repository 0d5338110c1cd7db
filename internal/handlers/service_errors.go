package handlers

import (
	stderrors "errors"

	"lifehub/internal/errors"
	"lifehub/internal/models"
	"lifehub/internal/repositories"
	"lifehub/internal/services"
	"lifehub/internal/storage"

	"github.com/labstack/echo/v4"
)

var notFoundCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{repositories.ErrUserNotFound, errors.ProfileNotFound},
	{repositories.ErrProfileNotFound, errors.ProfileNotFound},
	{repositories.ErrPostNotFound, errors.PostNotFound},
	{repositories.ErrCommentNotFound, errors.CommentNotFound},
	{repositories.ErrNotificationNotFound, errors.NotificationNotFound},
	{repositories.ErrMessageNotFound, errors.MessageNotFound},
	{repositories.ErrAttachmentNotFound, errors.AttachmentNotFound},
	{repositories.ErrLedgerEntryNotFound, errors.LedgerEntryNotFound},
	{repositories.ErrEventNotFound, errors.EventNotFound},
	{services.ErrRecipientNotFound, errors.MessageRecipientNotFound},
}

var invalidInputErrors = []error{
	services.ErrInvalidPost,
	services.ErrInvalidComment,
	services.ErrInvalidMessage,
	services.ErrInvalidEvent,
	services.ErrInvalidLedgerDate,
	services.ErrNegativeAmount,
	services.ErrInvalidResource,
	services.ErrPasswordEmpty,
	services.ErrPasswordTooShort,
	services.ErrPasswordTooLong,
	services.ErrPasswordNoUppercase,
	services.ErrPasswordNoLowercase,
	services.ErrPasswordNoNumber,
	services.ErrPasswordNoSpecial,
	storage.ErrEmptyFile,
}

// respondServiceError answers err with its coded envelope. forbidden is the
// code used for services.ErrForbidden on the resource being handled.
// Anything unrecognised is a system error.
func respondServiceError(c echo.Context, err error, forbidden errors.ErrorCode) error {
	if stderrors.Is(err, services.ErrForbidden) {
		return SendError(c, forbidden)
	}

	for _, nf := range notFoundCodes {
		if stderrors.Is(err, nf.err) {
			return SendError(c, nf.code)
		}
	}

	for _, target := range invalidInputErrors {
		if stderrors.Is(err, target) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
	}

	switch {
	case stderrors.Is(err, services.ErrInvalidID):
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrSelfFollow):
		return SendError(c, errors.ProfileSelfFollow)
	case stderrors.Is(err, services.ErrMessageDeleted):
		return SendError(c, errors.MessageDeleted)
	case stderrors.Is(err, services.ErrInvalidLedgerCategory):
		return SendError(c, errors.LedgerInvalidCategory)
	case stderrors.Is(err, models.ErrEventEndBeforeStart):
		return SendError(c, errors.EventInvalidRange)
	case stderrors.Is(err, services.ErrInvalidHand):
		return SendError(c, errors.GameInvalidHand)
	case stderrors.Is(err, services.ErrInvalidGuess):
		return SendError(c, errors.GameInvalidGuess)
	case stderrors.Is(err, storage.ErrFileTooLarge):
		return SendError(c, errors.ValidationFileTooLarge)
	}

	return SendSystemError(c, err)
}
