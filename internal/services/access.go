package services

import (
	"errors"

	"lifehub/internal/models"

	"github.com/google/uuid"
)

var (
	ErrForbidden = errors.New("action not permitted for this user")
	ErrInvalidID = errors.New("invalid identifier")
)

type owned interface {
	OwnerID() uuid.UUID
}

// requireOwner rejects actors other than the resource owner.
func requireOwner[T owned](resource T, actorID uuid.UUID) error {
	if resource.OwnerID() != actorID {
		return ErrForbidden
	}
	return nil
}

func canView(message *models.Message, actorID uuid.UUID) error {
	if !message.IsParticipant(actorID) {
		return ErrForbidden
	}
	return nil
}

func canReply(message *models.Message, actorID uuid.UUID) error {
	if message.RecipientID != actorID {
		return ErrForbidden
	}
	return nil
}

func canForward(message *models.Message, actorID uuid.UUID) error {
	if message.SenderID != actorID {
		return ErrForbidden
	}
	return nil
}

func canEdit(message *models.Message, actorID uuid.UUID) error {
	return canForward(message, actorID)
}
