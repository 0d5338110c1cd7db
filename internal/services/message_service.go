package services

import (
	"context"
	"errors"
	"fmt"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"
	"lifehub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageKindNew     = "new"
	MessageKindReply   = "reply"
	MessageKindForward = "forward"
)

var (
	ErrMessageDeleted    = errors.New("message has been deleted")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrInvalidMessage    = errors.New("invalid message")
)

type MessageService struct {
	transactor  repositories.Transactor
	messageRepo repositories.MessageRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	store       storage.FileStore
	audit       AuditServiceInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
}

func NewMessageService(
	transactor repositories.Transactor,
	messageRepo repositories.MessageRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	store storage.FileStore,
	audit AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) MessageServiceInterface {
	return &MessageService{
		transactor:  transactor,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		store:       store,
		audit:       audit,
		auditLogger: auditLogger,
		metrics:     metrics,
	}
}

func (s *MessageService) Inbox(actorID uuid.UUID) (*dto.MessageListResponse, error) {
	messages, err := s.messageRepo.Inbox(actorID)
	if err != nil {
		return nil, err
	}
	return s.listResponse(actorID, messages)
}

func (s *MessageService) Outbox(actorID uuid.UUID) (*dto.MessageListResponse, error) {
	messages, err := s.messageRepo.Outbox(actorID)
	if err != nil {
		return nil, err
	}
	return s.listResponse(actorID, messages)
}

func (s *MessageService) UnreadCount(actorID uuid.UUID) (int64, error) {
	return s.messageRepo.CountUnread(actorID)
}

func (s *MessageService) Send(actorID uuid.UUID, req *dto.MessageRequest, files []storage.Upload) (*models.Message, error) {
	recipient, err := s.lookupRecipient(req.Recipient)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:    actorID,
		RecipientID: recipient.ID,
		Subject:     req.Subject,
		Body:        req.Body,
	}
	return s.deliver(message, files, MessageKindNew)
}

// Get returns a message to its sender or recipient. The recipient's first
// view marks it read.
func (s *MessageService) Get(actorID, messageID uuid.UUID) (*models.Message, error) {
	message, err := s.authorized(actorID, messageID, canView, "message_view")
	if err != nil {
		return nil, err
	}

	if message.RecipientID == actorID && !message.IsRead {
		if err := s.messageRepo.MarkRead(message.ID); err != nil {
			return nil, err
		}
		message.IsRead = true
	}
	return message, nil
}

// Update replaces subject and body and appends new files. Existing
// attachments are kept.
func (s *MessageService) Update(actorID, messageID uuid.UUID, req *dto.MessageUpdateRequest, files []storage.Upload) (*models.Message, error) {
	message, err := s.authorized(actorID, messageID, canEdit, "message_update")
	if err != nil {
		return nil, err
	}
	if message.IsDeleted() {
		return nil, ErrMessageDeleted
	}

	message.Subject = req.Subject
	message.Body = req.Body
	message.IsEdited = true
	if err := message.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	stored, err := s.storeFiles(files)
	if err != nil {
		return nil, err
	}

	err = s.transactor.Transaction(func(tx *gorm.DB) error {
		messages := s.messageRepo.WithTx(tx)
		if err := messages.Update(message); err != nil {
			return err
		}
		return messages.AddAttachments(attachmentsFor(message.ID, stored))
	})
	if err != nil {
		s.removeStored(stored)
		return nil, err
	}

	s.audit.Record(actorID, models.AuditActionUpdate, models.AuditResourceMessage, message.ID, map[string]interface{}{
		"attachments_added": len(stored),
	})
	return s.messageRepo.GetByID(message.ID)
}

// Delete blanks the body. The row and its attachments remain.
func (s *MessageService) Delete(actorID, messageID uuid.UUID) error {
	message, err := s.authorized(actorID, messageID, canEdit, "message_delete")
	if err != nil {
		return err
	}

	message.SoftDelete()
	if err := s.messageRepo.Update(message); err != nil {
		return err
	}

	s.auditLogger.LogMessageDeleted(context.Background(), message.ID, actorID)
	s.audit.Record(actorID, models.AuditActionDelete, models.AuditResourceMessage, message.ID, nil)
	return nil
}

func (s *MessageService) ReplyDraft(actorID, messageID uuid.UUID) (*dto.MessageDraft, error) {
	original, err := s.authorized(actorID, messageID, canReply, "message_reply")
	if err != nil {
		return nil, err
	}
	return &dto.MessageDraft{
		Recipient: usernameOf(original.Sender),
		Subject:   original.ReplySubject(),
	}, nil
}

// Reply answers the original sender. An empty subject becomes "Re: <subject>".
func (s *MessageService) Reply(actorID, messageID uuid.UUID, req *dto.ReplyRequest, files []storage.Upload) (*models.Message, error) {
	original, err := s.authorized(actorID, messageID, canReply, "message_reply")
	if err != nil {
		return nil, err
	}

	subject := req.Subject
	if subject == "" {
		subject = original.ReplySubject()
	}

	message := &models.Message{
		SenderID:    actorID,
		RecipientID: original.SenderID,
		Subject:     subject,
		Body:        req.Body,
	}
	return s.deliver(message, files, MessageKindReply)
}

func (s *MessageService) ForwardDraft(actorID, messageID uuid.UUID) (*dto.MessageDraft, error) {
	original, err := s.authorized(actorID, messageID, canForward, "message_forward")
	if err != nil {
		return nil, err
	}
	return forwardDraft(original), nil
}

// Forward sends the original on to a new recipient. Empty subject or body
// fall back to the forward draft.
func (s *MessageService) Forward(actorID, messageID uuid.UUID, req *dto.ForwardRequest, files []storage.Upload) (*models.Message, error) {
	original, err := s.authorized(actorID, messageID, canForward, "message_forward")
	if err != nil {
		return nil, err
	}

	recipient, err := s.lookupRecipient(req.Recipient)
	if err != nil {
		return nil, err
	}

	draft := forwardDraft(original)
	subject, body := req.Subject, req.Body
	if subject == "" {
		subject = draft.Subject
	}
	if body == "" {
		body = draft.Body
	}

	message := &models.Message{
		SenderID:    actorID,
		RecipientID: recipient.ID,
		Subject:     subject,
		Body:        body,
	}
	return s.deliver(message, files, MessageKindForward)
}

// DeleteAttachment removes one attachment row and its file. Only the sender
// of a live message may do this.
func (s *MessageService) DeleteAttachment(actorID, attachmentID uuid.UUID) error {
	attachment, err := s.messageRepo.GetAttachment(attachmentID)
	if err != nil {
		return err
	}

	message, err := s.authorized(actorID, attachment.MessageID, canEdit, "attachment_delete")
	if err != nil {
		return err
	}
	if message.IsDeleted() {
		return ErrMessageDeleted
	}

	if err := s.messageRepo.DeleteAttachment(attachment.ID); err != nil {
		return err
	}
	s.removeFile(attachment.Path)
	return nil
}

// deliver stores the files, then writes the message and its attachments in
// one transaction. Stored files are removed if the transaction fails.
func (s *MessageService) deliver(message *models.Message, files []storage.Upload, kind string) (*models.Message, error) {
	if err := message.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	stored, err := s.storeFiles(files)
	if err != nil {
		return nil, err
	}

	err = s.transactor.Transaction(func(tx *gorm.DB) error {
		messages := s.messageRepo.WithTx(tx)
		if err := messages.Create(message); err != nil {
			return err
		}
		return messages.AddAttachments(attachmentsFor(message.ID, stored))
	})
	if err != nil {
		s.removeStored(stored)
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	s.metrics.IncrementCounter(MetricMessageSent, map[string]string{"kind": kind})
	s.auditLogger.LogMessageSent(context.Background(), message.ID, message.SenderID, message.RecipientID, kind, len(stored))
	s.audit.Record(message.SenderID, models.AuditActionCreate, models.AuditResourceMessage, message.ID, map[string]interface{}{
		"kind":        kind,
		"attachments": len(stored),
	})

	return s.messageRepo.GetByID(message.ID)
}

func (s *MessageService) authorized(
	actorID, messageID uuid.UUID,
	check func(*models.Message, uuid.UUID) error,
	operation string,
) (*models.Message, error) {
	message, err := s.messageRepo.GetByID(messageID)
	if err != nil {
		return nil, err
	}
	if err := check(message, actorID); err != nil {
		s.auditLogger.LogAuthorizationFailure(context.Background(), operation, actorID, messageID)
		return nil, err
	}
	return message, nil
}

func (s *MessageService) lookupRecipient(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *MessageService) listResponse(actorID uuid.UUID, messages []models.Message) (*dto.MessageListResponse, error) {
	unread, err := s.messageRepo.CountUnread(actorID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return &dto.MessageListResponse{Messages: messages, Unread: unread}, nil
}

func (s *MessageService) storeFiles(files []storage.Upload) ([]storage.StoredFile, error) {
	stored := make([]storage.StoredFile, 0, len(files))
	for _, file := range files {
		saved, err := s.store.Save(storage.DirAttachments, file)
		if err != nil {
			s.removeStored(stored)
			return nil, err
		}
		stored = append(stored, *saved)
	}
	return stored, nil
}

func (s *MessageService) removeStored(stored []storage.StoredFile) {
	for _, file := range stored {
		s.removeFile(file.Path)
	}
}

func (s *MessageService) removeFile(path string) {
	if err := s.store.Remove(path); err != nil {
		s.auditLogger.LogAttachmentCleanup(context.Background(), path, err)
	}
}

func attachmentsFor(messageID uuid.UUID, stored []storage.StoredFile) []models.Attachment {
	attachments := make([]models.Attachment, 0, len(stored))
	for _, file := range stored {
		attachments = append(attachments, models.Attachment{
			MessageID:   messageID,
			Path:        file.Path,
			FileName:    file.FileName,
			ContentType: file.ContentType,
			Size:        file.Size,
		})
	}
	return attachments
}

func forwardDraft(original *models.Message) *dto.MessageDraft {
	return &dto.MessageDraft{
		Subject: original.ForwardSubject(),
		Body:    original.ForwardBody(usernameOf(original.Sender), usernameOf(original.Recipient)),
	}
}
