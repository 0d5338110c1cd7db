package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lifehub/internal/database"
	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"
	"lifehub/internal/storage"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type failingTransactor struct{}

func (failingTransactor) Transaction(func(*gorm.DB) error) error {
	return errors.New("connection reset")
}

type MessageServiceTestSuite struct {
	suite.Suite
	env     *testEnv
	service MessageServiceInterface
	taro    *models.User
	hanako  *models.User
	jiro    *models.User
}

func TestMessageServiceSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceTestSuite))
}

func (s *MessageServiceTestSuite) SetupTest() {
	s.env = newTestEnv(s.T())
	s.service = s.newService(s.env.db)
	s.taro = database.CreateTestUser(s.T(), s.env.db, "taro")
	s.hanako = database.CreateTestUser(s.T(), s.env.db, "hanako")
	s.jiro = database.CreateTestUser(s.T(), s.env.db, "jiro")
}

func (s *MessageServiceTestSuite) newService(transactor repositories.Transactor) MessageServiceInterface {
	return NewMessageService(transactor, s.env.messages, s.env.users, s.env.store, s.env.audit, s.env.auditLogger, NoopMetrics{})
}

func (s *MessageServiceTestSuite) send(files ...storage.Upload) *models.Message {
	message, err := s.service.Send(s.taro.ID, &dto.MessageRequest{
		Recipient: "hanako",
		Subject:   "週末",
		Body:      "映画に行きませんか",
	}, files)
	s.Require().NoError(err)
	return message
}

func (s *MessageServiceTestSuite) storedFiles() []string {
	entries, err := os.ReadDir(filepath.Join(s.env.store.Root, storage.DirAttachments))
	if os.IsNotExist(err) {
		return nil
	}
	s.Require().NoError(err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func (s *MessageServiceTestSuite) TestSend_WithAttachments() {
	message := s.send(textUpload("memo.txt", "hello"), textUpload("map.txt", "route"))

	s.Equal("taro", message.Sender.Username)
	s.Equal("hanako", message.Recipient.Username)
	s.Len(message.Attachments, 2)
	s.Len(s.storedFiles(), 2)
}

func (s *MessageServiceTestSuite) TestSend_UnknownRecipient() {
	_, err := s.service.Send(s.taro.ID, &dto.MessageRequest{Recipient: "ghost", Subject: "a", Body: "b"}, nil)

	s.ErrorIs(err, ErrRecipientNotFound)
}

func (s *MessageServiceTestSuite) TestSend_RollbackRemovesFiles() {
	service := s.newService(failingTransactor{})

	_, err := service.Send(s.taro.ID, &dto.MessageRequest{Recipient: "hanako", Subject: "a", Body: "b"},
		[]storage.Upload{textUpload("x.txt", "x"), textUpload("y.txt", "y")})

	s.Require().Error(err)
	s.Empty(s.storedFiles())
}

func (s *MessageServiceTestSuite) TestGet_MarksReadForRecipientOnly() {
	message := s.send()

	fromSender, err := s.service.Get(s.taro.ID, message.ID)
	s.Require().NoError(err)
	s.False(fromSender.IsRead)

	unread, err := s.service.UnreadCount(s.hanako.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), unread)

	fromRecipient, err := s.service.Get(s.hanako.ID, message.ID)
	s.Require().NoError(err)
	s.True(fromRecipient.IsRead)

	unread, err = s.service.UnreadCount(s.hanako.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), unread)

	_, err = s.service.Get(s.jiro.ID, message.ID)
	s.ErrorIs(err, ErrForbidden)
}

func (s *MessageServiceTestSuite) TestInboxOutbox() {
	s.send()

	inbox, err := s.service.Inbox(s.hanako.ID)
	s.Require().NoError(err)
	s.Len(inbox.Messages, 1)
	s.Equal(int64(1), inbox.Unread)

	outbox, err := s.service.Outbox(s.taro.ID)
	s.Require().NoError(err)
	s.Len(outbox.Messages, 1)

	empty, err := s.service.Inbox(s.jiro.ID)
	s.Require().NoError(err)
	s.NotNil(empty.Messages)
}

func (s *MessageServiceTestSuite) TestUpdate_SenderOnlyAppendsAttachments() {
	message := s.send(textUpload("a.txt", "a"))

	_, err := s.service.Update(s.hanako.ID, message.ID, &dto.MessageUpdateRequest{Subject: "x", Body: "y"}, nil)
	s.ErrorIs(err, ErrForbidden)

	updated, err := s.service.Update(s.taro.ID, message.ID, &dto.MessageUpdateRequest{Subject: "週末(訂正)", Body: "土曜日に"},
		[]storage.Upload{textUpload("b.txt", "b")})
	s.Require().NoError(err)
	s.Equal("週末(訂正)", updated.Subject)
	s.True(updated.IsEdited)
	s.Len(updated.Attachments, 2)
}

func (s *MessageServiceTestSuite) TestDelete_IsSoft() {
	message := s.send(textUpload("a.txt", "a"))

	s.ErrorIs(s.service.Delete(s.hanako.ID, message.ID), ErrForbidden)
	s.Require().NoError(s.service.Delete(s.taro.ID, message.ID))

	deleted, err := s.service.Get(s.taro.ID, message.ID)
	s.Require().NoError(err)
	s.Equal(models.DeletedMessageBody, deleted.Body)
	s.True(deleted.IsEdited)
	s.True(deleted.IsDeleted())
	s.Equal("週末", deleted.Subject)
	s.Len(deleted.Attachments, 1)

	_, err = s.service.Update(s.taro.ID, message.ID, &dto.MessageUpdateRequest{Subject: "x", Body: "y"}, nil)
	s.ErrorIs(err, ErrMessageDeleted)
	s.ErrorIs(s.service.DeleteAttachment(s.taro.ID, deleted.Attachments[0].ID), ErrMessageDeleted)
}

func (s *MessageServiceTestSuite) TestUpdate_PlaceholderTextStaysEditable() {
	message := s.send()

	edited, err := s.service.Update(s.taro.ID, message.ID,
		&dto.MessageUpdateRequest{Subject: "週末", Body: models.DeletedMessageBody}, nil)
	s.Require().NoError(err)
	s.False(edited.IsDeleted())

	again, err := s.service.Update(s.taro.ID, message.ID, &dto.MessageUpdateRequest{Subject: "週末", Body: "やっぱり行こう"}, nil)
	s.Require().NoError(err)
	s.Equal("やっぱり行こう", again.Body)
}

func (s *MessageServiceTestSuite) TestReply() {
	message := s.send()

	_, err := s.service.ReplyDraft(s.taro.ID, message.ID)
	s.ErrorIs(err, ErrForbidden)

	draft, err := s.service.ReplyDraft(s.hanako.ID, message.ID)
	s.Require().NoError(err)
	s.Equal("taro", draft.Recipient)
	s.Equal("Re: 週末", draft.Subject)

	reply, err := s.service.Reply(s.hanako.ID, message.ID, &dto.ReplyRequest{Body: "いいですね"}, nil)
	s.Require().NoError(err)
	s.Equal(s.taro.ID, reply.RecipientID)
	s.Equal(s.hanako.ID, reply.SenderID)
	s.Equal("Re: 週末", reply.Subject)

	custom, err := s.service.Reply(s.hanako.ID, message.ID, &dto.ReplyRequest{Subject: "了解", Body: "はい"}, nil)
	s.Require().NoError(err)
	s.Equal("了解", custom.Subject)
}

func (s *MessageServiceTestSuite) TestReply_OnlyRecipientMaySend() {
	message := s.send()

	for _, actor := range []*models.User{s.taro, s.jiro} {
		_, err := s.service.Reply(actor.ID, message.ID, &dto.ReplyRequest{Body: "横から失礼"}, nil)
		s.ErrorIs(err, ErrForbidden, actor.Username)
	}

	sent, err := s.service.Outbox(s.taro.ID)
	s.Require().NoError(err)
	s.Len(sent.Messages, 1)
	inbox, err := s.service.Inbox(s.taro.ID)
	s.Require().NoError(err)
	s.Empty(inbox.Messages)
}

func (s *MessageServiceTestSuite) TestForward() {
	message := s.send()

	_, err := s.service.ForwardDraft(s.hanako.ID, message.ID)
	s.ErrorIs(err, ErrForbidden)

	draft, err := s.service.ForwardDraft(s.taro.ID, message.ID)
	s.Require().NoError(err)
	s.Equal("Fwd: 週末", draft.Subject)
	s.True(strings.HasPrefix(draft.Body, "\n\n---- Original Message ----\nFrom: taro\nTo: hanako\nDate: "))
	s.True(strings.HasSuffix(draft.Body, "\n\n映画に行きませんか"))

	forwarded, err := s.service.Forward(s.taro.ID, message.ID, &dto.ForwardRequest{Recipient: "jiro"}, nil)
	s.Require().NoError(err)
	s.Equal(s.jiro.ID, forwarded.RecipientID)
	s.Equal(draft.Subject, forwarded.Subject)
	s.Equal(draft.Body, forwarded.Body)

	_, err = s.service.Forward(s.taro.ID, message.ID, &dto.ForwardRequest{Recipient: "ghost"}, nil)
	s.ErrorIs(err, ErrRecipientNotFound)
}

func (s *MessageServiceTestSuite) TestForward_OnlySenderMaySend() {
	message := s.send()

	for _, actor := range []*models.User{s.hanako, s.jiro} {
		_, err := s.service.Forward(actor.ID, message.ID, &dto.ForwardRequest{Recipient: "jiro"}, nil)
		s.ErrorIs(err, ErrForbidden, actor.Username)
	}

	inbox, err := s.service.Inbox(s.jiro.ID)
	s.Require().NoError(err)
	s.Empty(inbox.Messages)
}

func (s *MessageServiceTestSuite) TestForward_QuotesOriginalDate() {
	message := s.send()
	original, err := s.env.messages.GetByID(message.ID)
	s.Require().NoError(err)

	forwarded, err := s.service.Forward(s.taro.ID, message.ID, &dto.ForwardRequest{Recipient: "jiro"}, nil)
	s.Require().NoError(err)

	s.Contains(forwarded.Body, "\nDate: "+original.CreatedAt.Format(time.RFC3339)+"\n")
}

func (s *MessageServiceTestSuite) TestDeleteAttachment() {
	message := s.send(textUpload("a.txt", "a"))
	attachment := message.Attachments[0]

	s.ErrorIs(s.service.DeleteAttachment(s.hanako.ID, attachment.ID), ErrForbidden)
	s.Require().NoError(s.service.DeleteAttachment(s.taro.ID, attachment.ID))

	s.NoFileExists(filepath.Join(s.env.store.Root, attachment.Path))
	reloaded, err := s.service.Get(s.taro.ID, message.ID)
	s.Require().NoError(err)
	s.Empty(reloaded.Attachments)
}
