package handlers

import (
	"net/http"
	"testing"

	"lifehub/internal/dto"
	"lifehub/internal/models"
	"lifehub/internal/repositories"
	"lifehub/internal/services"
	"lifehub/internal/services/service_mocks"
	"lifehub/internal/storage"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestMessageHandler(t *testing.T) {
	suite.Run(t, new(MessageHandlerSuite))
}

type MessageHandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	messages  *service_mocks.MockMessageServiceInterface
	handler   *MessageHandler
	e         *echo.Echo
	userID    uuid.UUID
	messageID uuid.UUID
}

func (s *MessageHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.messages = service_mocks.NewMockMessageServiceInterface(s.ctrl)
	s.handler = NewMessageHandler(s.messages)
	s.e = newTestEcho()
	s.userID = uuid.New()
	s.messageID = uuid.New()
}

func (s *MessageHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MessageHandlerSuite) TestSend_WithAttachments() {
	s.messages.EXPECT().
		Send(s.userID, gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ uuid.UUID, req *dto.MessageRequest, files []storage.Upload) (*models.Message, error) {
			s.Equal("hanako", req.Recipient)
			s.Equal("Lunch", req.Subject)
			return &models.Message{ID: s.messageID, Subject: req.Subject}, nil
		})

	req := newMultipartRequest(http.MethodPost, "/messages",
		map[string]string{"recipient": "hanako", "subject": "Lunch", "body": "Noon?"},
		attachmentField, map[string]string{"menu.txt": "ramen", "map.txt": "here"})
	c, rec := authedContext(s.e, req, s.userID)

	s.NoError(s.handler.Send(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *MessageHandlerSuite) TestSend_JSONHasNoFiles() {
	s.messages.EXPECT().Send(s.userID, gomock.Any(), gomock.Len(0)).Return(&models.Message{ID: s.messageID}, nil)

	c, rec := authedContext(s.e, newRequest(http.MethodPost, "/messages", map[string]string{
		"recipient": "hanako", "subject": "Hi", "body": "Hello",
	}), s.userID)

	s.NoError(s.handler.Send(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *MessageHandlerSuite) TestSend_UnknownRecipient() {
	s.messages.EXPECT().Send(s.userID, gomock.Any(), gomock.Any()).Return(nil, services.ErrRecipientNotFound)

	c, rec := authedContext(s.e, newRequest(http.MethodPost, "/messages", map[string]string{
		"recipient": "ghost", "subject": "Hi", "body": "Hello",
	}), s.userID)

	s.NoError(s.handler.Send(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("MESSAGE_003", decodeError(rec).Error.Code)
}

func (s *MessageHandlerSuite) TestSend_SubjectTooLong() {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	c, _ := authedContext(s.e, newRequest(http.MethodPost, "/messages", map[string]string{
		"recipient": "hanako", "subject": string(long), "body": "Hello",
	}), s.userID)

	s.Error(s.handler.Send(c))
}

func (s *MessageHandlerSuite) TestGet_Errors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"outsider", services.ErrForbidden, http.StatusForbidden, "MESSAGE_002"},
		{"missing", repositories.ErrMessageNotFound, http.StatusNotFound, "MESSAGE_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.messages.EXPECT().Get(s.userID, s.messageID).Return(nil, tt.err)

			c, rec := authedContext(s.e, newRequest(http.MethodGet, "/messages/x", nil), s.userID, "id", s.messageID.String())
			s.NoError(s.handler.Get(c))
			s.Equal(tt.wantStatus, rec.Code)
			s.Equal(tt.wantCode, decodeError(rec).Error.Code)
		})
	}
}

func (s *MessageHandlerSuite) TestUpdate_Deleted() {
	s.messages.EXPECT().Update(s.userID, s.messageID, gomock.Any(), gomock.Any()).Return(nil, services.ErrMessageDeleted)

	c, rec := authedContext(s.e, newRequest(http.MethodPut, "/messages/x", map[string]string{
		"subject": "Edit", "body": "Edited",
	}), s.userID, "id", s.messageID.String())

	s.NoError(s.handler.Update(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("MESSAGE_004", decodeError(rec).Error.Code)
}

func (s *MessageHandlerSuite) TestDelete() {
	s.messages.EXPECT().Delete(s.userID, s.messageID).Return(nil)

	c, rec := authedContext(s.e, newRequest(http.MethodDelete, "/messages/x", nil), s.userID, "id", s.messageID.String())
	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *MessageHandlerSuite) TestDrafts() {
	s.Run("reply", func() {
		s.messages.EXPECT().ReplyDraft(s.userID, s.messageID).Return(&dto.MessageDraft{Recipient: "taro", Subject: "Re: Hi"}, nil)

		c, rec := authedContext(s.e, newRequest(http.MethodGet, "/messages/x/reply", nil), s.userID, "id", s.messageID.String())
		s.NoError(s.handler.ReplyDraft(c))
		s.Equal(http.StatusOK, rec.Code)

		var draft dto.MessageDraft
		s.Require().NoError(decodeData(rec, &draft))
		s.Equal("Re: Hi", draft.Subject)
	})

	s.Run("forward by a non-sender", func() {
		s.messages.EXPECT().ForwardDraft(s.userID, s.messageID).Return(nil, services.ErrForbidden)

		c, rec := authedContext(s.e, newRequest(http.MethodGet, "/messages/x/forward", nil), s.userID, "id", s.messageID.String())
		s.NoError(s.handler.ForwardDraft(c))
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *MessageHandlerSuite) TestReplyAndForward() {
	s.Run("reply needs only a body", func() {
		s.messages.EXPECT().
			Reply(s.userID, s.messageID, &dto.ReplyRequest{Body: "Sure"}, gomock.Len(0)).
			Return(&models.Message{ID: uuid.New(), Subject: "Re: Lunch"}, nil)

		c, rec := authedContext(s.e, newRequest(http.MethodPost, "/messages/x/reply", map[string]string{"body": "Sure"}), s.userID, "id", s.messageID.String())
		s.NoError(s.handler.Reply(c))
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("forward needs a recipient", func() {
		c, _ := authedContext(s.e, newRequest(http.MethodPost, "/messages/x/forward", map[string]string{"body": "fyi"}), s.userID, "id", s.messageID.String())
		s.Error(s.handler.Forward(c))
	})

	s.Run("forward", func() {
		s.messages.EXPECT().
			Forward(s.userID, s.messageID, &dto.ForwardRequest{Recipient: "jiro"}, gomock.Len(0)).
			Return(&models.Message{ID: uuid.New(), Subject: "Fwd: Lunch"}, nil)

		c, rec := authedContext(s.e, newRequest(http.MethodPost, "/messages/x/forward", map[string]string{"recipient": "jiro"}), s.userID, "id", s.messageID.String())
		s.NoError(s.handler.Forward(c))
		s.Equal(http.StatusCreated, rec.Code)
	})
}

func (s *MessageHandlerSuite) TestDeleteAttachment() {
	attachmentID := uuid.New()
	s.messages.EXPECT().DeleteAttachment(s.userID, attachmentID).Return(repositories.ErrAttachmentNotFound)

	c, rec := authedContext(s.e, newRequest(http.MethodDelete, "/attachments/x", nil), s.userID, "id", attachmentID.String())
	s.NoError(s.handler.DeleteAttachment(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("MESSAGE_005", decodeError(rec).Error.Code)
}

func (s *MessageHandlerSuite) TestUnreadCount() {
	s.messages.EXPECT().UnreadCount(s.userID).Return(int64(4), nil)

	c, rec := authedContext(s.e, newRequest(http.MethodGet, "/messages/unread-count", nil), s.userID)
	s.NoError(s.handler.UnreadCount(c))

	var resp dto.UnreadCountResponse
	s.Require().NoError(decodeData(rec, &resp))
	s.Equal(int64(4), resp.Unread)
}

func (s *MessageHandlerSuite) TestInbox_HidesParticipantEmails() {
	sender := &models.User{ID: uuid.New(), Username: "hanako", Email: "hanako@example.com", Role: models.RoleMember}
	recipient := &models.User{ID: s.userID, Username: "taro", Email: "taro@example.com", Role: models.RoleMember}

	s.messages.EXPECT().Inbox(s.userID).Return(&dto.MessageListResponse{
		Messages: []models.Message{{
			ID: s.messageID, SenderID: sender.ID, RecipientID: recipient.ID,
			Subject: "Lunch", Body: "Noon?", Sender: sender, Recipient: recipient,
		}},
		Unread: 1,
	}, nil)

	c, rec := authedContext(s.e, newRequest(http.MethodGet, "/messages/inbox", nil), s.userID)
	s.NoError(s.handler.Inbox(c))
	s.Equal(http.StatusOK, rec.Code)

	body := rec.Body.String()
	s.Contains(body, `"username":"hanako"`)
	s.NotContains(body, "hanako@example.com")
	s.NotContains(body, "taro@example.com")
	s.NotContains(body, `"role"`)
}
