package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Validate(t *testing.T) {
	sender, recipient := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		msg     Message
		wantErr string
	}{
		{name: "valid", msg: Message{SenderID: sender, RecipientID: recipient, Subject: "hi", Body: "hello"}},
		{name: "no recipient", msg: Message{SenderID: sender, Subject: "hi", Body: "hello"}, wantErr: "recipient"},
		{name: "blank subject", msg: Message{SenderID: sender, RecipientID: recipient, Subject: "  ", Body: "hello"}, wantErr: "subject is required"},
		{name: "long subject", msg: Message{SenderID: sender, RecipientID: recipient, Subject: strings.Repeat("件", 101), Body: "hello"}, wantErr: "at most 100"},
		{name: "blank body", msg: Message{SenderID: sender, RecipientID: recipient, Subject: "hi"}, wantErr: "body is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMessage_SoftDelete(t *testing.T) {
	msg := Message{Body: "secret"}
	assert.False(t, msg.IsDeleted())

	msg.SoftDelete()

	assert.Equal(t, DeletedMessageBody, msg.Body)
	assert.True(t, msg.IsEdited)
	assert.True(t, msg.IsDeleted())
}

func TestMessage_PlaceholderBodyIsNotDeleted(t *testing.T) {
	msg := Message{Body: DeletedMessageBody, IsEdited: true}

	assert.False(t, msg.IsDeleted())
}

func TestMessage_DerivedSubjects(t *testing.T) {
	msg := Message{Subject: "ランチ"}

	assert.Equal(t, "Re: ランチ", msg.ReplySubject())
	assert.Equal(t, "Fwd: ランチ", msg.ForwardSubject())
}

func TestMessage_ForwardBody(t *testing.T) {
	created := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	msg := Message{Body: "明日の予定です", CreatedAt: created}

	body := msg.ForwardBody("taro", "hanako")

	assert.Equal(t, "\n\n---- Original Message ----\nFrom: taro\nTo: hanako\nDate: 2024-05-01T09:30:00Z\n\n明日の予定です", body)
}

func TestMessage_IsParticipant(t *testing.T) {
	sender, recipient := uuid.New(), uuid.New()
	msg := Message{SenderID: sender, RecipientID: recipient}

	assert.True(t, msg.IsParticipant(sender))
	assert.True(t, msg.IsParticipant(recipient))
	assert.False(t, msg.IsParticipant(uuid.New()))
}
