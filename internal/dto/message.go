package dto

import "lifehub/internal/models"

// MessageRequest composes a new message or a forward. Recipient is a username.
type MessageRequest struct {
	Recipient string `json:"recipient" form:"recipient" validate:"required,username"`
	Subject   string `json:"subject" form:"subject" validate:"required,max=100"`
	Body      string `json:"body" form:"body" validate:"required"`
}

type MessageUpdateRequest struct {
	Subject string `json:"subject" form:"subject" validate:"required,max=100"`
	Body    string `json:"body" form:"body" validate:"required"`
}

// ReplyRequest leaves the recipient implied. An empty subject becomes "Re: <subject>".
type ReplyRequest struct {
	Subject string `json:"subject" form:"subject" validate:"omitempty,max=100"`
	Body    string `json:"body" form:"body" validate:"required"`
}

// ForwardRequest picks the new recipient. Empty subject or body fall back to the draft.
type ForwardRequest struct {
	Recipient string `json:"recipient" form:"recipient" validate:"required,username"`
	Subject   string `json:"subject" form:"subject" validate:"omitempty,max=100"`
	Body      string `json:"body" form:"body"`
}

// MessageDraft pre-fills a reply or forward form.
type MessageDraft struct {
	Recipient string `json:"recipient,omitempty"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

type MessageListResponse struct {
	Messages []models.Message `json:"messages"`
	Unread   int64            `json:"unread"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
