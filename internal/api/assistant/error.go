package assistant

import "budgefy/pkg/response"

var (
	ErrEmptyMessage     = response.NewError(400, "message cannot be empty")
	ErrInvalidChatRole  = response.NewError(400, "chat history contains an invalid role")
	ErrAssistantFailure = response.NewError(502, "assistant is unavailable")
)
