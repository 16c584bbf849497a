package domain

import (
	"errors"
)

var (
	MessageChatError = "Chat error"

	ErrUnrecognizedResponse = errors.New("unrecognized model response")
	ErrEmptyModelResponse   = errors.New("model returned no text")
)

type (
	ChatRequest struct {
		UserID  *string `json:"user_id" validate:"required"`
		Message *string `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Response string `json:"response"`
	}
)
