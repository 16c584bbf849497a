package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP boundary can map it to a status code
// in exactly one place.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth
	KindStore
	KindChat
	KindInvalidRequest
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindStore:
		return "store"
	case KindChat:
		return "chat"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return "unknown"
	}
}

// Error is a failure of one of the external collaborators (identity provider,
// document store, model service) carrying a human-readable message and the cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewAuthError(message string, cause error) *Error {
	return &Error{Kind: KindAuth, Message: message, Err: cause}
}

func NewStoreError(message string, cause error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: cause}
}

func NewChatError(message string, cause error) *Error {
	return &Error{Kind: KindChat, Message: message, Err: cause}
}

func NewInvalidRequestError(message string, cause error) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message, Err: cause}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// StatusCode maps an error to the HTTP status returned to the client.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindAuth:
		return http.StatusBadRequest
	case KindInvalidRequest:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Detail is the message surfaced in the response body.
func Detail(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Error()
	}
	return err.Error()
}
