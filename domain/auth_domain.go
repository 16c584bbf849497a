package domain

import (
	"errors"
)

var (
	MessageInvalidCredentials = "Invalid credentials"
	MessageFailedSignup       = "failed to create account"

	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already exists")
	ErrEmptyEmail      = errors.New("email must not be empty")
	ErrEmptyPassword   = errors.New("password must not be empty")
)

type (
	AuthRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	UserResponse struct {
		UID   string `json:"uid"`
		Email string `json:"email"`
	}

	AuthResponse struct {
		User UserResponse `json:"user"`
	}
)
