package auth

import (
	"context"
)

type (
	// Account is the part of a user record this service surfaces.
	Account struct {
		UID   string
		Email string
	}

	// IdentityProvider owns user credentials. The service never keeps a copy.
	IdentityProvider interface {
		CreateUser(ctx context.Context, email, password string) (Account, error)
		GetUserByEmail(ctx context.Context, email string) (Account, error)
	}
)
