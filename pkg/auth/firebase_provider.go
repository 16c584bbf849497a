package auth

import (
	"context"

	firebaseauth "firebase.google.com/go/v4/auth"
)

type firebaseProvider struct {
	client *firebaseauth.Client
}

func NewFirebaseProvider(client *firebaseauth.Client) IdentityProvider {
	return &firebaseProvider{client: client}
}

func (p *firebaseProvider) CreateUser(ctx context.Context, email, password string) (Account, error) {
	params := (&firebaseauth.UserToCreate{}).
		Email(email).
		Password(password)

	user, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return Account{}, err
	}
	return Account{UID: user.UID, Email: user.Email}, nil
}

func (p *firebaseProvider) GetUserByEmail(ctx context.Context, email string) (Account, error) {
	user, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		return Account{}, err
	}
	return Account{UID: user.UID, Email: user.Email}, nil
}
