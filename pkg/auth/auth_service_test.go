package auth

import (
	"Go-Pantry-Assistant/domain"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProvider struct {
	mu       sync.Mutex
	byEmail  map[string]Account
	nextID   int
	createEr error
	lookupEr error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{byEmail: map[string]Account{}}
}

func (f *fakeProvider) CreateUser(_ context.Context, email, _ string) (Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createEr != nil {
		return Account{}, f.createEr
	}
	if _, ok := f.byEmail[email]; ok {
		return Account{}, errors.New("EMAIL_EXISTS")
	}
	f.nextID++
	acc := Account{UID: fmt.Sprintf("uid-%d", f.nextID), Email: email}
	f.byEmail[email] = acc
	return acc, nil
}

func (f *fakeProvider) GetUserByEmail(_ context.Context, email string) (Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.lookupEr != nil {
		return Account{}, f.lookupEr
	}
	acc, ok := f.byEmail[email]
	if !ok {
		return Account{}, errors.New("no user exists with the email: " + email)
	}
	return acc, nil
}

func TestSignupThenLogin_ReturnsStableUID(t *testing.T) {
	svc := NewAuthService(newFakeProvider(), zap.NewNop())
	ctx := context.Background()

	signup, err := svc.Signup(ctx, domain.AuthRequest{Email: "cook@example.com", Password: "s3cret!"})
	require.NoError(t, err)
	assert.NotEmpty(t, signup.User.UID)
	assert.Equal(t, "cook@example.com", signup.User.Email)

	login, err := svc.Login(ctx, domain.AuthRequest{Email: "cook@example.com", Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, signup.User, login.User)
}

func TestSignup_ProviderFailureIsAuthErrorWithProviderMessage(t *testing.T) {
	provider := newFakeProvider()
	provider.createEr = errors.New("PASSWORD_DOES_NOT_MEET_REQUIREMENTS")
	svc := NewAuthService(provider, zap.NewNop())

	_, err := svc.Signup(context.Background(), domain.AuthRequest{Email: "x@example.com", Password: "1"})
	require.Error(t, err)
	assert.Equal(t, domain.KindAuth, domain.KindOf(err))
	assert.Equal(t, http.StatusBadRequest, domain.StatusCode(err))
	assert.Equal(t, "PASSWORD_DOES_NOT_MEET_REQUIREMENTS", domain.Detail(err))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeProvider(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.AuthRequest{Email: "dup@example.com", Password: "pw123456"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.AuthRequest{Email: "dup@example.com", Password: "pw123456"})
	require.Error(t, err)
	assert.Equal(t, domain.KindAuth, domain.KindOf(err))
	assert.Equal(t, "EMAIL_EXISTS", domain.Detail(err))
}

func TestLogin_FailuresShareGenericMessage(t *testing.T) {
	tests := []struct {
		name     string
		lookupEr error
	}{
		{name: "unknown email"},
		{name: "provider unavailable", lookupEr: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newFakeProvider()
			provider.lookupEr = tt.lookupEr
			svc := NewAuthService(provider, zap.NewNop())

			_, err := svc.Login(context.Background(), domain.AuthRequest{Email: "ghost@example.com", Password: "pw"})
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, domain.StatusCode(err))
			assert.Equal(t, "Invalid credentials", domain.Detail(err))
		})
	}
}
