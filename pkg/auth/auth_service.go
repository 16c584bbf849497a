package auth

import (
	"Go-Pantry-Assistant/domain"
	"context"

	"go.uber.org/zap"
)

type (
	AuthService interface {
		Signup(ctx context.Context, req domain.AuthRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.AuthRequest) (domain.AuthResponse, error)
	}

	authService struct {
		provider IdentityProvider
		logger   *zap.Logger
	}
)

func NewAuthService(provider IdentityProvider, logger *zap.Logger) AuthService {
	return &authService{
		provider: provider,
		logger:   logger,
	}
}

// Signup delegates entirely to the identity provider; email format and
// password strength are the provider's to judge.
func (s *authService) Signup(ctx context.Context, req domain.AuthRequest) (domain.AuthResponse, error) {
	account, err := s.provider.CreateUser(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Warn(domain.MessageFailedSignup, zap.Error(err))
		return domain.AuthResponse{}, domain.NewAuthError(err.Error(), err)
	}

	return toAuthResponse(account), nil
}

// Login only checks that an account with this email exists. The password is
// not verified against the provider.
func (s *authService) Login(ctx context.Context, req domain.AuthRequest) (domain.AuthResponse, error) {
	account, err := s.provider.GetUserByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Info("Login rejected", zap.Error(err))
		return domain.AuthResponse{}, domain.NewAuthError(domain.MessageInvalidCredentials, err)
	}

	return toAuthResponse(account), nil
}

func toAuthResponse(account Account) domain.AuthResponse {
	return domain.AuthResponse{
		User: domain.UserResponse{
			UID:   account.UID,
			Email: account.Email,
		},
	}
}
