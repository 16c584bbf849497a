package auth

import (
	"Go-Pantry-Assistant/domain"
	"Go-Pantry-Assistant/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type postgresProvider struct {
	db *gorm.DB
}

// NewPostgresProvider keeps accounts in the users table for deployments that
// run without Firebase.
func NewPostgresProvider(db *gorm.DB) IdentityProvider {
	return &postgresProvider{db: db}
}

func (p *postgresProvider) CreateUser(ctx context.Context, email, password string) (Account, error) {
	if strings.TrimSpace(email) == "" {
		return Account{}, domain.ErrEmptyEmail
	}
	if password == "" {
		return Account{}, domain.ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	user := &entities.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := p.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Account{}, domain.ErrEmailTaken
		}
		return Account{}, err
	}

	return Account{UID: user.ID, Email: user.Email}, nil
}

func (p *postgresProvider) GetUserByEmail(ctx context.Context, email string) (Account, error) {
	var user entities.User
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Account{}, domain.ErrAccountNotFound
		}
		return Account{}, err
	}
	return Account{UID: user.ID, Email: user.Email}, nil
}
