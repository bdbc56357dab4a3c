package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/heshima/studio-api/internal/core/domain"
	"github.com/heshima/studio-api/internal/core/ports"
)

// AuthService implements per-request credential verification. It issues no
// tokens and keeps no session state: every protected request presents the
// email and password again.
type AuthService struct {
	users ports.UserRepository
}

func NewAuthService(users ports.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate resolves the user by email and verifies the password against
// the stored bcrypt hash. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// HashPassword produces the bcrypt hash stored for a new user. Used by the
// bootstrap seeder; plaintext passwords are never persisted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
