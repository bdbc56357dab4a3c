package service

import (
	"context"
	"errors"
	"testing"

	"github.com/heshima/studio-api/internal/core/domain"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{byEmail: make(map[string]*domain.User)}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func adminUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &domain.User{
		FirstName:    "Heshima",
		LastName:     "Admin",
		Email:        "admin@heshima.studio",
		PasswordHash: hash,
		Role:         domain.Role{ID: "role-admin", Name: domain.RoleAdmin},
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo(adminUser(t, "password123"))
	svc := NewAuthService(repo)

	user, err := svc.Authenticate(context.Background(), "admin@heshima.studio", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role.Name != domain.RoleAdmin {
		t.Errorf("expected ADMIN role, got %q", user.Role.Name)
	}
	if user.Authority() != "ROLE_ADMIN" {
		t.Errorf("expected authority ROLE_ADMIN, got %q", user.Authority())
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubUserRepo(adminUser(t, "password123"))
	svc := NewAuthService(repo)

	_, err := svc.Authenticate(context.Background(), "admin@heshima.studio", "nope")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())

	// An unknown email must be indistinguishable from a bad password.
	_, err := svc.Authenticate(context.Background(), "ghost@heshima.studio", "password123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(adminUser(t, "password123")))

	if _, err := svc.Authenticate(context.Background(), "", "password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "admin@heshima.studio", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestHashPassword_NeverPlaintext(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "password123" || hash == "" {
		t.Fatalf("hash must not be empty or the plaintext itself")
	}
}
