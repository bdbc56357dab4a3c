package ports

import (
	"context"

	"github.com/heshima/studio-api/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
type UserRepository interface {
	// FindByEmail returns the user with their role resolved, or
	// domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Insert stores a new user and fills in its generated ID.
	Insert(ctx context.Context, user *domain.User) error
}

// RoleRepository defines the interface for role persistence.
type RoleRepository interface {
	// FindOrCreate returns the role with the given name, creating it if
	// missing. The operation is idempotent and race-free: concurrent calls
	// with the same name yield exactly one role.
	FindOrCreate(ctx context.Context, name string) (*domain.Role, error)
}
