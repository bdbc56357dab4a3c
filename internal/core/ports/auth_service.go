package ports

import (
	"context"

	"github.com/heshima/studio-api/internal/core/domain"
)

// AuthService verifies per-request credentials. There is no login endpoint
// and no issued tokens: every protected request carries basic credentials
// and is authenticated independently.
type AuthService interface {
	// Authenticate looks up the user by email and verifies the password
	// against the stored hash. Both an unknown email and a mismatched
	// password fail with domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
