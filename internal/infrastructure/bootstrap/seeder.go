// Package bootstrap guarantees the baseline data the rest of the system
// assumes: the ADMIN and USER roles, a default administrator, and a sample
// catalog. Run is idempotent: every step checks for existing state first,
// so restarting the process never duplicates anything.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/heshima/studio-api/internal/core/domain"
	"github.com/heshima/studio-api/internal/core/ports"
	"github.com/heshima/studio-api/internal/core/service"
)

// AdminAccount describes the default administrator seeded on first start.
type AdminAccount struct {
	Email    string
	Password string
}

type Seeder struct {
	roles    ports.RoleRepository
	users    ports.UserRepository
	products ports.ProductRepository
	admin    AdminAccount
	logger   zerolog.Logger
}

func NewSeeder(
	roles ports.RoleRepository,
	users ports.UserRepository,
	products ports.ProductRepository,
	admin AdminAccount,
	logger zerolog.Logger,
) *Seeder {
	return &Seeder{roles: roles, users: users, products: products, admin: admin, logger: logger}
}

// Run seeds roles, the default admin, and the sample catalog. Safe to call
// more than once and from concurrent processes: role creation is an upsert
// and the other steps are guarded by existence checks.
func (s *Seeder) Run(ctx context.Context) error {
	adminRole, err := s.roles.FindOrCreate(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("bootstrap: seed roles: %w", err)
	}
	if _, err := s.roles.FindOrCreate(ctx, domain.RoleUser); err != nil {
		return fmt.Errorf("bootstrap: seed roles: %w", err)
	}

	if err := s.seedAdmin(ctx, adminRole); err != nil {
		return err
	}
	if err := s.seedProducts(ctx); err != nil {
		return err
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context, adminRole *domain.Role) error {
	_, err := s.users.FindByEmail(ctx, s.admin.Email)
	if err == nil {
		s.logger.Info().Str("email", s.admin.Email).Msg("admin already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("bootstrap: check admin: %w", err)
	}

	hash, err := service.HashPassword(s.admin.Password)
	if err != nil {
		return fmt.Errorf("bootstrap: hash admin password: %w", err)
	}

	admin := &domain.User{
		FirstName:    "Heshima",
		LastName:     "Admin",
		Email:        s.admin.Email,
		PasswordHash: hash,
		Role:         *adminRole,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, admin); err != nil {
		return fmt.Errorf("bootstrap: create admin: %w", err)
	}

	s.logger.Info().Str("email", s.admin.Email).Msg("created default admin")
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	count, err := s.products.Count(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: count products: %w", err)
	}
	if count > 0 {
		s.logger.Info().Int64("count", count).Msg("products already present, skipping seed")
		return nil
	}

	samples := []*domain.Product{
		{
			Name:        "Branding",
			Description: "Visual identity, logo, and brand guideline support.",
			BasePrice:   decimal.RequireFromString("750.00"),
			Active:      true,
		},
		{
			Name:        "Web Design",
			Description: "Responsive site that matches Heshima Studio aesthetic.",
			BasePrice:   decimal.RequireFromString("1200.00"),
			Active:      true,
		},
		{
			Name:        "UX / UI",
			Description: "Interface design for web/app dashboards.",
			BasePrice:   decimal.RequireFromString("950.00"),
			Active:      true,
		},
	}

	for _, p := range samples {
		if err := s.products.Insert(ctx, p); err != nil {
			return fmt.Errorf("bootstrap: seed product %q: %w", p.Name, err)
		}
	}

	s.logger.Info().Int("count", len(samples)).Msg("seeded default products")
	return nil
}
