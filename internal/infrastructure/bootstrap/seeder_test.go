package bootstrap

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/heshima/studio-api/internal/core/domain"
)

type stubRoleRepo struct {
	byName map[string]*domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{byName: make(map[string]*domain.Role)}
}

func (r *stubRoleRepo) FindOrCreate(_ context.Context, name string) (*domain.Role, error) {
	if role, ok := r.byName[name]; ok {
		return role, nil
	}
	role := &domain.Role{ID: fmt.Sprintf("role-%d", len(r.byName)+1), Name: name}
	r.byName[name] = role
	return role, nil
}

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) error {
	user.ID = fmt.Sprintf("user-%d", len(r.byEmail)+1)
	r.byEmail[user.Email] = user
	return nil
}

type stubProductRepo struct {
	products []*domain.Product
}

func (r *stubProductRepo) FindActive(_ context.Context) ([]*domain.Product, error) {
	return r.products, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) Insert(_ context.Context, product *domain.Product) error {
	product.ID = fmt.Sprintf("prod-%d", len(r.products)+1)
	r.products = append(r.products, product)
	return nil
}

func newTestSeeder() (*Seeder, *stubRoleRepo, *stubUserRepo, *stubProductRepo) {
	roles := newStubRoleRepo()
	users := newStubUserRepo()
	products := &stubProductRepo{}
	seeder := NewSeeder(roles, users, products, AdminAccount{
		Email:    "admin@heshima.studio",
		Password: "password123",
	}, zerolog.Nop())
	return seeder, roles, users, products
}

func TestSeeder_Run_SeedsEverything(t *testing.T) {
	seeder, roles, users, products := newTestSeeder()

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(roles.byName) != 2 {
		t.Errorf("expected ADMIN and USER roles, got %d", len(roles.byName))
	}
	if _, ok := roles.byName[domain.RoleAdmin]; !ok {
		t.Error("ADMIN role missing")
	}
	if _, ok := roles.byName[domain.RoleUser]; !ok {
		t.Error("USER role missing")
	}

	admin, ok := users.byEmail["admin@heshima.studio"]
	if !ok {
		t.Fatal("default admin missing")
	}
	if admin.Role.Name != domain.RoleAdmin {
		t.Errorf("admin must hold the ADMIN role, got %q", admin.Role.Name)
	}
	if admin.PasswordHash == "password123" {
		t.Error("password must be stored as a hash, never plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("password123")) != nil {
		t.Error("stored hash does not verify against the configured password")
	}

	if len(products.products) != 3 {
		t.Fatalf("expected 3 sample products, got %d", len(products.products))
	}
	if products.products[0].Name != "Branding" {
		t.Errorf("unexpected first sample product: %q", products.products[0].Name)
	}
}

func TestSeeder_Run_IsIdempotent(t *testing.T) {
	seeder, roles, users, products := newTestSeeder()

	for i := 0; i < 2; i++ {
		if err := seeder.Run(context.Background()); err != nil {
			t.Fatalf("run %d failed: %v", i+1, err)
		}
	}

	if len(roles.byName) != 2 {
		t.Errorf("running twice must never duplicate roles, got %d", len(roles.byName))
	}
	if len(users.byEmail) != 1 {
		t.Errorf("running twice must never duplicate the admin, got %d users", len(users.byEmail))
	}
	if len(products.products) != 3 {
		t.Errorf("running twice must never duplicate products, got %d", len(products.products))
	}
}
