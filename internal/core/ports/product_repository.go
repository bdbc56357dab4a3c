package ports

import (
	"context"

	"github.com/heshima/studio-api/internal/core/domain"
)

// ProductRepository defines persistence operations for the catalog. Writes
// happen only through the bootstrap seeder; the API surface is read-only.
type ProductRepository interface {
	// FindActive returns every product with the active flag set.
	FindActive(ctx context.Context) ([]*domain.Product, error)

	// FindByID returns a product or domain.ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*domain.Product, error)

	// Count reports how many products exist, active or not.
	Count(ctx context.Context) (int64, error)

	// Insert stores a new product and fills in its generated ID.
	Insert(ctx context.Context, product *domain.Product) error
}
