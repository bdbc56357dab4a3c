package ports

import (
	"context"

	"github.com/heshima/studio-api/internal/core/domain"
)

// ProductService exposes the read path of the catalog.
type ProductService interface {
	ListActive(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// ProductCache is a best-effort read cache for the active product listing.
// Implementations must treat misses and errors identically harmless: the
// repository remains the source of truth.
type ProductCache interface {
	// GetActive returns the cached listing and whether it was present.
	GetActive(ctx context.Context) ([]*domain.Product, bool, error)

	// SetActive stores the listing until the cache TTL expires.
	SetActive(ctx context.Context, products []*domain.Product) error
}
