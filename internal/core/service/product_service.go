package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/heshima/studio-api/internal/api/metrics"
	"github.com/heshima/studio-api/internal/core/domain"
	"github.com/heshima/studio-api/internal/core/ports"
)

// ProductService exposes the read-only catalog, fronted by a best-effort
// cache. Cache failures are logged and ignored: the repository is always the
// source of truth.
type ProductService struct {
	products ports.ProductRepository
	cache    ports.ProductCache
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, cache ports.ProductCache, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, cache: cache, logger: logger}
}

// ListActive returns all products with the active flag set.
func (s *ProductService) ListActive(ctx context.Context) ([]*domain.Product, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetActive(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
		} else if ok {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	products, err := s.products.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, products); err != nil {
			s.logger.Warn().Err(err).Msg("failed to populate catalog cache")
		}
	}

	return products, nil
}

// GetByID returns one product or domain.ErrProductNotFound.
func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}
