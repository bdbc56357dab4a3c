package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/heshima/studio-api/internal/core/domain"
)

const activeProductsKey = "catalog:active"

// ProductCache caches the active product listing in Redis under a single
// key with a TTL. The catalog is seeded once and read-only, so expiry is the
// only invalidation needed.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProductCache{client: client, ttl: ttl}
}

// cachedProduct is the wire form stored in Redis; prices travel as strings.
type cachedProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   string `json:"base_price"`
	Active      bool   `json:"active"`
}

// GetActive returns the cached listing and whether the key was present.
func (c *ProductCache) GetActive(ctx context.Context) ([]*domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, activeProductsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var docs []cachedProduct
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, false, fmt.Errorf("catalog cache decode: %w", err)
	}

	products := make([]*domain.Product, 0, len(docs))
	for _, doc := range docs {
		price, err := decimal.NewFromString(doc.BasePrice)
		if err != nil {
			price = decimal.Zero
		}
		products = append(products, &domain.Product{
			ID:          doc.ID,
			Name:        doc.Name,
			Description: doc.Description,
			BasePrice:   price,
			Active:      doc.Active,
		})
	}
	return products, true, nil
}

// SetActive stores the listing until the TTL expires.
func (c *ProductCache) SetActive(ctx context.Context, products []*domain.Product) error {
	docs := make([]cachedProduct, 0, len(products))
	for _, p := range products {
		docs = append(docs, cachedProduct{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			BasePrice:   p.BasePrice.String(),
			Active:      p.Active,
		})
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, activeProductsKey, raw, c.ttl).Err()
}
