// Package cache keeps storefront listings and message idempotency keys in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/storefront-server/internal/model"
)

const catalogKeyPrefix = "catalog:"

var _ model.CatalogCache = (*Catalog)(nil)

// Catalog caches product listings as JSON values.
type Catalog struct {
	client redis.Cmdable
}

func NewCatalog(client redis.Cmdable) *Catalog {
	return &Catalog{client: client}
}

// GetProducts returns the cached listing and whether it was present.
func (c *Catalog) GetProducts(ctx context.Context, key string) ([]model.Product, bool, error) {
	raw, err := c.client.Get(ctx, catalogKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var products []cachedProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("failed to decode catalog cache: %w", err)
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p.toModel())
	}
	return out, true, nil
}

func (c *Catalog) SetProducts(ctx context.Context, key string, products []model.Product, ttl time.Duration) error {
	cached := make([]cachedProduct, 0, len(products))
	for _, p := range products {
		cached = append(cached, fromModel(p))
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode catalog cache: %w", err)
	}

	if err := c.client.Set(ctx, catalogKeyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}
	return nil
}

// cachedProduct keeps the file path, which the public JSON form of model.Product hides.
type cachedProduct struct {
	model.Product
	FilePath string `json:"file_path"`
}

func fromModel(p model.Product) cachedProduct {
	return cachedProduct{Product: p, FilePath: p.FilePath}
}

func (c cachedProduct) toModel() model.Product {
	p := c.Product
	p.FilePath = c.FilePath
	return p
}
