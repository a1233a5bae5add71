package model

import (
	"context"
	"time"
)

// CatalogCache caches product listings.
type CatalogCache interface {
	GetProducts(ctx context.Context, key string) ([]Product, bool, error)
	SetProducts(ctx context.Context, key string, products []Product, ttl time.Duration) error
}

// IdempotencyStore claims keys so an action runs at most once per key.
type IdempotencyStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
