package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

const (
	storefrontLimit = 6

	cacheKeyPopular = "products:popular"
	cacheKeyNewest  = "products:newest"
	cacheKeyAll     = "products:all"
)

// Catalog serves product listings, read through the catalog cache.
type Catalog struct {
	products model.ProductStore
	cache    model.CatalogCache
	ttl      time.Duration
	logger   *logger.Logger
}

func NewCatalog(products model.ProductStore, cache model.CatalogCache, ttl time.Duration, logger *logger.Logger) *Catalog {
	return &Catalog{
		products: products,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// Home returns the most popular and newest available products.
func (s *Catalog) Home(ctx context.Context) (model.Storefront, error) {
	popular, err := s.list(ctx, cacheKeyPopular, model.ProductOrderPopular, storefrontLimit)
	if err != nil {
		return model.Storefront{}, err
	}

	newest, err := s.list(ctx, cacheKeyNewest, model.ProductOrderNewest, storefrontLimit)
	if err != nil {
		return model.Storefront{}, err
	}

	return model.Storefront{Popular: popular, Newest: newest}, nil
}

// Products returns every available product by name.
func (s *Catalog) Products(ctx context.Context) ([]model.Product, error) {
	return s.list(ctx, cacheKeyAll, model.ProductOrderName, 0)
}

func (s *Catalog) Product(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// list reads key from the cache and falls back to the store. Cache failures
// are logged and never fail the request.
func (s *Catalog) list(ctx context.Context, key string, order model.ProductOrder, limit int) ([]model.Product, error) {
	if s.cache != nil {
		products, ok, err := s.cache.GetProducts(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("Catalog service: cache read failed", "key", key, "error", err.Error())
		case ok:
			return products, nil
		}
	}

	products, err := s.products.ListAvailable(ctx, order, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []model.Product{}
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, key, products, s.ttl); err != nil {
			s.logger.Warn("Catalog service: cache write failed", "key", key, "error", err.Error())
		}
	}

	return products, nil
}
