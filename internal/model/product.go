package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductStore defines read operations for products.
type ProductStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	ListAvailable(ctx context.Context, order ProductOrder, limit int) ([]Product, error)
}

// ProductOrder selects how product listings are sorted.
type ProductOrder string

const (
	// ProductOrderPopular sorts by number of orders, most ordered first.
	ProductOrderPopular ProductOrder = "popular"
	// ProductOrderNewest sorts by creation time, newest first.
	ProductOrderNewest ProductOrder = "newest"
	// ProductOrderName sorts alphabetically.
	ProductOrderName ProductOrder = "name"
)

// Product is a purchasable digital good.
type Product struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Description            string    `json:"description"`
	PriceInCents           int64     `json:"price_in_cents"`
	FilePath               string    `json:"-"`
	ImagePath              string    `json:"image_path"`
	IsAvailableForPurchase bool      `json:"is_available_for_purchase"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Storefront is the home page selection of products.
type Storefront struct {
	Popular []Product `json:"popular"`
	Newest  []Product `json:"newest"`
}
