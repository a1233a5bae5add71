package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderStore defines read operations for orders.
type OrderStore interface {
	ExistsForEmail(ctx context.Context, email string, productID uuid.UUID) (bool, error)
}

// Order records one paid purchase. Orders are append-only.
type Order struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ProductID        uuid.UUID
	PricePaidInCents int64
	CreatedAt        time.Time
}
