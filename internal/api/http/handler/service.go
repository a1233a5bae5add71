package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/model"
)

// PaymentEventVerifier authenticates and decodes raw webhook deliveries.
type PaymentEventVerifier interface {
	Verify(payload []byte, signature string) (model.PaymentEvent, error)
}

// PurchaseService fulfills verified payment events.
type PurchaseService interface {
	Process(ctx context.Context, event model.PaymentEvent) (model.Fulfillment, error)
}

// DownloadService opens the file a download verification authorizes.
type DownloadService interface {
	Open(ctx context.Context, id uuid.UUID) (model.Asset, error)
}

// CheckoutService starts and confirms purchases.
type CheckoutService interface {
	StartCheckout(ctx context.Context, productID uuid.UUID, email string) (model.PaymentIntent, error)
	ConfirmPurchase(ctx context.Context, paymentIntentID string) (model.PurchaseConfirmation, error)
}

// CatalogService lists products.
type CatalogService interface {
	Home(ctx context.Context) (model.Storefront, error)
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id uuid.UUID) (model.Product, error)
}

// DashboardService summarizes the store for administrators.
type DashboardService interface {
	Summary(ctx context.Context) (model.Dashboard, error)
}

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
