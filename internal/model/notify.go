package model

import (
	"context"

	"github.com/google/uuid"
)

// Notifier tells a customer their purchase is ready to download.
type Notifier interface {
	NotifyPurchase(ctx context.Context, notice PurchaseNotice) error
}

// PurchaseNotice is the content of a purchase email.
type PurchaseNotice struct {
	OrderID     uuid.UUID `json:"order_id"`
	Email       string    `json:"email"`
	ProductName string    `json:"product_name"`
	DownloadURL string    `json:"download_url"`
	PricePaid   int64     `json:"price_paid_in_cents"`
}
