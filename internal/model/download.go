package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultDownloadTTL is how long a download verification stays redeemable.
const DefaultDownloadTTL = 7 * 24 * time.Hour

// DownloadVerificationStore persists download verifications.
type DownloadVerificationStore interface {
	Create(ctx context.Context, verification DownloadVerification) (DownloadVerification, error)
	GetByID(ctx context.Context, id uuid.UUID) (DownloadVerification, error)
}

// DownloadVerification authorizes downloading one product's file until ExpiresAt.
type DownloadVerification struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the verification can no longer be redeemed at now.
func (v DownloadVerification) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}

// Asset is an opened product file ready to be streamed to the customer.
type Asset struct {
	Product Product
	File    File
}
