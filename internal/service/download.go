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

// Download issues and redeems download verifications.
type Download struct {
	verifications model.DownloadVerificationStore
	products      model.ProductStore
	files         model.FileStorage
	ttl           time.Duration
	now           func() time.Time
	logger        *logger.Logger
}

func NewDownload(
	verifications model.DownloadVerificationStore,
	products model.ProductStore,
	files model.FileStorage,
	ttl time.Duration,
	logger *logger.Logger,
) *Download {
	if ttl <= 0 {
		ttl = model.DefaultDownloadTTL
	}
	return &Download{
		verifications: verifications,
		products:      products,
		files:         files,
		ttl:           ttl,
		now:           time.Now,
		logger:        logger,
	}
}

// Issue creates a new verification for productID expiring after the configured TTL.
// When ctx carries a transaction the record is written inside it.
func (s *Download) Issue(ctx context.Context, productID uuid.UUID) (model.DownloadVerification, error) {
	now := s.now()
	verification, err := s.verifications.Create(ctx, model.DownloadVerification{
		ID:        uuid.New(),
		ProductID: productID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	})
	if err != nil {
		s.logger.Error("Download service: failed to create verification",
			"product_id", productID,
			"error", err.Error())
		return model.DownloadVerification{}, fmt.Errorf("failed to create download verification: %w", err)
	}

	s.logger.Debug("Download service: issued verification",
		"product_id", productID,
		"verification_id", verification.ID,
		"expires_at", verification.ExpiresAt)

	return verification, nil
}

// Redeem returns the product that id authorizes. Redeeming does not consume the
// verification; it stays valid until it expires.
func (s *Download) Redeem(ctx context.Context, id uuid.UUID) (model.Product, error) {
	verification, err := s.verifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get download verification: %w", err)
	}

	if verification.Expired(s.now()) {
		s.logger.Info("Download service: verification expired",
			"verification_id", id,
			"expired_at", verification.ExpiresAt)
		return model.Product{}, model.ErrDownloadExpired
	}

	product, err := s.products.GetByID(ctx, verification.ProductID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// Open redeems id and opens the product file for streaming. The caller closes Asset.File.Body.
func (s *Download) Open(ctx context.Context, id uuid.UUID) (model.Asset, error) {
	product, err := s.Redeem(ctx, id)
	if err != nil {
		return model.Asset{}, err
	}

	file, err := s.files.Open(ctx, product.FilePath)
	if err != nil {
		s.logger.Error("Download service: failed to open product file",
			"product_id", product.ID,
			"file_path", product.FilePath,
			"error", err.Error())
		if errors.Is(err, model.ErrNotFound) {
			return model.Asset{}, model.ErrNotFound
		}
		return model.Asset{}, fmt.Errorf("failed to open product file: %w", err)
	}

	return model.Asset{Product: product, File: file}, nil
}
