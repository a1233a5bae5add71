package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

// Checkout starts and confirms purchases with the payment processor.
type Checkout struct {
	products  model.ProductStore
	orders    model.OrderStore
	gateway   model.PaymentGateway
	downloads *Download
	links     Links
	logger    *logger.Logger
}

func NewCheckout(
	products model.ProductStore,
	orders model.OrderStore,
	gateway model.PaymentGateway,
	downloads *Download,
	links Links,
	logger *logger.Logger,
) *Checkout {
	return &Checkout{
		products:  products,
		orders:    orders,
		gateway:   gateway,
		downloads: downloads,
		links:     links,
		logger:    logger,
	}
}

// OrderExists reports whether the customer with email already bought productID.
// An empty email never matches.
func (s *Checkout) OrderExists(ctx context.Context, email string, productID uuid.UUID) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, nil
	}

	exists, err := s.orders.ExistsForEmail(ctx, email, productID)
	if err != nil {
		return false, fmt.Errorf("failed to check order: %w", err)
	}
	return exists, nil
}

// StartCheckout creates a payment intent for productID unless email already owns it.
func (s *Checkout) StartCheckout(ctx context.Context, productID uuid.UUID, email string) (model.PaymentIntent, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PaymentIntent{}, model.ErrNotFound
		}
		return model.PaymentIntent{}, fmt.Errorf("failed to get product: %w", err)
	}
	if !product.IsAvailableForPurchase {
		return model.PaymentIntent{}, model.ErrProductUnavailable
	}

	exists, err := s.OrderExists(ctx, email, productID)
	if err != nil {
		return model.PaymentIntent{}, err
	}
	if exists {
		s.logger.Info("Checkout service: product already purchased",
			"product_id", productID)
		return model.PaymentIntent{}, model.ErrAlreadyPurchased
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, productID, product.PriceInCents)
	if err != nil {
		s.logger.Error("Checkout service: failed to create payment intent",
			"product_id", productID,
			"error", err.Error())
		return model.PaymentIntent{}, err
	}

	s.logger.Debug("Checkout service: payment intent created",
		"product_id", productID,
		"payment_intent_id", intent.ID)

	return intent, nil
}

// ConfirmPurchase inspects a payment intent after the customer returns from
// checkout. A succeeded intent yields a fresh download link.
func (s *Checkout) ConfirmPurchase(ctx context.Context, paymentIntentID string) (model.PurchaseConfirmation, error) {
	if paymentIntentID == "" {
		return model.PurchaseConfirmation{}, model.ErrNotFound
	}

	intent, err := s.gateway.GetPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return model.PurchaseConfirmation{}, err
	}

	productID, err := uuid.Parse(intent.ProductID)
	if err != nil {
		return model.PurchaseConfirmation{}, model.ErrNotFound
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PurchaseConfirmation{}, model.ErrNotFound
		}
		return model.PurchaseConfirmation{}, fmt.Errorf("failed to get product: %w", err)
	}

	if intent.Status != model.PaymentIntentStatusSucceeded {
		return model.PurchaseConfirmation{
			Success:  false,
			Product:  product,
			RetryURL: s.links.Purchase(productID),
		}, nil
	}

	verification, err := s.downloads.Issue(ctx, productID)
	if err != nil {
		return model.PurchaseConfirmation{}, err
	}

	return model.PurchaseConfirmation{
		Success:     true,
		Product:     product,
		DownloadURL: s.links.Download(verification.ID),
	}, nil
}
