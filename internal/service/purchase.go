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

const notifyTimeout = 10 * time.Second

// Purchase fulfills verified payment events.
type Purchase struct {
	tx        model.Transactor
	events    model.WebhookEventStore
	products  model.ProductStore
	users     model.UserStore
	downloads *Download
	notifier  model.Notifier
	links     Links
	logger    *logger.Logger
}

func NewPurchase(
	tx model.Transactor,
	events model.WebhookEventStore,
	products model.ProductStore,
	users model.UserStore,
	downloads *Download,
	notifier model.Notifier,
	links Links,
	logger *logger.Logger,
) *Purchase {
	return &Purchase{
		tx:        tx,
		events:    events,
		products:  products,
		users:     users,
		downloads: downloads,
		notifier:  notifier,
		links:     links,
		logger:    logger,
	}
}

// Process fulfills a charge.succeeded event: it records the user and order,
// issues a download verification and notifies the customer. The ledger entry,
// order and verification are committed together, so a failed attempt leaves no
// trace and a redelivered event that already succeeded is reported as a duplicate.
func (s *Purchase) Process(ctx context.Context, event model.PaymentEvent) (model.Fulfillment, error) {
	if event.Type != model.EventTypeChargeSucceeded {
		s.logger.Debug("Purchase service: ignoring event",
			"event_id", event.ID,
			"type", event.Type)
		return model.Fulfillment{Status: model.FulfillmentIgnored}, nil
	}

	charge := event.Charge
	if charge == nil || charge.Email == "" {
		s.logger.Info("Purchase service: charge has no email",
			"event_id", event.ID)
		return model.Fulfillment{}, model.ErrInvalidPurchase
	}

	productID, err := uuid.Parse(charge.ProductID)
	if err != nil {
		s.logger.Info("Purchase service: charge has invalid product id",
			"event_id", event.ID,
			"product_id", charge.ProductID)
		return model.Fulfillment{}, model.ErrInvalidPurchase
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("Purchase service: charge references unknown product",
				"event_id", event.ID,
				"product_id", productID)
			return model.Fulfillment{}, model.ErrInvalidPurchase
		}
		return model.Fulfillment{}, fmt.Errorf("failed to get product: %w", err)
	}

	result := model.Fulfillment{Status: model.FulfillmentProcessed}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if event.ID != "" {
			fresh, err := s.events.Record(ctx, model.WebhookEvent{
				EventID:    event.ID,
				Type:       event.Type,
				ReceivedAt: time.Now(),
			})
			if err != nil {
				return fmt.Errorf("failed to record webhook event: %w", err)
			}
			if !fresh {
				result.Status = model.FulfillmentDuplicate
				return nil
			}
		}

		order, err := s.users.UpsertWithOrder(ctx, charge.Email, model.Order{
			ID:               uuid.New(),
			ProductID:        productID,
			PricePaidInCents: charge.AmountPaid,
		})
		if err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		verification, err := s.downloads.Issue(ctx, productID)
		if err != nil {
			return err
		}

		result.Order = order
		result.Verification = verification
		return nil
	})
	if err != nil {
		s.logger.Error("Purchase service: fulfillment failed",
			"event_id", event.ID,
			"product_id", productID,
			"error", err.Error())
		return model.Fulfillment{}, err
	}

	if result.Status == model.FulfillmentDuplicate {
		s.logger.Info("Purchase service: event already fulfilled",
			"event_id", event.ID)
		return result, nil
	}

	s.logger.Info("Purchase service: order fulfilled",
		"event_id", event.ID,
		"order_id", result.Order.ID,
		"product_id", productID)

	s.notify(ctx, charge.Email, product, result)

	return result, nil
}

// notify is best effort: the order is already committed.
func (s *Purchase) notify(ctx context.Context, email string, product model.Product, result model.Fulfillment) {
	if s.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	err := s.notifier.NotifyPurchase(ctx, model.PurchaseNotice{
		OrderID:     result.Order.ID,
		Email:       email,
		ProductName: product.Name,
		DownloadURL: s.links.Download(result.Verification.ID),
		PricePaid:   result.Order.PricePaidInCents,
	})
	if err != nil {
		s.logger.Error("Purchase service: failed to notify customer",
			"order_id", result.Order.ID,
			"error", err.Error())
	}
}
