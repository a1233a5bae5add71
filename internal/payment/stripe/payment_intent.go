package stripe

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/dtroode/storefront-server/internal/model"
)

const productIDMetadataKey = "productId"

// intentsAPI is the part of paymentintent.Client used here.
type intentsAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

var _ model.PaymentGateway = (*PaymentIntents)(nil)

// PaymentIntents creates and reads Stripe payment intents for product checkouts.
type PaymentIntents struct {
	api      intentsAPI
	currency string
}

func NewPaymentIntents(secretKey, currency string) *PaymentIntents {
	return &PaymentIntents{
		api:      &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
		currency: currency,
	}
}

// CreatePaymentIntent starts a checkout tagged with the product id, which the
// charge.succeeded webhook later reads back from the charge metadata.
func (p *PaymentIntents) CreatePaymentIntent(ctx context.Context, productID uuid.UUID, amount int64) (model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(p.currency),
	}
	params.Context = ctx
	params.AddMetadata(productIDMetadataKey, productID.String())

	pi, err := p.api.New(params)
	if err != nil {
		return model.PaymentIntent{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return toModel(pi), nil
}

func (p *PaymentIntents) GetPaymentIntent(ctx context.Context, id string) (model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.Get(id, params)
	if err != nil {
		if se, ok := err.(*stripe.Error); ok && se.HTTPStatusCode == 404 {
			return model.PaymentIntent{}, model.ErrNotFound
		}
		return model.PaymentIntent{}, fmt.Errorf("failed to get payment intent: %w", err)
	}

	return toModel(pi), nil
}

func toModel(pi *stripe.PaymentIntent) model.PaymentIntent {
	return model.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		ProductID:    pi.Metadata[productIDMetadataKey],
		Amount:       pi.Amount,
	}
}
