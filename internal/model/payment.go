package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventTypeChargeSucceeded is the only payment event type that triggers fulfillment.
const EventTypeChargeSucceeded = "charge.succeeded"

// PaymentEvent is a signature-verified notification from the payment processor.
type PaymentEvent struct {
	ID     string
	Type   string
	Charge *Charge
}

// Charge is the part of a charge payload fulfillment needs.
type Charge struct {
	ProductID  string
	Email      string
	AmountPaid int64
	PaymentID  string
}

// WebhookEvent is a ledger entry for a delivered payment event.
type WebhookEvent struct {
	EventID    string
	Type       string
	ReceivedAt time.Time
}

// WebhookEventStore is the delivery ledger used to make redelivery safe.
type WebhookEventStore interface {
	// Record stores the event and reports false if it was already recorded.
	Record(ctx context.Context, event WebhookEvent) (bool, error)
}

// FulfillmentStatus describes how a payment event was handled.
type FulfillmentStatus string

const (
	FulfillmentProcessed FulfillmentStatus = "processed"
	FulfillmentDuplicate FulfillmentStatus = "duplicate"
	FulfillmentIgnored   FulfillmentStatus = "ignored"
)

// Fulfillment is the outcome of processing one payment event.
type Fulfillment struct {
	Status       FulfillmentStatus
	Order        Order
	Verification DownloadVerification
}

// PaymentIntent is a payment processor checkout handle.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	ProductID    string
	Amount       int64
}

// PaymentIntentStatusSucceeded is the status of a fully paid intent.
const PaymentIntentStatusSucceeded = "succeeded"

// PaymentGateway creates and fetches payment intents at the payment processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, productID uuid.UUID, amount int64) (PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (PaymentIntent, error)
}

// PurchaseConfirmation is the result of checking a payment intent after checkout.
type PurchaseConfirmation struct {
	Success     bool    `json:"success"`
	Product     Product `json:"product"`
	DownloadURL string  `json:"download_url,omitempty"`
	RetryURL    string  `json:"retry_url,omitempty"`
}
