// Package stripe adapts the Stripe API to the storefront's payment model.
package stripe

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/dtroode/storefront-server/internal/model"
)

// SignatureHeader carries the webhook signature.
const SignatureHeader = "Stripe-Signature"

// WebhookVerifier authenticates webhook payloads against the endpoint secret.
type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

type chargePayload struct {
	ID             string            `json:"id"`
	Amount         int64             `json:"amount"`
	Metadata       map[string]string `json:"metadata"`
	BillingDetails struct {
		Email *string `json:"email"`
	} `json:"billing_details"`
}

// Verify checks the signature of payload and decodes it. Only charge.succeeded
// events carry a Charge; other types are returned with a nil Charge.
// Signature failures wrap model.ErrInvalidSignature, a signed charge that
// cannot be decoded wraps model.ErrInvalidPurchase.
func (v *WebhookVerifier) Verify(payload []byte, signature string) (model.PaymentEvent, error) {
	if strings.TrimSpace(signature) == "" || v.secret == "" {
		return model.PaymentEvent{}, model.ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return model.PaymentEvent{}, fmt.Errorf("%w: %v", model.ErrInvalidSignature, err)
	}

	out := model.PaymentEvent{ID: event.ID, Type: string(event.Type)}
	if out.Type != model.EventTypeChargeSucceeded {
		return out, nil
	}

	if event.Data == nil {
		return model.PaymentEvent{}, fmt.Errorf("%w: charge event %s has no data", model.ErrInvalidPurchase, event.ID)
	}

	var charge chargePayload
	if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
		return model.PaymentEvent{}, fmt.Errorf("%w: decode charge: %v", model.ErrInvalidPurchase, err)
	}

	out.Charge = &model.Charge{
		ProductID:  charge.Metadata["productId"],
		AmountPaid: charge.Amount,
		PaymentID:  charge.ID,
	}
	if charge.BillingDetails.Email != nil {
		out.Charge.Email = strings.TrimSpace(*charge.BillingDetails.Email)
	}

	return out, nil
}
