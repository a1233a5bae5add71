package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/storefront-server/internal/mocks"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWebhook(h *Webhook, body string, signature string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/webhooks/stripe", h.Handle)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(body))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWebhook_Handle(t *testing.T) {
	t.Parallel()

	event := model.PaymentEvent{ID: "evt_1", Type: model.EventTypeChargeSucceeded, Charge: &model.Charge{}}

	tests := []struct {
		name       string
		setup      func(*mocks.PaymentEventVerifier, *mocks.PurchaseService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "processed",
			setup: func(v *mocks.PaymentEventVerifier, p *mocks.PurchaseService) {
				v.On("Verify", []byte("payload"), "t=1,v1=sig").Return(event, nil)
				p.On("Process", mock.Anything, event).Return(model.Fulfillment{Status: model.FulfillmentProcessed}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "OK",
		},
		{
			name: "duplicate",
			setup: func(v *mocks.PaymentEventVerifier, p *mocks.PurchaseService) {
				v.On("Verify", mock.Anything, mock.Anything).Return(event, nil)
				p.On("Process", mock.Anything, event).Return(model.Fulfillment{Status: model.FulfillmentDuplicate}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "OK",
		},
		{
			name: "bad signature",
			setup: func(v *mocks.PaymentEventVerifier, _ *mocks.PurchaseService) {
				v.On("Verify", mock.Anything, mock.Anything).Return(model.PaymentEvent{}, model.ErrInvalidSignature)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid signature",
		},
		{
			name: "signed but undecodable charge",
			setup: func(v *mocks.PaymentEventVerifier, _ *mocks.PurchaseService) {
				v.On("Verify", mock.Anything, mock.Anything).
					Return(model.PaymentEvent{}, fmt.Errorf("%w: decode charge", model.ErrInvalidPurchase))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid purchase",
		},
		{
			name: "invalid purchase",
			setup: func(v *mocks.PaymentEventVerifier, p *mocks.PurchaseService) {
				v.On("Verify", mock.Anything, mock.Anything).Return(event, nil)
				p.On("Process", mock.Anything, event).Return(model.Fulfillment{}, model.ErrInvalidPurchase)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid purchase",
		},
		{
			name: "store failure",
			setup: func(v *mocks.PaymentEventVerifier, p *mocks.PurchaseService) {
				v.On("Verify", mock.Anything, mock.Anything).Return(event, nil)
				p.On("Process", mock.Anything, event).Return(model.Fulfillment{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verifier := mocks.NewPaymentEventVerifier(t)
			purchases := mocks.NewPurchaseService(t)
			tt.setup(verifier, purchases)

			rec := serveWebhook(NewWebhook(verifier, purchases, testutil.MakeNoopLogger()), "payload", "t=1,v1=sig")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWebhook_Handle_TooLarge(t *testing.T) {
	t.Parallel()

	verifier := mocks.NewPaymentEventVerifier(t)
	purchases := mocks.NewPurchaseService(t)

	body := strings.Repeat("a", MaxWebhookBodyBytes+1)
	rec := serveWebhook(NewWebhook(verifier, purchases, testutil.MakeNoopLogger()), body, "sig")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
