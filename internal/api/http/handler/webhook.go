package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

// MaxWebhookBodyBytes caps webhook payloads.
const MaxWebhookBodyBytes = 1 << 20

// Webhook receives payment processor events.
type Webhook struct {
	verifier  PaymentEventVerifier
	purchases PurchaseService
	logger    *logger.Logger
}

// NewWebhook creates a new Webhook handler.
func NewWebhook(verifier PaymentEventVerifier, purchases PurchaseService, logger *logger.Logger) *Webhook {
	return &Webhook{verifier: verifier, purchases: purchases, logger: logger}
}

// Handle verifies the delivery and fulfills it. Processed, duplicate and
// ignored events are acknowledged with 200 so the processor stops retrying;
// internal failures return 500 so it redelivers.
func (h *Webhook) Handle(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.String(http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		c.String(http.StatusBadRequest, "invalid payload")
		return
	}

	event, err := h.verifier.Verify(body, c.GetHeader("Stripe-Signature"))
	if err != nil {
		status, msg := statusFor(err)
		if errors.Is(err, model.ErrInvalidSignature) {
			h.logger.Info("Webhook handler: rejected delivery", "error", err.Error())
		} else {
			h.logger.Warn("Webhook handler: undecodable event", "error", err.Error())
		}
		if status >= http.StatusInternalServerError {
			_ = c.Error(err)
		}
		c.String(status, msg)
		return
	}

	result, err := h.purchases.Process(c.Request.Context(), event)
	if err != nil {
		status, msg := statusFor(err)
		if status >= http.StatusInternalServerError {
			_ = c.Error(err)
		}
		c.String(status, msg)
		return
	}

	h.logger.Debug("Webhook handler: event handled",
		"event_id", event.ID,
		"type", event.Type,
		"status", string(result.Status))

	c.String(http.StatusOK, "OK")
}
