package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

const (
	// DefaultDedupTTL bounds how long a delivered message id is remembered.
	DefaultDedupTTL = 7 * 24 * time.Hour
	// DefaultRetryDelay is the pause before a failed message is requeued.
	DefaultRetryDelay = 5 * time.Second
)

var errMalformedNotice = errors.New("malformed purchase notice")

// Consumer turns queued purchase notices into emails, at most once per message id.
type Consumer struct {
	sender     model.Notifier
	seen       model.IdempotencyStore
	ttl        time.Duration
	retryDelay time.Duration
	logger     *logger.Logger
}

func NewConsumer(sender model.Notifier, seen model.IdempotencyStore, ttl time.Duration, l *logger.Logger) *Consumer {
	if ttl <= 0 {
		ttl = DefaultDedupTTL
	}
	return &Consumer{sender: sender, seen: seen, ttl: ttl, retryDelay: DefaultRetryDelay, logger: l}
}

// WithRetryDelay sets the pause before a failed message is requeued.
// With a prefetch of one, the pause also holds back the next delivery.
func (c *Consumer) WithRetryDelay(d time.Duration) *Consumer {
	if d >= 0 {
		c.retryDelay = d
	}
	return c
}

// HandleMessage sends the notice in body unless messageID was already handled.
// A failed send releases the claim so a redelivery can retry it.
func (c *Consumer) HandleMessage(ctx context.Context, messageID string, body []byte) error {
	var notice model.PurchaseNotice
	if err := json.Unmarshal(body, &notice); err != nil {
		return fmt.Errorf("%w: %v", errMalformedNotice, err)
	}
	if messageID == "" {
		messageID = notice.OrderID.String()
	}

	claimed, err := c.seen.Claim(ctx, messageID, c.ttl)
	if err != nil {
		return fmt.Errorf("failed to claim message: %w", err)
	}
	if !claimed {
		c.logger.Info("Mailer: skipping duplicate message", "message_id", messageID)
		return nil
	}

	if err := c.sender.NotifyPurchase(ctx, notice); err != nil {
		if rerr := c.seen.Release(ctx, messageID); rerr != nil {
			c.logger.Error("Mailer: failed to release message claim", "message_id", messageID, "error", rerr)
		}
		return fmt.Errorf("failed to send purchase email: %w", err)
	}

	c.logger.Info("Mailer: sent purchase email", "message_id", messageID, "order_id", notice.OrderID)
	return nil
}

// Run handles deliveries until ctx is cancelled or the channel closes.
// Malformed messages are dropped. Failed sends are requeued after the retry delay.
func (c *Consumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	err := c.HandleMessage(ctx, d.MessageId, d.Body)
	switch {
	case err == nil:
		if aerr := d.Ack(false); aerr != nil {
			c.logger.Error("Mailer: failed to ack message", "message_id", d.MessageId, "error", aerr)
		}
	case errors.Is(err, errMalformedNotice):
		c.logger.Error("Mailer: dropping malformed message", "message_id", d.MessageId, "error", err)
		_ = d.Nack(false, false)
	default:
		c.logger.Error("Mailer: failed to process message, requeueing",
			"message_id", d.MessageId,
			"retry_in", c.retryDelay,
			"error", err)
		c.backoff(ctx)
		_ = d.Nack(false, true)
	}
}

// backoff waits for the retry delay or until ctx is done.
func (c *Consumer) backoff(ctx context.Context) {
	if c.retryDelay <= 0 {
		return
	}
	t := time.NewTimer(c.retryDelay)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
