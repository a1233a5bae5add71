// Package notify delivers purchase notifications to customers, either directly
// through the mail provider or through a RabbitMQ queue drained by the mailer.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

const dialAttempts = 10

// publishChannel is the part of *amqp.Channel the publisher needs.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

var _ model.Notifier = (*QueuePublisher)(nil)

// QueuePublisher publishes purchase notices to a durable queue.
// A single AMQP channel is shared, so publishes are serialized.
type QueuePublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel publishChannel
	queue   string
	logger  *logger.Logger
}

// NewQueuePublisher dials url, retrying while the broker starts, and declares queue.
func NewQueuePublisher(ctx context.Context, url, queue string, l *logger.Logger) (*QueuePublisher, error) {
	conn, err := Dial(ctx, url, l)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if err := DeclareQueue(ch, queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &QueuePublisher{
		conn:    conn,
		channel: ch,
		queue:   queue,
		logger:  l,
	}, nil
}

// DeclareQueue declares the durable notification queue on ch.
func DeclareQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare a queue: %w", err)
	}
	return nil
}

// Dial connects to the broker, retrying while it starts.
func Dial(ctx context.Context, url string, l *logger.Logger) (*amqp.Connection, error) {
	var (
		conn *amqp.Connection
		err  error
	)
	for i := 1; i <= dialAttempts; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		l.Warn("Notify: failed to connect to RabbitMQ, retrying", "attempt", i, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
}

// NotifyPurchase publishes notice as a persistent JSON message whose id is the order id.
func (p *QueuePublisher) NotifyPurchase(ctx context.Context, notice model.PurchaseNotice) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to encode notice: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			MessageId:    notice.OrderID.String(),
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("Notify: published purchase notice", "order_id", notice.OrderID, "queue", p.queue)
	return nil
}

func (p *QueuePublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.channel.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
