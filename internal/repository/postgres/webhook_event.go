package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.WebhookEventStore = (*WebhookEventRepository)(nil)

type WebhookEventRepository struct {
	db *Connection
}

func NewWebhookEventRepository(db *Connection) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

func (r *WebhookEventRepository) Record(ctx context.Context, event model.WebhookEvent) (bool, error) {
	const query = `
		INSERT INTO webhook_events (event_id, type, received_at)
		VALUES ($1, $2, COALESCE($3, NOW()))
		ON CONFLICT (event_id) DO NOTHING`

	var receivedAt any
	if !event.ReceivedAt.IsZero() {
		receivedAt = event.ReceivedAt
	}

	cmd, err := r.db.conn(ctx).Exec(ctx, query, event.EventID, event.Type, receivedAt)
	if err != nil {
		return false, fmt.Errorf("failed to record webhook event: %w", err)
	}

	return cmd.RowsAffected() == 1, nil
}
