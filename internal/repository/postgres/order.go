package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.OrderStore = (*OrderRepository)(nil)

type OrderRepository struct {
	db *Connection
}

func NewOrderRepository(db *Connection) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) ExistsForEmail(ctx context.Context, email string, productID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM orders o
			JOIN users u ON u.id = o.user_id
			WHERE u.email = $1 AND o.product_id = $2
		)`

	var exists bool
	if err := r.db.conn(ctx).QueryRow(ctx, query, email, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check order existence: %w", err)
	}

	return exists, nil
}
