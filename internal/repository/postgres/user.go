package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// UpsertWithOrder inserts the user or touches the existing row, then appends the
// order, in one statement. ON CONFLICT serializes concurrent first purchases by
// the same email onto a single user row.
func (r *UserRepository) UpsertWithOrder(ctx context.Context, email string, order model.Order) (model.Order, error) {
	const query = `
		WITH u AS (
			INSERT INTO users (id, email)
			VALUES ($1, $2)
			ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
			RETURNING id
		)
		INSERT INTO orders (id, user_id, product_id, price_paid_in_cents)
		SELECT $3, u.id, $4, $5 FROM u
		RETURNING id, user_id, product_id, price_paid_in_cents, created_at`

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	var saved model.Order
	err := r.db.conn(ctx).QueryRow(ctx, query,
		uuid.New(), email, order.ID, order.ProductID, order.PricePaidInCents,
	).Scan(&saved.ID, &saved.UserID, &saved.ProductID, &saved.PricePaidInCents, &saved.CreatedAt)
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to upsert user with order: %w", err)
	}

	return saved, nil
}
