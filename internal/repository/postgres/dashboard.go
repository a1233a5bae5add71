package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.DashboardStore = (*DashboardRepository)(nil)

// DashboardRepository runs read-only aggregate queries over database/sql.
type DashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) SalesTotals(ctx context.Context) (model.SalesTotals, error) {
	const query = `SELECT COALESCE(SUM(price_paid_in_cents), 0)::BIGINT, COUNT(*) FROM orders`

	var totals model.SalesTotals
	if err := r.db.QueryRowContext(ctx, query).Scan(&totals.AmountInCents, &totals.NumberOfSales); err != nil {
		return model.SalesTotals{}, fmt.Errorf("failed to aggregate sales: %w", err)
	}

	return totals, nil
}

func (r *DashboardRepository) CustomerCount(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

func (r *DashboardRepository) ProductCounts(ctx context.Context) (model.ProductCounts, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE is_available_for_purchase),
			COUNT(*) FILTER (WHERE NOT is_available_for_purchase)
		FROM products`

	var counts model.ProductCounts
	if err := r.db.QueryRowContext(ctx, query).Scan(&counts.Active, &counts.Inactive); err != nil {
		return model.ProductCounts{}, fmt.Errorf("failed to count products: %w", err)
	}

	return counts, nil
}
