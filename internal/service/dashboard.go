package service

import (
	"context"
	"fmt"

	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

// Dashboard aggregates sales, customer and product figures for administrators.
type Dashboard struct {
	store  model.DashboardStore
	logger *logger.Logger
}

func NewDashboard(store model.DashboardStore, logger *logger.Logger) *Dashboard {
	return &Dashboard{store: store, logger: logger}
}

func (s *Dashboard) Summary(ctx context.Context) (model.Dashboard, error) {
	sales, err := s.store.SalesTotals(ctx)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("failed to get sales totals: %w", err)
	}

	customers, err := s.store.CustomerCount(ctx)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("failed to count customers: %w", err)
	}

	products, err := s.store.ProductCounts(ctx)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("failed to count products: %w", err)
	}

	var average int64
	if customers > 0 {
		average = sales.AmountInCents / customers
	}

	return model.Dashboard{
		Sales: model.SalesSummary{
			AmountInCents: sales.AmountInCents,
			NumberOfSales: sales.NumberOfSales,
		},
		Customers: model.CustomerSummary{
			UserCount:                  customers,
			AverageValuePerUserInCents: average,
		},
		Products: model.ProductSummary{
			ActiveCount:   products.Active,
			InactiveCount: products.Inactive,
		},
	}, nil
}
