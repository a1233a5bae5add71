package model

import "context"

// DashboardStore provides aggregate figures for the admin dashboard.
type DashboardStore interface {
	SalesTotals(ctx context.Context) (SalesTotals, error)
	CustomerCount(ctx context.Context) (int64, error)
	ProductCounts(ctx context.Context) (ProductCounts, error)
}

// SalesTotals sums all orders.
type SalesTotals struct {
	AmountInCents int64
	NumberOfSales int64
}

// ProductCounts splits the catalog by availability.
type ProductCounts struct {
	Active   int64
	Inactive int64
}

// Dashboard is the admin summary.
type Dashboard struct {
	Sales     SalesSummary    `json:"sales"`
	Customers CustomerSummary `json:"customers"`
	Products  ProductSummary  `json:"products"`
}

type SalesSummary struct {
	AmountInCents int64 `json:"amount_in_cents"`
	NumberOfSales int64 `json:"number_of_sales"`
}

type CustomerSummary struct {
	UserCount                  int64 `json:"user_count"`
	AverageValuePerUserInCents int64 `json:"average_value_per_user_in_cents"`
}

type ProductSummary struct {
	ActiveCount   int64 `json:"active_count"`
	InactiveCount int64 `json:"inactive_count"`
}
