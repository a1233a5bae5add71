package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront-server/internal/mocks"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/testutil"
)

func TestDashboard_Summary(t *testing.T) {
	t.Run("aggregates", func(t *testing.T) {
		store := mocks.NewDashboardStore(t)
		store.On("SalesTotals", mock.Anything).Return(model.SalesTotals{AmountInCents: 10000, NumberOfSales: 5}, nil)
		store.On("CustomerCount", mock.Anything).Return(int64(4), nil)
		store.On("ProductCounts", mock.Anything).Return(model.ProductCounts{Active: 3, Inactive: 1}, nil)

		got, err := NewDashboard(store, testutil.MakeNoopLogger()).Summary(context.Background())
		require.NoError(t, err)

		assert.Equal(t, model.Dashboard{
			Sales:     model.SalesSummary{AmountInCents: 10000, NumberOfSales: 5},
			Customers: model.CustomerSummary{UserCount: 4, AverageValuePerUserInCents: 2500},
			Products:  model.ProductSummary{ActiveCount: 3, InactiveCount: 1},
		}, got)
	})

	t.Run("no customers", func(t *testing.T) {
		store := mocks.NewDashboardStore(t)
		store.On("SalesTotals", mock.Anything).Return(model.SalesTotals{}, nil)
		store.On("CustomerCount", mock.Anything).Return(int64(0), nil)
		store.On("ProductCounts", mock.Anything).Return(model.ProductCounts{}, nil)

		got, err := NewDashboard(store, testutil.MakeNoopLogger()).Summary(context.Background())
		require.NoError(t, err)
		assert.Zero(t, got.Customers.AverageValuePerUserInCents)
	})

	t.Run("store error", func(t *testing.T) {
		store := mocks.NewDashboardStore(t)
		store.On("SalesTotals", mock.Anything).Return(model.SalesTotals{}, errors.New("db down"))

		_, err := NewDashboard(store, testutil.MakeNoopLogger()).Summary(context.Background())
		assert.Error(t, err)
	})
}
