//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/storefront-server/internal/model"
	repo "github.com/dtroode/storefront-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "storefront_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/storefront_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()

	var (
		conn *repo.Connection
		err  error
	)
	// The port opens before postgres accepts queries.
	for i := 0; i < 20; i++ {
		conn, err = repo.NewConection(context.Background(), dsn)
		if err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func seedProduct(t *testing.T, conn *repo.Connection, name string, available bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := conn.Exec(context.Background(),
		`INSERT INTO products (id, name, price_in_cents, file_path, is_available_for_purchase) VALUES ($1, $2, $3, $4, $5)`,
		id, name, 1999, "products/"+id.String(), available)
	require.NoError(t, err)
	return id
}

func TestFulfillmentRepositories(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)

	products := repo.NewProductRepository(conn)
	users := repo.NewUserRepository(conn)
	orders := repo.NewOrderRepository(conn)
	downloads := repo.NewDownloadVerificationRepository(conn)
	events := repo.NewWebhookEventRepository(conn)

	productID := seedProduct(t, conn, "Course", true)

	t.Run("product lookup", func(t *testing.T) {
		p, err := products.GetByID(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, "Course", p.Name)
		assert.Equal(t, int64(1999), p.PriceInCents)

		_, err = products.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("upsert creates user once and appends orders", func(t *testing.T) {
		first, err := users.UpsertWithOrder(ctx, "a@b.com", model.Order{ProductID: productID, PricePaidInCents: 1999})
		require.NoError(t, err)
		second, err := users.UpsertWithOrder(ctx, "a@b.com", model.Order{ProductID: productID, PricePaidInCents: 1500})
		require.NoError(t, err)

		assert.Equal(t, first.UserID, second.UserID)
		assert.NotEqual(t, first.ID, second.ID)

		var userID uuid.UUID
		err = conn.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, "a@b.com").Scan(&userID)
		require.NoError(t, err)
		assert.Equal(t, first.UserID, userID)
	})

	t.Run("existence check", func(t *testing.T) {
		exists, err := orders.ExistsForEmail(ctx, "a@b.com", productID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = orders.ExistsForEmail(ctx, "nobody@b.com", productID)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = orders.ExistsForEmail(ctx, "a@b.com", uuid.New())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("download verification", func(t *testing.T) {
		expires := time.Now().Add(model.DefaultDownloadTTL).UTC().Truncate(time.Microsecond)
		v, err := downloads.Create(ctx, model.DownloadVerification{ProductID: productID, ExpiresAt: expires})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, v.ID)

		got, err := downloads.GetByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, productID, got.ProductID)
		assert.True(t, expires.Equal(got.ExpiresAt))

		_, err = downloads.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("webhook ledger", func(t *testing.T) {
		fresh, err := events.Record(ctx, model.WebhookEvent{EventID: "evt_1", Type: model.EventTypeChargeSucceeded})
		require.NoError(t, err)
		assert.True(t, fresh)

		fresh, err = events.Record(ctx, model.WebhookEvent{EventID: "evt_1", Type: model.EventTypeChargeSucceeded})
		require.NoError(t, err)
		assert.False(t, fresh)
	})

	t.Run("rolled back transaction leaves no ledger entry", func(t *testing.T) {
		err := conn.WithinTx(ctx, func(ctx context.Context) error {
			_, err := events.Record(ctx, model.WebhookEvent{EventID: "evt_rollback", Type: model.EventTypeChargeSucceeded})
			require.NoError(t, err)
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		fresh, err := events.Record(ctx, model.WebhookEvent{EventID: "evt_rollback", Type: model.EventTypeChargeSucceeded})
		require.NoError(t, err)
		assert.True(t, fresh)
	})
}

func TestUserRepository_ConcurrentFirstPurchase(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	users := repo.NewUserRepository(conn)
	productID := seedProduct(t, conn, "Race", true)

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := users.UpsertWithOrder(ctx, "race@b.com", model.Order{ProductID: productID, PricePaidInCents: 100})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var userCount, orderCount int
	require.NoError(t, conn.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = 'race@b.com'`).Scan(&userCount))
	require.NoError(t, conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders o JOIN users u ON u.id = o.user_id WHERE u.email = 'race@b.com'`).Scan(&orderCount))
	assert.Equal(t, 1, userCount)
	assert.Equal(t, workers, orderCount)
}

func TestProductAndDashboardQueries(t *testing.T) {
	ctx := context.Background()
	conn := connect(t)
	products := repo.NewProductRepository(conn)
	users := repo.NewUserRepository(conn)

	popular := seedProduct(t, conn, "Popular", true)
	seedProduct(t, conn, "Hidden", false)
	_, err := users.UpsertWithOrder(ctx, "p1@b.com", model.Order{ProductID: popular, PricePaidInCents: 500})
	require.NoError(t, err)
	_, err = users.UpsertWithOrder(ctx, "p2@b.com", model.Order{ProductID: popular, PricePaidInCents: 500})
	require.NoError(t, err)

	list, err := products.ListAvailable(ctx, model.ProductOrderPopular, 6)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, popular, list[0].ID)
	for _, p := range list {
		assert.True(t, p.IsAvailableForPurchase)
	}

	newest, err := products.ListAvailable(ctx, model.ProductOrderNewest, 1)
	require.NoError(t, err)
	assert.Len(t, newest, 1)

	dashboard := repo.NewDashboardRepository(conn.SQLDB())
	counts, err := dashboard.ProductCounts(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, counts.Inactive, int64(1))

	sales, err := dashboard.SalesTotals(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sales.AmountInCents, int64(1000))
}
