package router

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/storefront-server/internal/api/http/handler"
	"github.com/dtroode/storefront-server/internal/api/http/middleware"
	"github.com/dtroode/storefront-server/internal/credential"
	"github.com/dtroode/storefront-server/internal/mocks"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/testutil"
)

func TestIsAdminPath(t *testing.T) {
	assert.True(t, isAdminPath("/admin"))
	assert.True(t, isAdminPath("/admin/"))
	assert.True(t, isAdminPath("/admin/orders/1"))
	assert.False(t, isAdminPath("/administrator"))
	assert.False(t, isAdminPath("/"))
	assert.False(t, isAdminPath("/products/admin"))
}

func TestRouter_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lg := testutil.MakeNoopLogger()

	catalog := mocks.NewCatalogService(t)
	checkout := mocks.NewCheckoutService(t)
	downloads := mocks.NewDownloadService(t)
	dashboard := mocks.NewDashboardService(t)
	db := mocks.NewHealthChecker(t)

	downloadID := uuid.New()
	productID := uuid.New()
	catalog.On("Product", mock.Anything, productID).Return(model.Product{ID: productID}, nil)
	downloads.On("Open", mock.Anything, downloadID).Return(model.Asset{}, model.ErrDownloadExpired)
	dashboard.On("Summary", mock.Anything).Return(model.Dashboard{}, nil).Once()
	db.On("Ping", mock.Anything).Return(nil)

	engine := New(Handlers{
		Storefront: handler.NewStorefront(catalog, checkout, downloads, lg),
		Webhook:    handler.NewWebhook(mocks.NewPaymentEventVerifier(t), mocks.NewPurchaseService(t), lg),
		Admin:      handler.NewAdmin(dashboard),
		Health:     handler.NewHealth(db),
	}, middleware.NewAdminAuth("admin", credential.Hash("pw"), credential.NewVerifier(), lg), lg).Register()

	authorized := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:pw"))

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
	}{
		{name: "health", method: http.MethodGet, path: "/healthz", want: http.StatusOK},
		{name: "product", method: http.MethodGet, path: "/products/" + productID.String(), want: http.StatusOK},
		{name: "download", method: http.MethodGet, path: "/products/download/" + downloadID.String(), want: http.StatusGone},
		{name: "admin without credentials", method: http.MethodGet, path: "/admin", want: http.StatusUnauthorized},
		{name: "admin with credentials", method: http.MethodGet, path: "/admin", auth: authorized, want: http.StatusOK},
		{name: "admin trailing slash without credentials", method: http.MethodGet, path: "/admin/", want: http.StatusUnauthorized},
		{name: "nested admin path without credentials", method: http.MethodGet, path: "/admin/orders", want: http.StatusUnauthorized},
		{name: "deep admin path without credentials", method: http.MethodPost, path: "/admin/products/new", want: http.StatusUnauthorized},
		{name: "nested admin path with credentials", method: http.MethodGet, path: "/admin/orders", auth: authorized, want: http.StatusNotFound},
		{name: "admin lookalike is not gated", method: http.MethodGet, path: "/administrator", want: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, path: "/nope", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Equal(t, "Basic", rec.Header().Get("WWW-Authenticate"))
			}
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}
