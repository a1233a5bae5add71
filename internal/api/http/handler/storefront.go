package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
)

// Storefront serves the public catalog, checkout and download endpoints.
type Storefront struct {
	catalog   CatalogService
	checkout  CheckoutService
	downloads DownloadService
	logger    *logger.Logger
}

// NewStorefront creates a new Storefront handler.
func NewStorefront(catalog CatalogService, checkout CheckoutService, downloads DownloadService, logger *logger.Logger) *Storefront {
	return &Storefront{
		catalog:   catalog,
		checkout:  checkout,
		downloads: downloads,
		logger:    logger,
	}
}

type purchaseRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

type purchaseResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

func (h *Storefront) Home(c *gin.Context) {
	storefront, err := h.catalog.Home(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storefront)
}

func (h *Storefront) ListProducts(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Storefront) GetProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// StartPurchase creates a payment intent for the product in the path.
func (h *Storefront) StartPurchase(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		return
	}

	intent, err := h.checkout.StartCheckout(c.Request.Context(), id, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchaseResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	})
}

// PurchaseSuccess reports the outcome of a checkout the customer returned from.
func (h *Storefront) PurchaseSuccess(c *gin.Context) {
	confirmation, err := h.checkout.ConfirmPurchase(c.Request.Context(), c.Query("payment_intent"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// Download streams the file a download verification authorizes.
func (h *Storefront) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, model.ErrNotFound)
		return
	}

	asset, err := h.downloads.Open(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer asset.File.Body.Close()

	contentType := asset.File.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h.logger.Info("Storefront handler: serving download",
		"verification_id", id,
		"product_id", asset.Product.ID)

	c.DataFromReader(http.StatusOK, asset.File.Size, contentType, asset.File.Body, map[string]string{
		"Content-Disposition": attachment(asset.Product),
	})
}

func attachment(p model.Product) string {
	name := p.Name
	if name == "" {
		name = p.ID.String()
	}
	return mime.FormatMediaType("attachment", map[string]string{
		"filename": name + path.Ext(p.FilePath),
	})
}

func productID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, model.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}
