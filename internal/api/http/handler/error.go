package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/storefront-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to an HTTP status and a client safe message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, model.ErrDownloadExpired):
		return http.StatusGone, "download link expired"
	case errors.Is(err, model.ErrAlreadyPurchased):
		return http.StatusConflict, "already purchased"
	case errors.Is(err, model.ErrProductUnavailable):
		return http.StatusNotFound, "product unavailable"
	case errors.Is(err, model.ErrInvalidPurchase):
		return http.StatusBadRequest, "invalid purchase"
	case errors.Is(err, model.ErrInvalidSignature):
		return http.StatusBadRequest, "invalid signature"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func respondError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}
