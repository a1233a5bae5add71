package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDownloadExpired means a download verification exists but its window has passed.
	ErrDownloadExpired = errors.New("download verification expired")

	// ErrInvalidPurchase marks a payment event that references an unknown product or has no payer email.
	ErrInvalidPurchase = errors.New("invalid purchase event")

	// ErrInvalidSignature marks a webhook payload whose signature could not be verified.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrAlreadyPurchased is returned when the email already owns the product.
	ErrAlreadyPurchased = errors.New("product already purchased")

	// ErrProductUnavailable is returned when a product is not available for purchase.
	ErrProductUnavailable = errors.New("product is not available for purchase")
)
