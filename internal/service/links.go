package service

import (
	"strings"

	"github.com/google/uuid"
)

// Links builds customer facing URLs from the public base URL.
type Links struct {
	base string
}

func NewLinks(publicURL string) Links {
	return Links{base: strings.TrimRight(publicURL, "/")}
}

func (l Links) Download(verificationID uuid.UUID) string {
	return l.base + "/products/download/" + verificationID.String()
}

func (l Links) Purchase(productID uuid.UUID) string {
	return l.base + "/products/" + productID.String() + "/purchase"
}
