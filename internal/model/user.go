package model

import (
	"context"
)

// UserStore defines persistence operations for customers, identified by email.
type UserStore interface {
	// UpsertWithOrder creates the user identified by email if missing and appends
	// the order to it in a single statement keyed on the email unique constraint.
	UpsertWithOrder(ctx context.Context, email string, order Order) (Order, error)
}
