package repository

import (
	"context"
	"time"

	"shopapi/internal/model"
)

// OrderFilter narrows admin order listings. Nil flags are ignored.
type OrderFilter struct {
	IsPaid      *bool
	IsDelivered *bool
	IsCanceled  *bool
	PageQuery
}

type OrderRepository interface {
	// Checkout persists o in a single transaction: it decrements stock and
	// increments sold for every line (ErrInsufficientStock when any line
	// cannot be covered), inserts the order, records coupon usage and empties
	// the user's cart.
	Checkout(ctx context.Context, o *model.Order) (*model.Order, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
	// ListByUser returns the user's orders newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	// List returns orders newest first with the customer embedded.
	List(ctx context.Context, f OrderFilter) (*PageResult[model.Order], error)
	Stats(ctx context.Context) (*model.OrderStats, error)
	// MarkPaid and MarkDelivered yield ErrStateChanged when the order no longer
	// qualifies (canceled, already paid, already delivered or unpaid).
	MarkPaid(ctx context.Context, id string, at time.Time, res model.PaymentResult) (*model.Order, error)
	MarkDelivered(ctx context.Context, id string, at time.Time) (*model.Order, error)
	// Cancel restores stock for every line and flags the order canceled in one
	// transaction. ErrStateChanged when the order was paid, delivered or canceled meanwhile.
	Cancel(ctx context.Context, id string, at time.Time) (*model.Order, error)
}
