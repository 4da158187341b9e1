package repository

import (
	"context"

	"shopapi/internal/model"
)

type CartRepository interface {
	// FindByUser returns ErrNotFound when the user never created a cart.
	FindByUser(ctx context.Context, userID string) (*model.Cart, error)
	// Save upserts the cart row and replaces its lines atomically.
	Save(ctx context.Context, c *model.Cart) (*model.Cart, error)
}
