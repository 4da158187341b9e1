package repository

import (
	"context"

	"shopapi/internal/model"
)

// CouponRepository persists coupons. UsedBy is loaded from the usage table;
// usage is only ever recorded by OrderRepository.Checkout.
type CouponRepository interface {
	Create(ctx context.Context, c *model.Coupon) (*model.Coupon, error)
	FindByID(ctx context.Context, id string) (*model.Coupon, error)
	FindByName(ctx context.Context, name string) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Update(ctx context.Context, c *model.Coupon) (*model.Coupon, error)
	Delete(ctx context.Context, id string) error
	// Names returns every coupon name.
	Names(ctx context.Context) ([]string, error)
}

// TaxRepository persists the single tax settings row.
type TaxRepository interface {
	// Get returns ErrNotFound when no settings were ever stored.
	Get(ctx context.Context) (*model.Tax, error)
	Upsert(ctx context.Context, t *model.Tax) (*model.Tax, error)
}
