package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the per-user shopping basket. Totals are recomputed on every change.
type Cart struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	Items              []CartItem      `json:"cartItems"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	TotalAfterDiscount decimal.Decimal `json:"totalAfterDiscount"`
	Coupon             *AppliedCoupon  `json:"coupon,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// CartItem is one product/color line.
type CartItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Color     string          `json:"color"`
	Price     decimal.Decimal `json:"price"`
}

// AppliedCoupon snapshots the coupon attached to a cart.
type AppliedCoupon struct {
	CouponID string          `json:"couponId"`
	Name     string          `json:"name"`
	Discount int             `json:"discount"`
	Amount   decimal.Decimal `json:"amount"`
}

// FindItem returns the index of the line with id, or -1.
func (c *Cart) FindItem(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// FindLine returns the index of the line for product and color, or -1.
func (c *Cart) FindLine(productID, color string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Color == color {
			return i
		}
	}
	return -1
}
