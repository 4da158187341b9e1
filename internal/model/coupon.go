package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon is a percentage discount redeemable once per user.
type Coupon struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	ExpireDate        time.Time           `json:"expireDate"`
	Discount          int                 `json:"discount"`
	MinOrderValue     decimal.Decimal     `json:"minOrderValue"`
	MaxDiscountAmount decimal.NullDecimal `json:"maxDiscountAmount"`
	IsActive          bool                `json:"isActive"`
	MaxUsage          *int                `json:"maxUsage"`
	UsedCount         int                 `json:"usedCount"`
	UsedBy            []string            `json:"usedBy"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// Exhausted reports whether the usage limit has been reached.
func (c *Coupon) Exhausted() bool {
	return c.MaxUsage != nil && c.UsedCount >= *c.MaxUsage
}

// UsedByUser reports whether userID already redeemed the coupon.
func (c *Coupon) UsedByUser(userID string) bool {
	for _, id := range c.UsedBy {
		if id == userID {
			return true
		}
	}
	return false
}
