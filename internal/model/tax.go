package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax is the single store-wide tax and shipping setting.
type Tax struct {
	TaxPrice      decimal.Decimal `json:"taxPrice"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	UpdatedAt     time.Time       `json:"updatedAt,omitempty"`
}
