package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// DefaultShippingAddress is used when neither the request nor the profile has one.
const DefaultShippingAddress = "No Address Provided"

// Order is an immutable pricing snapshot of a cart plus its lifecycle flags.
type Order struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	User               *OrderUser      `json:"user,omitempty"`
	Items              []OrderItem     `json:"cartItems"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	TotalAfterDiscount decimal.Decimal `json:"totalAfterDiscount"`
	TaxPrice           decimal.Decimal `json:"taxPrice"`
	ShippingPrice      decimal.Decimal `json:"shippingPrice"`
	TotalOrderPrice    decimal.Decimal `json:"totalOrderPrice"`
	CouponID           *string         `json:"couponId,omitempty"`
	ShippingAddress    string          `json:"shippingAddress"`
	PaymentMethod      PaymentMethod   `json:"paymentMethodType"`
	IsPaid             bool            `json:"isPaid"`
	PaidAt             *time.Time      `json:"paidAt,omitempty"`
	PaymentResult      *PaymentResult  `json:"paymentResult,omitempty"`
	IsDelivered        bool            `json:"isDelivered"`
	DeliveredAt        *time.Time      `json:"deliveredAt,omitempty"`
	IsCanceled         bool            `json:"isCanceled"`
	CanceledAt         *time.Time      `json:"canceledAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Color     string          `json:"color"`
	Price     decimal.Decimal `json:"price"`
}

// OrderUser is the customer view embedded in admin listings.
type OrderUser struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// PaymentResult records the external payment confirmation. Stored as JSONB.
type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address,omitempty"`
}

// Value implements driver.Valuer.
func (p PaymentResult) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner.
func (p *PaymentResult) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("payment result: unsupported type %T", src)
	}
}

// OrderStats summarizes order counts and paid revenue.
type OrderStats struct {
	TotalOrders    int             `json:"totalOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	OrdersByStatus OrderStatusStat `json:"ordersByStatus"`
}

type OrderStatusStat struct {
	Pending   int `json:"pending"`
	Paid      int `json:"paid"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}
