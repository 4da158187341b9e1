// Package pricing holds the cart and order money arithmetic. All functions are
// pure and round results to two decimal places.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line is one cart line as seen by the pricing rules.
type Line struct {
	Quantity           int
	Price              decimal.Decimal
	PriceAfterDiscount decimal.NullDecimal
}

// Totals are the cart-level sums before any coupon.
type Totals struct {
	TotalPrice         decimal.Decimal
	TotalAfterDiscount decimal.Decimal
}

// CartTotals sums list prices and discounted prices. A line without a positive
// discounted price contributes its list price. When the discounted sum is zero
// it falls back to the list total.
func CartTotals(lines []Line) Totals {
	total := decimal.Zero
	after := decimal.Zero
	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		total = total.Add(l.Price.Mul(qty))

		unit := l.Price
		if l.PriceAfterDiscount.Valid && l.PriceAfterDiscount.Decimal.IsPositive() {
			unit = l.PriceAfterDiscount.Decimal
		}
		after = after.Add(unit.Mul(qty))
	}
	if after.IsZero() {
		after = total
	}
	return Totals{TotalPrice: total.Round(2), TotalAfterDiscount: after.Round(2)}
}

// CouponDiscount returns percent of subtotal, capped at maxAmount when set and
// never more than the subtotal itself.
func CouponDiscount(subtotal decimal.Decimal, percent int, maxAmount decimal.NullDecimal) decimal.Decimal {
	if percent <= 0 || !subtotal.IsPositive() {
		return decimal.Zero
	}
	amount := subtotal.Mul(decimal.NewFromInt(int64(percent))).Div(hundred)
	if maxAmount.Valid && amount.GreaterThan(maxAmount.Decimal) {
		amount = maxAmount.Decimal
	}
	if amount.GreaterThan(subtotal) {
		amount = subtotal
	}
	return amount.Round(2)
}

// ApplyDiscount subtracts amount from subtotal, floored at zero.
func ApplyDiscount(subtotal, amount decimal.Decimal) decimal.Decimal {
	out := subtotal.Sub(amount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out.Round(2)
}

// OrderTotal is the amount charged for an order.
func OrderTotal(afterDiscount, tax, shipping decimal.Decimal) decimal.Decimal {
	return afterDiscount.Add(tax).Add(shipping).Round(2)
}
