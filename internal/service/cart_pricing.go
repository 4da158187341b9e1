package service

import (
	"context"

	"github.com/go-faster/errors"

	"shopapi/internal/model"
	"shopapi/internal/pricing"
	"shopapi/internal/repository"
)

// cartPricer computes cart totals from the current catalog and coupon state.
// Shared by the cart and order services.
type cartPricer struct {
	products repository.ProductRepository
	coupons  repository.CouponRepository
}

// reprice refreshes line prices, totals and the applied coupon of c in place.
// known holds products already loaded by the caller.
func (p cartPricer) reprice(ctx context.Context, c *model.Cart, known map[string]*model.Product) error {
	totals, err := p.lineTotals(ctx, c, known)
	if err != nil {
		return err
	}

	var coupon *model.Coupon
	if c.Coupon != nil {
		coupon, err = p.coupons.FindByID(ctx, c.Coupon.CouponID)
		if err != nil && !isNotFound(err) {
			return errors.Wrap(err, "get cart coupon")
		}
	}
	priceCart(c, totals, coupon)
	return nil
}

// lineTotals prices the lines with the current product prices and stores the
// unit price back on each line. A line whose product is gone keeps its stored
// price.
func (p cartPricer) lineTotals(ctx context.Context, c *model.Cart, known map[string]*model.Product) (pricing.Totals, error) {
	lines := make([]pricing.Line, 0, len(c.Items))
	for i := range c.Items {
		it := &c.Items[i]
		prod, ok := known[it.ProductID]
		if !ok {
			var err error
			prod, err = p.products.FindByID(ctx, it.ProductID)
			if err != nil && !isNotFound(err) {
				return pricing.Totals{}, errors.Wrap(err, "get cart product")
			}
		}
		l := pricing.Line{Quantity: it.Quantity, Price: it.Price}
		if prod != nil {
			it.Price = prod.Price
			l.Price = prod.Price
			l.PriceAfterDiscount = prod.PriceAfterDiscount
		}
		lines = append(lines, l)
	}
	return pricing.CartTotals(lines), nil
}

// priceCart sets the cart totals and the coupon discount. A missing coupon, an
// empty cart or an unmet minimum order value detaches the coupon.
func priceCart(c *model.Cart, t pricing.Totals, coupon *model.Coupon) {
	c.TotalPrice = t.TotalPrice
	c.TotalAfterDiscount = t.TotalAfterDiscount
	if coupon == nil || len(c.Items) == 0 || t.TotalAfterDiscount.LessThan(coupon.MinOrderValue) {
		c.Coupon = nil
		return
	}
	amount := pricing.CouponDiscount(t.TotalAfterDiscount, coupon.Discount, coupon.MaxDiscountAmount)
	c.Coupon = &model.AppliedCoupon{
		CouponID: coupon.ID,
		Name:     coupon.Name,
		Discount: coupon.Discount,
		Amount:   amount,
	}
	c.TotalAfterDiscount = pricing.ApplyDiscount(t.TotalAfterDiscount, amount)
}
