package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

type CouponInput struct {
	Name              string
	ExpireDate        time.Time
	Discount          int
	MinOrderValue     *decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
	IsActive          *bool
	MaxUsage          *int
}

type CouponPatch struct {
	Name              *string
	ExpireDate        *time.Time
	Discount          *int
	MinOrderValue     *decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
	IsActive          *bool
	MaxUsage          *int
}

type CouponService interface {
	Create(ctx context.Context, in CouponInput) (*model.Coupon, error)
	List(ctx context.Context) ([]model.Coupon, error)
	Get(ctx context.Context, id string) (*model.Coupon, error)
	Update(ctx context.Context, id string, in CouponPatch) (*model.Coupon, error)
	Delete(ctx context.Context, id string) error
}

type couponService struct {
	repo  repository.CouponRepository
	index *CouponIndex
	now   func() time.Time
}

func NewCouponService(repo repository.CouponRepository, index *CouponIndex) CouponService {
	return &couponService{repo: repo, index: index, now: time.Now}
}

func (s *couponService) Create(ctx context.Context, in CouponInput) (*model.Coupon, error) {
	c := &model.Coupon{
		Name:          strings.TrimSpace(in.Name),
		ExpireDate:    in.ExpireDate,
		Discount:      in.Discount,
		MinOrderValue: decimal.Zero,
		IsActive:      true,
		MaxUsage:      in.MaxUsage,
	}
	if in.MinOrderValue != nil {
		c.MinOrderValue = *in.MinOrderValue
	}
	if in.MaxDiscountAmount != nil {
		c.MaxDiscountAmount = decimal.NewNullDecimal(*in.MaxDiscountAmount)
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := s.validate(c); err != nil {
		return nil, err
	}
	if err := checkNameFree(ctx, s.repo.FindByName, c.Name, "Coupon"); err != nil {
		return nil, err
	}

	out, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, writeErr(err, "create coupon", "Coupon")
	}
	s.index.Add(out.Name)
	return out, nil
}

func (s *couponService) List(ctx context.Context) ([]model.Coupon, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list coupons")
	}
	return items, nil
}

func (s *couponService) Get(ctx context.Context, id string) (*model.Coupon, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "get coupon", "Coupon not found")
	}
	return c, nil
}

func (s *couponService) Update(ctx context.Context, id string, in CouponPatch) (*model.Coupon, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name != c.Name {
			if err := checkNameFree(ctx, s.repo.FindByName, name, "Coupon"); err != nil {
				return nil, err
			}
		}
		c.Name = name
	}
	if in.ExpireDate != nil {
		if !in.ExpireDate.After(s.now()) {
			return nil, invalidf("Expire date must be in the future")
		}
		c.ExpireDate = *in.ExpireDate
	}
	if in.Discount != nil {
		c.Discount = *in.Discount
	}
	if in.MinOrderValue != nil {
		c.MinOrderValue = *in.MinOrderValue
	}
	if in.MaxDiscountAmount != nil {
		c.MaxDiscountAmount = decimal.NewNullDecimal(*in.MaxDiscountAmount)
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.MaxUsage != nil {
		c.MaxUsage = in.MaxUsage
	}
	if err := s.checkAmounts(c); err != nil {
		return nil, err
	}

	out, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, writeErr(err, "update coupon", "Coupon")
	}
	s.index.Add(out.Name)
	return out, nil
}

func (s *couponService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(err, "delete coupon", "Coupon")
	}
	return nil
}

func (s *couponService) validate(c *model.Coupon) error {
	if !c.ExpireDate.After(s.now()) {
		return invalidf("Expire date must be in the future")
	}
	return s.checkAmounts(c)
}

func (s *couponService) checkAmounts(c *model.Coupon) error {
	switch {
	case c.Discount < 1 || c.Discount > 100:
		return invalidf("Discount must be between 1 and 100")
	case c.MinOrderValue.IsNegative():
		return invalidf("Minimum order value cannot be negative")
	case c.MaxDiscountAmount.Valid && c.MaxDiscountAmount.Decimal.IsNegative():
		return invalidf("Maximum discount amount cannot be negative")
	case c.MaxUsage != nil && *c.MaxUsage < 1:
		return invalidf("Maximum usage must be at least 1")
	}
	return nil
}

// checkCouponUsable reports why c cannot be redeemed by userID on a cart whose
// discounted subtotal is subtotal.
func checkCouponUsable(c *model.Coupon, userID string, subtotal decimal.Decimal, now time.Time) error {
	switch {
	case !c.IsActive:
		return ErrCouponInactive
	case !now.Before(c.ExpireDate):
		return ErrCouponExpired
	case c.Exhausted():
		return ErrCouponExhausted
	case c.UsedByUser(userID):
		return ErrCouponUsed
	case subtotal.LessThan(c.MinOrderValue):
		return invalidf("Minimum order value for this coupon is %s", c.MinOrderValue.StringFixed(2))
	}
	return nil
}
