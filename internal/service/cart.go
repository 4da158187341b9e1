package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

type AddItemInput struct {
	// Quantity defaults to 1 when zero.
	Quantity int
	Color    string
}

type UpdateItemInput struct {
	Quantity *int
	Color    *string
}

// CartService manages the caller's cart. Every mutation re-prices the cart
// and re-validates an attached coupon.
type CartService interface {
	AddItem(ctx context.Context, userID, productID string, in AddItemInput) (*model.Cart, error)
	Get(ctx context.Context, userID string) (*model.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID string, in UpdateItemInput) (*model.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*model.Cart, error)
	// Clear removes every line and the coupon.
	Clear(ctx context.Context, userID string) (*model.Cart, error)
	ApplyCoupon(ctx context.Context, userID, name string) (*model.Cart, error)
}

type cartService struct {
	cartPricer
	carts   repository.CartRepository
	index   *CouponIndex
	metrics *Metrics
	now     func() time.Time
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, coupons repository.CouponRepository, index *CouponIndex, metrics *Metrics) CartService {
	return &cartService{
		cartPricer: cartPricer{products: products, coupons: coupons},
		carts:      carts,
		index:      index,
		metrics:    metrics,
		now:        time.Now,
	}
}

func (s *cartService) AddItem(ctx context.Context, userID, productID string, in AddItemInput) (*model.Cart, error) {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, invalidf("Quantity must be at least 1")
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, notFoundOr(err, "get product", "Product not found")
	}
	if p.Quantity < qty {
		return nil, invalidf("Out of stock. Only %d left.", p.Quantity)
	}

	c, err := s.carts.FindByUser(ctx, userID)
	switch {
	case isNotFound(err):
		c = &model.Cart{UserID: userID, Items: []model.CartItem{}}
	case err != nil:
		return nil, errors.Wrap(err, "get cart")
	}

	if i := c.FindLine(p.ID, in.Color); i >= 0 {
		next := c.Items[i].Quantity + qty
		if next > p.Quantity {
			return nil, invalidf("Max stock reached")
		}
		c.Items[i].Quantity = next
	} else {
		if !p.Colors.Contains(in.Color) {
			return nil, invalidf("Color %q is not available for this product", in.Color)
		}
		c.Items = append(c.Items, model.CartItem{
			ID:        uuid.NewString(),
			ProductID: p.ID,
			Quantity:  qty,
			Color:     in.Color,
			Price:     p.Price,
		})
	}

	return s.save(ctx, c, map[string]*model.Product{p.ID: p})
}

func (s *cartService) Get(ctx context.Context, userID string) (*model.Cart, error) {
	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "get cart", "Cart not found")
	}
	return c, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userID, itemID string, in UpdateItemInput) (*model.Cart, error) {
	c, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	i := c.FindItem(itemID)
	if i < 0 {
		return nil, notFoundf("Item not found in cart")
	}
	item := &c.Items[i]

	p, err := s.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, notFoundOr(err, "get product", "Product not found")
	}

	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, invalidf("Quantity must be at least 1")
		}
		if *in.Quantity > p.Quantity {
			return nil, invalidf("Out of stock. Only %d left.", p.Quantity)
		}
		item.Quantity = *in.Quantity
	}
	if in.Color != nil && *in.Color != item.Color {
		if !p.Colors.Contains(*in.Color) {
			return nil, invalidf("Color %q is not available for this product", *in.Color)
		}
		if c.FindLine(item.ProductID, *in.Color) >= 0 {
			return nil, invalidf("This product is already in your cart with that color")
		}
		item.Color = *in.Color
	}

	return s.save(ctx, c, map[string]*model.Product{p.ID: p})
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID string) (*model.Cart, error) {
	c, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	i := c.FindItem(itemID)
	if i < 0 {
		return nil, notFoundf("Item not found in cart")
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return s.save(ctx, c, nil)
}

func (s *cartService) Clear(ctx context.Context, userID string) (*model.Cart, error) {
	c, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Items = []model.CartItem{}
	c.Coupon = nil
	return s.save(ctx, c, nil)
}

func (s *cartService) ApplyCoupon(ctx context.Context, userID, name string) (*model.Cart, error) {
	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil && !isNotFound(err) {
		return nil, errors.Wrap(err, "get cart")
	}
	if c == nil || len(c.Items) == 0 {
		return nil, invalidf("Your cart is empty")
	}

	name = strings.TrimSpace(name)
	if !s.index.MayContain(name) {
		return nil, notFoundf("Coupon not found")
	}
	coupon, err := s.coupons.FindByName(ctx, name)
	if err != nil {
		return nil, notFoundOr(err, "get coupon", "Coupon not found")
	}

	totals, err := s.lineTotals(ctx, c, nil)
	if err != nil {
		return nil, err
	}
	if err := checkCouponUsable(coupon, userID, totals.TotalAfterDiscount, s.now()); err != nil {
		return nil, err
	}

	priceCart(c, totals, coupon)
	out, err := s.carts.Save(ctx, c)
	if err != nil {
		return nil, errors.Wrap(err, "save cart")
	}
	s.metrics.couponApplied()
	return out, nil
}

// save re-prices c and persists it. known holds products already loaded by the caller.
func (s *cartService) save(ctx context.Context, c *model.Cart, known map[string]*model.Product) (*model.Cart, error) {
	if err := s.reprice(ctx, c, known); err != nil {
		return nil, err
	}
	out, err := s.carts.Save(ctx, c)
	if err != nil {
		return nil, errors.Wrap(err, "save cart")
	}
	return out, nil
}
