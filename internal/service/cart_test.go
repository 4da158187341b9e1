package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopapi/internal/model"
	"shopapi/internal/pricing"
	"shopapi/internal/repository"
	repoMocks "shopapi/internal/repository/mocks"
)

var cartNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type cartMocks struct {
	carts    *repoMocks.MockCartRepository
	products *repoMocks.MockProductRepository
	coupons  *repoMocks.MockCouponRepository
}

func newTestCartService(t *testing.T, index *CouponIndex) (*cartService, *cartMocks, *Metrics) {
	t.Helper()
	m := &cartMocks{
		carts:    new(repoMocks.MockCartRepository),
		products: new(repoMocks.MockProductRepository),
		coupons:  new(repoMocks.MockCouponRepository),
	}
	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	svc := NewCartService(m.carts, m.products, m.coupons, index, metrics).(*cartService)
	svc.now = func() time.Time { return cartNow }
	return svc, m, metrics
}

// saveReturnsInput makes Save echo the cart it was given.
func saveReturnsInput(m *repoMocks.MockCartRepository) {
	m.On("Save", mock.Anything, mock.Anything).Return(func(_ context.Context, c *model.Cart) *model.Cart { return c }, nil)
}

func phone() *model.Product {
	return &model.Product{
		ID: "p-1", Title: "Phone", Quantity: 5,
		Price:  decimal.NewFromInt(100),
		Colors: model.StringList{"red", "black"},
	}
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("creates cart on first add", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(nil, repository.ErrNotFound)
		saveReturnsInput(m.carts)

		c, err := svc.AddItem(ctx, "u-1", "p-1", AddItemInput{Color: "red"})
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Quantity)
		assert.NotEmpty(t, c.Items[0].ID)
		assert.Equal(t, "u-1", c.UserID)
		assert.Equal(t, "100.00", c.TotalPrice.StringFixed(2))
		assert.Equal(t, "100.00", c.TotalAfterDiscount.StringFixed(2))
	})

	t.Run("merges same product and color", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(&model.Cart{
			UserID: "u-1",
			Items:  []model.CartItem{{ID: "i-1", ProductID: "p-1", Quantity: 2, Color: "red", Price: decimal.NewFromInt(100)}},
		}, nil)
		saveReturnsInput(m.carts)

		c, err := svc.AddItem(ctx, "u-1", "p-1", AddItemInput{Quantity: 3, Color: "red"})
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Quantity)
		assert.Equal(t, "500.00", c.TotalPrice.StringFixed(2))
	})

	t.Run("reprices existing lines at the current product price", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		cheaper := phone()
		cheaper.Price = decimal.NewFromInt(80)
		m.products.On("FindByID", ctx, "p-1").Return(cheaper, nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(&model.Cart{
			UserID: "u-1",
			Items:  []model.CartItem{{ID: "i-1", ProductID: "p-1", Quantity: 1, Color: "red", Price: decimal.NewFromInt(100)}},
		}, nil)
		saveReturnsInput(m.carts)

		c, err := svc.AddItem(ctx, "u-1", "p-1", AddItemInput{Color: "red"})
		require.NoError(t, err)
		assert.Equal(t, "160.00", c.TotalPrice.StringFixed(2))
		assert.Equal(t, "160.00", c.TotalAfterDiscount.StringFixed(2))
		assert.Equal(t, "80.00", c.Items[0].Price.StringFixed(2))
	})

	t.Run("max stock reached", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(&model.Cart{
			Items: []model.CartItem{{ID: "i-1", ProductID: "p-1", Quantity: 4, Color: "red"}},
		}, nil)

		_, err := svc.AddItem(ctx, "u-1", "p-1", AddItemInput{Quantity: 2, Color: "red"})
		assert.EqualError(t, err, "Max stock reached")
	})

	t.Run("out of stock", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)

		_, err := svc.AddItem(ctx, "u-1", "p-1", AddItemInput{Quantity: 6, Color: "red"})
		assert.ErrorIs(t, err, ErrInvalid)
		assert.EqualError(t, err, "Out of stock. Only 5 left.")
	})

	t.Run("unknown color", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(nil, repository.ErrNotFound)

		_, err := svc.AddItem(ctx, "u-1", "p-1", AddItemInput{Color: "green"})
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.products.On("FindByID", ctx, "p-x").Return(nil, repository.ErrNotFound)

		_, err := svc.AddItem(ctx, "u-1", "p-x", AddItemInput{Color: "red"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	cart := func() *model.Cart {
		return &model.Cart{
			UserID: "u-1",
			Items: []model.CartItem{
				{ID: "i-1", ProductID: "p-1", Quantity: 1, Color: "red", Price: decimal.NewFromInt(100)},
				{ID: "i-2", ProductID: "p-1", Quantity: 1, Color: "black", Price: decimal.NewFromInt(100)},
			},
		}
	}

	t.Run("color collides with another line", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(cart(), nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)

		_, err := svc.UpdateItem(ctx, "u-1", "i-1", UpdateItemInput{Color: strPtr("black")})
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("quantity zero", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(cart(), nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)
		zero := 0

		_, err := svc.UpdateItem(ctx, "u-1", "i-1", UpdateItemInput{Quantity: &zero})
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("missing line", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(cart(), nil)

		_, err := svc.UpdateItem(ctx, "u-1", "i-9", UpdateItemInput{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("quantity change reprices", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(cart(), nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)
		saveReturnsInput(m.carts)
		three := 3

		c, err := svc.UpdateItem(ctx, "u-1", "i-1", UpdateItemInput{Quantity: &three})
		require.NoError(t, err)
		assert.Equal(t, "400.00", c.TotalPrice.StringFixed(2))
	})
}

func TestCartService_RemoveItemDropsCouponBelowMinimum(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newTestCartService(t, nil)

	m.carts.On("FindByUser", ctx, "u-1").Return(&model.Cart{
		UserID: "u-1",
		Items: []model.CartItem{
			{ID: "i-1", ProductID: "p-1", Quantity: 1, Color: "red", Price: decimal.NewFromInt(100)},
			{ID: "i-2", ProductID: "p-1", Quantity: 1, Color: "black", Price: decimal.NewFromInt(100)},
		},
		Coupon: &model.AppliedCoupon{CouponID: "cp-1", Name: "BIG", Discount: 10},
	}, nil)
	m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)
	m.coupons.On("FindByID", ctx, "cp-1").Return(&model.Coupon{
		ID: "cp-1", Name: "BIG", Discount: 10, MinOrderValue: decimal.NewFromInt(150),
	}, nil)
	saveReturnsInput(m.carts)

	c, err := svc.RemoveItem(ctx, "u-1", "i-2")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
	assert.Nil(t, c.Coupon)
	assert.Equal(t, "100.00", c.TotalAfterDiscount.StringFixed(2))
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newTestCartService(t, nil)

	m.carts.On("FindByUser", ctx, "u-1").Return(&model.Cart{
		UserID: "u-1",
		Items:  []model.CartItem{{ID: "i-1", ProductID: "p-1", Quantity: 1, Price: decimal.NewFromInt(100)}},
		Coupon: &model.AppliedCoupon{CouponID: "cp-1"},
	}, nil)
	m.coupons.On("FindByID", ctx, "cp-1").Return(nil, repository.ErrNotFound).Maybe()
	saveReturnsInput(m.carts)

	c, err := svc.Clear(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Nil(t, c.Coupon)
	assert.True(t, c.TotalPrice.IsZero())

	m.carts.On("FindByUser", ctx, "u-2").Return(nil, repository.ErrNotFound)
	_, err = svc.Clear(ctx, "u-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_ApplyCoupon(t *testing.T) {
	ctx := context.Background()
	cart := func() *model.Cart {
		return &model.Cart{
			UserID: "u-1",
			Items:  []model.CartItem{{ID: "i-1", ProductID: "p-1", Quantity: 2, Color: "red", Price: decimal.NewFromInt(100)}},
		}
	}
	coupon := func() *model.Coupon {
		return &model.Coupon{
			ID: "cp-1", Name: "SAVE10", Discount: 10, IsActive: true,
			ExpireDate:        cartNow.Add(time.Hour),
			MinOrderValue:     decimal.NewFromInt(50),
			MaxDiscountAmount: decimal.NewNullDecimal(decimal.NewFromInt(15)),
		}
	}

	t.Run("applies capped discount", func(t *testing.T) {
		svc, m, metrics := newTestCartService(t, nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(cart(), nil)
		m.coupons.On("FindByName", ctx, "SAVE10").Return(coupon(), nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)
		saveReturnsInput(m.carts)

		c, err := svc.ApplyCoupon(ctx, "u-1", " SAVE10 ")
		require.NoError(t, err)
		require.NotNil(t, c.Coupon)
		assert.Equal(t, "15.00", c.Coupon.Amount.StringFixed(2))
		assert.Equal(t, "185.00", c.TotalAfterDiscount.StringFixed(2))
		assert.Equal(t, "200.00", c.TotalPrice.StringFixed(2))
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.couponsApplied))
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		m.carts.On("FindByUser", ctx, "u-1").Return(&model.Cart{UserID: "u-1"}, nil)

		_, err := svc.ApplyCoupon(ctx, "u-1", "SAVE10")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("bloom index short-circuits unknown names", func(t *testing.T) {
		index := NewCouponIndex(100)
		loader := new(repoMocks.MockCouponRepository)
		loader.On("Names", ctx).Return([]string{"SAVE10"}, nil)
		require.NoError(t, index.Load(ctx, loader))

		svc, m, _ := newTestCartService(t, index)
		m.carts.On("FindByUser", ctx, "u-1").Return(cart(), nil)

		_, err := svc.ApplyCoupon(ctx, "u-1", "NOPE-NOT-A-COUPON")
		assert.ErrorIs(t, err, ErrNotFound)
		m.coupons.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
	})

	t.Run("already used", func(t *testing.T) {
		svc, m, _ := newTestCartService(t, nil)
		used := coupon()
		used.UsedBy = []string{"u-1"}
		m.carts.On("FindByUser", ctx, "u-1").Return(cart(), nil)
		m.coupons.On("FindByName", ctx, "SAVE10").Return(used, nil)
		m.products.On("FindByID", ctx, "p-1").Return(phone(), nil)

		_, err := svc.ApplyCoupon(ctx, "u-1", "SAVE10")
		assert.ErrorIs(t, err, ErrCouponUsed)
	})
}

func TestPriceCart(t *testing.T) {
	c := &model.Cart{Items: []model.CartItem{{ID: "i-1"}}}
	totals := pricing.Totals{TotalPrice: decimal.NewFromInt(40), TotalAfterDiscount: decimal.NewFromInt(30)}
	coupon := &model.Coupon{ID: "cp-1", Name: "HALF", Discount: 50}

	priceCart(c, totals, coupon)
	require.NotNil(t, c.Coupon)
	assert.Equal(t, "15.00", c.Coupon.Amount.StringFixed(2))
	assert.Equal(t, "15.00", c.TotalAfterDiscount.StringFixed(2))

	priceCart(c, totals, nil)
	assert.Nil(t, c.Coupon)
	assert.Equal(t, "30.00", c.TotalAfterDiscount.StringFixed(2))
}
