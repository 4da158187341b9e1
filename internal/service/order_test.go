package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopapi/internal/model"
	"shopapi/internal/repository"
	repoMocks "shopapi/internal/repository/mocks"
)

var orderNow = time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

type orderMocks struct {
	orders   *repoMocks.MockOrderRepository
	carts    *repoMocks.MockCartRepository
	products *repoMocks.MockProductRepository
	coupons  *repoMocks.MockCouponRepository
	users    *repoMocks.MockUserRepository
	tax      *repoMocks.MockTaxRepository
}

func newTestOrderService(t *testing.T) (*orderService, *orderMocks, *Metrics) {
	t.Helper()
	m := &orderMocks{
		orders:   new(repoMocks.MockOrderRepository),
		carts:    new(repoMocks.MockCartRepository),
		products: new(repoMocks.MockProductRepository),
		coupons:  new(repoMocks.MockCouponRepository),
		users:    new(repoMocks.MockUserRepository),
		tax:      new(repoMocks.MockTaxRepository),
	}
	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	svc := NewOrderService(OrderDeps{
		Orders:   m.orders,
		Carts:    m.carts,
		Products: m.products,
		Coupons:  m.coupons,
		Users:    m.users,
		Tax:      m.tax,
		Metrics:  metrics,
	}, zap.NewNop()).(*orderService)
	svc.now = func() time.Time { return orderNow }
	return svc, m, metrics
}

func checkoutCart() *model.Cart {
	return &model.Cart{
		UserID: "u-1",
		Items: []model.CartItem{
			{ID: "i-1", ProductID: "p-1", Quantity: 2, Color: "red", Price: decimal.NewFromInt(100)},
		},
		TotalPrice:         decimal.NewFromInt(200),
		TotalAfterDiscount: decimal.NewFromInt(180),
		Coupon:             &model.AppliedCoupon{CouponID: "cp-1", Name: "SAVE10", Discount: 10, Amount: decimal.NewFromInt(20)},
	}
}

func saveTen() *model.Coupon {
	return &model.Coupon{ID: "cp-1", Name: "SAVE10", Discount: 10}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, m, metrics := newTestOrderService(t)
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(checkoutCart(), nil)
		m.products.On("FindByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Title: "Phone", Quantity: 5, Price: decimal.NewFromInt(100)}, nil)
		m.coupons.On("FindByID", mock.Anything, "cp-1").Return(saveTen(), nil)
		m.tax.On("Get", mock.Anything).Return(&model.Tax{TaxPrice: decimal.NewFromInt(5), ShippingPrice: decimal.NewFromInt(10)}, nil)
		m.users.On("FindByID", mock.Anything, "u-1").Return(&model.User{ID: "u-1", Address: "Jl. Sudirman 1"}, nil)
		m.orders.On("Checkout", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.TotalOrderPrice.Equal(decimal.NewFromInt(195)) &&
				o.ShippingAddress == "Jl. Sudirman 1" &&
				o.PaymentMethod == model.PaymentCash &&
				o.CouponID != nil && *o.CouponID == "cp-1" &&
				len(o.Items) == 1 && o.Items[0].Quantity == 2
		})).Return(&model.Order{ID: "o-1", TotalOrderPrice: decimal.NewFromInt(195)}, nil)

		o, err := svc.Create(ctx, "u-1", CreateOrderInput{})
		require.NoError(t, err)
		assert.Equal(t, "o-1", o.ID)
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ordersCreated))
		m.orders.AssertExpectations(t)
	})

	t.Run("defaults without tax or address", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		c := checkoutCart()
		c.Coupon = nil
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(c, nil)
		m.products.On("FindByID", mock.Anything, "p-1").Return(&model.Product{
			ID: "p-1", Quantity: 2,
			Price:              decimal.NewFromInt(100),
			PriceAfterDiscount: decimal.NewNullDecimal(decimal.NewFromInt(90)),
		}, nil)
		m.tax.On("Get", mock.Anything).Return(nil, repository.ErrNotFound)
		m.users.On("FindByID", mock.Anything, "u-1").Return(&model.User{ID: "u-1"}, nil)
		m.orders.On("Checkout", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.TotalOrderPrice.Equal(decimal.NewFromInt(180)) &&
				o.ShippingAddress == model.DefaultShippingAddress &&
				o.PaymentMethod == model.PaymentCard &&
				o.CouponID == nil
		})).Return(&model.Order{ID: "o-2"}, nil)

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{PaymentMethod: model.PaymentCard})
		require.NoError(t, err)
		m.orders.AssertExpectations(t)
	})

	t.Run("request address wins", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(checkoutCart(), nil)
		m.products.On("FindByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Quantity: 5, Price: decimal.NewFromInt(100)}, nil)
		m.coupons.On("FindByID", mock.Anything, "cp-1").Return(saveTen(), nil)
		m.tax.On("Get", mock.Anything).Return(nil, repository.ErrNotFound)
		m.orders.On("Checkout", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.ShippingAddress == "Office"
		})).Return(&model.Order{ID: "o-3"}, nil)

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{ShippingAddress: " Office "})
		require.NoError(t, err)
		m.users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("stale discount without coupon is repriced", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		c := checkoutCart()
		c.Coupon = nil
		c.TotalAfterDiscount = decimal.NewFromInt(90)
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(c, nil)
		m.products.On("FindByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Quantity: 5, Price: decimal.NewFromInt(100)}, nil)
		m.tax.On("Get", mock.Anything).Return(nil, repository.ErrNotFound)
		m.users.On("FindByID", mock.Anything, "u-1").Return(&model.User{ID: "u-1"}, nil)
		m.orders.On("Checkout", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.CouponID == nil &&
				o.TotalAfterDiscount.Equal(decimal.NewFromInt(200)) &&
				o.TotalOrderPrice.Equal(decimal.NewFromInt(200))
		})).Return(&model.Order{ID: "o-4"}, nil)

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{})
		require.NoError(t, err)
		m.orders.AssertExpectations(t)
		m.coupons.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("deleted coupon is dropped", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(checkoutCart(), nil)
		m.products.On("FindByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Quantity: 5, Price: decimal.NewFromInt(100)}, nil)
		m.coupons.On("FindByID", mock.Anything, "cp-1").Return(nil, repository.ErrNotFound)
		m.tax.On("Get", mock.Anything).Return(nil, repository.ErrNotFound)
		m.users.On("FindByID", mock.Anything, "u-1").Return(&model.User{ID: "u-1"}, nil)
		m.orders.On("Checkout", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.CouponID == nil && o.TotalOrderPrice.Equal(decimal.NewFromInt(200))
		})).Return(&model.Order{ID: "o-5"}, nil)

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{})
		require.NoError(t, err)
		m.orders.AssertExpectations(t)
	})

	t.Run("charges the current product price", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		c := checkoutCart()
		c.Coupon = nil
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(c, nil)
		m.products.On("FindByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Quantity: 5, Price: decimal.NewFromInt(80)}, nil)
		m.tax.On("Get", mock.Anything).Return(nil, repository.ErrNotFound)
		m.users.On("FindByID", mock.Anything, "u-1").Return(&model.User{ID: "u-1"}, nil)
		m.orders.On("Checkout", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.TotalPrice.Equal(decimal.NewFromInt(160)) &&
				o.Items[0].Price.Equal(decimal.NewFromInt(80))
		})).Return(&model.Order{ID: "o-6"}, nil)

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{})
		require.NoError(t, err)
		m.orders.AssertExpectations(t)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(checkoutCart(), nil)
		m.products.On("FindByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Title: "Phone", Quantity: 1}, nil)

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{})
		assert.ErrorIs(t, err, ErrInvalid)
		assert.EqualError(t, err, `Product "Phone" - Only 1 available, you requested 2`)
	})

	t.Run("oversold during checkout", func(t *testing.T) {
		svc, m, metrics := newTestOrderService(t)
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(checkoutCart(), nil)
		m.products.On("FindByID", mock.Anything, "p-1").Return(&model.Product{ID: "p-1", Quantity: 5, Price: decimal.NewFromInt(100)}, nil)
		m.coupons.On("FindByID", mock.Anything, "cp-1").Return(saveTen(), nil)
		m.tax.On("Get", mock.Anything).Return(nil, repository.ErrNotFound)
		m.users.On("FindByID", mock.Anything, "u-1").Return(nil, repository.ErrNotFound)
		m.orders.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("product p-1: %w", repository.ErrInsufficientStock))

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{})
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ordersCreated))
	})

	t.Run("no cart", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(nil, repository.ErrNotFound)

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(&model.Cart{UserID: "u-1"}, nil)

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{})
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("missing product", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		m.carts.On("FindByUser", mock.Anything, "u-1").Return(checkoutCart(), nil)
		m.products.On("FindByID", mock.Anything, "p-1").Return(nil, repository.ErrNotFound)

		_, err := svc.Create(ctx, "u-1", CreateOrderInput{})
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("bad payment method", func(t *testing.T) {
		svc, _, _ := newTestOrderService(t)
		_, err := svc.Create(ctx, "u-1", CreateOrderInput{PaymentMethod: "crypto"})
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestOrderService_Get(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newTestOrderService(t)
	m.orders.On("FindByID", ctx, "o-1").Return(&model.Order{ID: "o-1", UserID: "u-1"}, nil)
	m.orders.On("FindByID", ctx, "o-9").Return(nil, repository.ErrNotFound)

	o, err := svc.Get(ctx, "u-1", model.RoleUser, "o-1")
	require.NoError(t, err)
	assert.Equal(t, "o-1", o.ID)

	_, err = svc.Get(ctx, "u-2", model.RoleUser, "o-1")
	assert.ErrorIs(t, err, ErrForbidden)

	o, err = svc.Get(ctx, "admin-1", model.RoleAdmin, "o-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", o.UserID)

	_, err = svc.Get(ctx, "u-1", model.RoleUser, "o-9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderService_AdminListDefaults(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newTestOrderService(t)
	paid := true
	m.orders.On("List", ctx, repository.OrderFilter{
		IsPaid:    &paid,
		PageQuery: repository.PageQuery{Limit: 10, Offset: 10},
	}).Return(&repository.PageResult[model.Order]{Items: []model.Order{{ID: "o-1"}}, Total: 11}, nil)

	page, err := svc.AdminList(ctx, OrderQuery{IsPaid: &paid, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 11, page.Total)
	assert.Len(t, page.Items, 1)
}

func TestOrderService_MarkDelivered(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		order   *model.Order
		wantErr string
	}{
		{name: "canceled", order: &model.Order{IsCanceled: true, IsPaid: true}, wantErr: "Canceled orders cannot be delivered"},
		{name: "unpaid", order: &model.Order{}, wantErr: "Order must be paid before delivery"},
		{name: "already delivered", order: &model.Order{IsPaid: true, IsDelivered: true}, wantErr: "Order is already delivered"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, _ := newTestOrderService(t)
			m.orders.On("FindByID", ctx, "o-1").Return(tt.order, nil)

			_, err := svc.MarkDelivered(ctx, "o-1")
			assert.ErrorIs(t, err, ErrInvalid)
			assert.EqualError(t, err, tt.wantErr)
		})
	}

	t.Run("success", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		m.orders.On("FindByID", ctx, "o-1").Return(&model.Order{ID: "o-1", IsPaid: true}, nil)
		m.orders.On("MarkDelivered", ctx, "o-1", orderNow).Return(&model.Order{ID: "o-1", IsPaid: true, IsDelivered: true}, nil)

		o, err := svc.MarkDelivered(ctx, "o-1")
		require.NoError(t, err)
		assert.True(t, o.IsDelivered)
	})

	t.Run("lost race", func(t *testing.T) {
		svc, m, _ := newTestOrderService(t)
		m.orders.On("FindByID", ctx, "o-1").Return(&model.Order{ID: "o-1", IsPaid: true}, nil)
		m.orders.On("MarkDelivered", ctx, "o-1", orderNow).Return(nil, repository.ErrStateChanged)

		_, err := svc.MarkDelivered(ctx, "o-1")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestOrderService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newTestOrderService(t)
	m.orders.On("FindByID", ctx, "o-1").Return(&model.Order{ID: "o-1"}, nil)
	m.orders.On("MarkPaid", ctx, "o-1", orderNow, model.PaymentResult{
		ID:           "pay-1",
		Status:       "COMPLETED",
		UpdateTime:   "2025-04-02T09:30:00Z",
		EmailAddress: "buyer@example.com",
	}).Return(&model.Order{ID: "o-1", IsPaid: true}, nil)

	o, err := svc.MarkPaid(ctx, "o-1", PaymentInput{ID: "pay-1", Status: "COMPLETED", EmailAddress: "buyer@example.com"})
	require.NoError(t, err)
	assert.True(t, o.IsPaid)

	m.orders.On("FindByID", ctx, "o-2").Return(&model.Order{ID: "o-2", IsPaid: true}, nil)
	_, err = svc.MarkPaid(ctx, "o-2", PaymentInput{ID: "pay-2"})
	assert.EqualError(t, err, "Order is already paid")

	m.orders.On("FindByID", ctx, "o-3").Return(&model.Order{ID: "o-3", IsCanceled: true}, nil)
	_, err = svc.MarkPaid(ctx, "o-3", PaymentInput{ID: "pay-3"})
	assert.EqualError(t, err, "Canceled orders cannot be paid")
}

func TestOrderService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels pending order", func(t *testing.T) {
		svc, m, metrics := newTestOrderService(t)
		m.orders.On("FindByID", ctx, "o-1").Return(&model.Order{ID: "o-1", UserID: "u-1"}, nil)
		m.orders.On("Cancel", ctx, "o-1", orderNow).Return(&model.Order{ID: "o-1", UserID: "u-1", IsCanceled: true}, nil)

		o, err := svc.Cancel(ctx, "u-1", "o-1")
		require.NoError(t, err)
		assert.True(t, o.IsCanceled)
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ordersCanceled))
	})

	tests := []struct {
		name  string
		user  string
		order *model.Order
		kind  error
	}{
		{name: "not owner", user: "u-2", order: &model.Order{UserID: "u-1"}, kind: ErrForbidden},
		{name: "paid", user: "u-1", order: &model.Order{UserID: "u-1", IsPaid: true}, kind: ErrInvalid},
		{name: "delivered", user: "u-1", order: &model.Order{UserID: "u-1", IsDelivered: true}, kind: ErrInvalid},
		{name: "canceled", user: "u-1", order: &model.Order{UserID: "u-1", IsCanceled: true}, kind: ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m, _ := newTestOrderService(t)
			m.orders.On("FindByID", ctx, "o-1").Return(tt.order, nil)

			_, err := svc.Cancel(ctx, tt.user, "o-1")
			assert.ErrorIs(t, err, tt.kind)
			m.orders.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
