package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"shopapi/internal/model"
	"shopapi/internal/pricing"
	"shopapi/internal/repository"
)

type CreateOrderInput struct {
	ShippingAddress string
	// PaymentMethod defaults to cash when empty.
	PaymentMethod model.PaymentMethod
}

// PaymentInput is the external payment confirmation recorded by MarkPaid.
type PaymentInput struct {
	ID           string
	Status       string
	EmailAddress string
}

// OrderQuery filters the admin listing. Page defaults to 1 and Limit to 10.
type OrderQuery struct {
	IsPaid      *bool
	IsDelivered *bool
	IsCanceled  *bool
	Page        int
	Limit       int
}

// OrderService turns carts into orders and drives the order lifecycle.
type OrderService interface {
	Create(ctx context.Context, userID string, in CreateOrderInput) (*model.Order, error)
	ListMine(ctx context.Context, userID string) ([]model.Order, error)
	// Get returns the order when userID owns it. Admins may read any order.
	Get(ctx context.Context, userID string, role model.Role, id string) (*model.Order, error)
	AdminList(ctx context.Context, q OrderQuery) (*Page[model.Order], error)
	Stats(ctx context.Context) (*model.OrderStats, error)
	MarkDelivered(ctx context.Context, id string) (*model.Order, error)
	MarkPaid(ctx context.Context, id string, in PaymentInput) (*model.Order, error)
	Cancel(ctx context.Context, userID, id string) (*model.Order, error)
}

type OrderDeps struct {
	Orders   repository.OrderRepository
	Carts    repository.CartRepository
	Products repository.ProductRepository
	Coupons  repository.CouponRepository
	Users    repository.UserRepository
	Tax      repository.TaxRepository
	Metrics  *Metrics
}

type orderService struct {
	cartPricer
	orders  repository.OrderRepository
	carts   repository.CartRepository
	users   repository.UserRepository
	tax     repository.TaxRepository
	metrics *Metrics
	tracer  trace.Tracer
	lg      *zap.Logger
	now     func() time.Time
}

func NewOrderService(d OrderDeps, lg *zap.Logger) OrderService {
	return &orderService{
		cartPricer: cartPricer{products: d.Products, coupons: d.Coupons},
		orders:     d.Orders,
		carts:      d.Carts,
		users:      d.Users,
		tax:        d.Tax,
		metrics:    d.Metrics,
		tracer:     otel.Tracer("shopapi/order"),
		lg:         lg,
		now:        time.Now,
	}
}

func (s *orderService) Create(ctx context.Context, userID string, in CreateOrderInput) (_ *model.Order, err error) {
	ctx, span := s.tracer.Start(ctx, "order.Create", trace.WithAttributes(attribute.String("user.id", userID)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	method := in.PaymentMethod
	switch method {
	case "":
		method = model.PaymentCash
	case model.PaymentCash, model.PaymentCard:
	default:
		return nil, invalidf("Payment method must be cash or card")
	}

	c, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "get cart", "Cart not found")
	}
	if len(c.Items) == 0 {
		return nil, invalidf("Your cart is empty")
	}

	known := make(map[string]*model.Product, len(c.Items))
	for _, it := range c.Items {
		p, ok := known[it.ProductID]
		if !ok {
			p, err = s.products.FindByID(ctx, it.ProductID)
			switch {
			case isNotFound(err):
				return nil, invalidf("Product %s no longer exists", it.ProductID)
			case err != nil:
				return nil, errors.Wrap(err, "get product")
			}
			known[it.ProductID] = p
		}
		if p.Quantity < it.Quantity {
			return nil, invalidf("Product %q - Only %d available, you requested %d", p.Title, p.Quantity, it.Quantity)
		}
	}

	// Re-price against the current catalog and coupon before taking the snapshot.
	if err := s.reprice(ctx, c, known); err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, model.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Color:     it.Color,
			Price:     it.Price,
		})
	}

	taxPrice, shipping, err := s.taxSettings(ctx)
	if err != nil {
		return nil, err
	}
	address, err := s.shippingAddress(ctx, userID, in.ShippingAddress)
	if err != nil {
		return nil, err
	}

	o := &model.Order{
		UserID:             userID,
		Items:              items,
		TotalPrice:         c.TotalPrice,
		TotalAfterDiscount: c.TotalAfterDiscount,
		TaxPrice:           taxPrice,
		ShippingPrice:      shipping,
		TotalOrderPrice:    pricing.OrderTotal(c.TotalAfterDiscount, taxPrice, shipping),
		ShippingAddress:    address,
		PaymentMethod:      method,
	}
	if c.Coupon != nil {
		id := c.Coupon.CouponID
		o.CouponID = &id
	}

	out, err := s.orders.Checkout(ctx, o)
	switch {
	case errors.Is(err, repository.ErrInsufficientStock):
		return nil, invalidf("Some products in your cart are no longer available in the requested quantity")
	case errors.Is(err, repository.ErrStateChanged):
		return nil, invalidf("Coupon can no longer be applied")
	case err != nil:
		return nil, errors.Wrap(err, "checkout")
	}

	s.metrics.orderCreated()
	span.SetAttributes(attribute.String("order.id", out.ID))
	s.lg.Info("order_created",
		zap.String("order_id", out.ID),
		zap.String("user_id", userID),
		zap.String("total", out.TotalOrderPrice.StringFixed(2)),
	)
	return out, nil
}

// taxSettings returns the configured tax and shipping, zero when unset.
func (s *orderService) taxSettings(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	t, err := s.tax.Get(ctx)
	switch {
	case isNotFound(err):
		return decimal.Zero, decimal.Zero, nil
	case err != nil:
		return decimal.Zero, decimal.Zero, errors.Wrap(err, "get tax")
	}
	return t.TaxPrice, t.ShippingPrice, nil
}

func (s *orderService) shippingAddress(ctx context.Context, userID, requested string) (string, error) {
	if a := strings.TrimSpace(requested); a != "" {
		return a, nil
	}
	u, err := s.users.FindByID(ctx, userID)
	switch {
	case isNotFound(err):
		return model.DefaultShippingAddress, nil
	case err != nil:
		return "", errors.Wrap(err, "get user")
	}
	if a := strings.TrimSpace(u.Address); a != "" {
		return a, nil
	}
	return model.DefaultShippingAddress, nil
}

func (s *orderService) ListMine(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

func (s *orderService) Get(ctx context.Context, userID string, role model.Role, id string) (*model.Order, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && o.UserID != userID {
		return nil, forbiddenf("You are not allowed to access this order")
	}
	return o, nil
}

func (s *orderService) AdminList(ctx context.Context, q OrderQuery) (*Page[model.Order], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	res, err := s.orders.List(ctx, repository.OrderFilter{
		IsPaid:      q.IsPaid,
		IsDelivered: q.IsDelivered,
		IsCanceled:  q.IsCanceled,
		PageQuery:   repository.PageQuery{Limit: q.Limit, Offset: (q.Page - 1) * q.Limit},
	})
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return &Page[model.Order]{Items: res.Items, Total: res.Total}, nil
}

func (s *orderService) Stats(ctx context.Context) (*model.OrderStats, error) {
	st, err := s.orders.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "order stats")
	}
	return st, nil
}

func (s *orderService) MarkDelivered(ctx context.Context, id string) (*model.Order, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	switch {
	case o.IsCanceled:
		return nil, invalidf("Canceled orders cannot be delivered")
	case !o.IsPaid:
		return nil, invalidf("Order must be paid before delivery")
	case o.IsDelivered:
		return nil, invalidf("Order is already delivered")
	}
	return s.transitioned(s.orders.MarkDelivered(ctx, id, s.now()))
}

func (s *orderService) MarkPaid(ctx context.Context, id string, in PaymentInput) (*model.Order, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	switch {
	case o.IsCanceled:
		return nil, invalidf("Canceled orders cannot be paid")
	case o.IsPaid:
		return nil, invalidf("Order is already paid")
	}
	now := s.now()
	res := model.PaymentResult{
		ID:           in.ID,
		Status:       in.Status,
		UpdateTime:   now.UTC().Format(time.RFC3339),
		EmailAddress: in.EmailAddress,
	}
	return s.transitioned(s.orders.MarkPaid(ctx, id, now, res))
}

func (s *orderService) Cancel(ctx context.Context, userID, id string) (*model.Order, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	switch {
	case o.UserID != userID:
		return nil, forbiddenf("You are not allowed to cancel this order")
	case o.IsPaid:
		return nil, invalidf("Paid orders cannot be canceled")
	case o.IsDelivered:
		return nil, invalidf("Delivered orders cannot be canceled")
	case o.IsCanceled:
		return nil, invalidf("Order is already canceled")
	}
	out, err := s.transitioned(s.orders.Cancel(ctx, id, s.now()))
	if err != nil {
		return nil, err
	}
	s.metrics.orderCanceled()
	s.lg.Info("order_canceled", zap.String("order_id", id), zap.String("user_id", userID))
	return out, nil
}

func (s *orderService) find(ctx context.Context, id string) (*model.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "get order", "Order not found")
	}
	return o, nil
}

// transitioned maps a lost race on a status update to a client error.
func (s *orderService) transitioned(o *model.Order, err error) (*model.Order, error) {
	switch {
	case errors.Is(err, repository.ErrStateChanged):
		return nil, invalidf("Order status changed, please retry")
	case err != nil:
		return nil, errors.Wrap(err, "update order")
	}
	return o, nil
}
