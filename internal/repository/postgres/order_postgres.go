package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"shopapi/internal/database"
	"shopapi/internal/model"
	"shopapi/internal/repository"
)

const (
	orderColumns = `o.id, o.user_id, o.total_price, o.total_after_discount, o.tax_price, o.shipping_price,
		o.total_order_price, o.coupon_id, o.shipping_address, o.payment_method,
		o.is_paid, o.paid_at, o.payment_result, o.is_delivered, o.delivered_at, o.is_canceled, o.canceled_at,
		o.created_at, o.updated_at,
		(SELECT COALESCE(json_agg(json_build_object(
			'productId', i.product_id, 'quantity', i.quantity, 'color', i.color, 'price', i.price
		) ORDER BY i.line_no), '[]'::json) FROM order_items i WHERE i.order_id = o.id)`

	getOrderSQL         = `SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1`
	listOrdersByUserSQL = `SELECT ` + orderColumns + ` FROM orders o WHERE o.user_id = $1 ORDER BY o.created_at DESC, o.id DESC`

	decrementStockSQL = `UPDATE products SET quantity = quantity - $2, sold = sold + $2, updated_at = now()
		WHERE id = $1 AND quantity >= $2`
	insertOrderSQL = `INSERT INTO orders (user_id, total_price, total_after_discount, tax_price, shipping_price,
		total_order_price, coupon_id, shipping_address, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	insertOrderItemSQL   = `INSERT INTO order_items (order_id, line_no, product_id, quantity, color, price) VALUES ($1, $2, $3, $4, $5, $6)`
	insertCouponUsageSQL = `INSERT INTO coupon_usages (coupon_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	incrementCouponSQL   = `UPDATE coupons SET used_count = used_count + 1, updated_at = now()
		WHERE id = $1 AND (max_usage IS NULL OR used_count < max_usage)`
	deleteCartSQL = `DELETE FROM carts WHERE user_id = $1`

	markPaidSQL = `UPDATE orders SET is_paid = true, paid_at = $2, payment_result = $3, updated_at = now()
		WHERE id = $1 AND NOT is_paid AND NOT is_canceled`
	markDeliveredSQL = `UPDATE orders SET is_delivered = true, delivered_at = $2, updated_at = now()
		WHERE id = $1 AND is_paid AND NOT is_delivered AND NOT is_canceled`
	cancelOrderSQL = `UPDATE orders SET is_canceled = true, canceled_at = $2, updated_at = now()
		WHERE id = $1 AND NOT is_paid AND NOT is_delivered AND NOT is_canceled`
	restoreStockSQL = `UPDATE products p SET quantity = p.quantity + i.qty, sold = GREATEST(p.sold - i.qty, 0), updated_at = now()
		FROM (SELECT product_id, SUM(quantity) AS qty FROM order_items WHERE order_id = $1 GROUP BY product_id) i
		WHERE p.id = i.product_id`

	orderStatsSQL = `SELECT COUNT(*),
		COALESCE(SUM(total_order_price) FILTER (WHERE is_paid), 0),
		COUNT(*) FILTER (WHERE NOT is_paid AND NOT is_canceled),
		COUNT(*) FILTER (WHERE is_paid AND NOT is_delivered AND NOT is_canceled),
		COUNT(*) FILTER (WHERE is_delivered),
		COUNT(*) FILTER (WHERE is_canceled)
		FROM orders`
)

type OrderPostgres struct {
	db *sql.DB
}

func NewOrderPostgres(db *sql.DB) *OrderPostgres {
	return &OrderPostgres{db: db}
}

var _ repository.OrderRepository = (*OrderPostgres)(nil)

func (r *OrderPostgres) Checkout(ctx context.Context, o *model.Order) (*model.Order, error) {
	var orderID string
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, it := range o.Items {
			res, err := tx.ExecContext(ctx, decrementStockSQL, it.ProductID, it.Quantity)
			if err != nil {
				return mapErr("decrement stock", err)
			}
			if n, err := res.RowsAffected(); err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			} else if n == 0 {
				return fmt.Errorf("product %s: %w", it.ProductID, repository.ErrInsufficientStock)
			}
		}

		err := tx.QueryRowContext(ctx, insertOrderSQL,
			o.UserID, o.TotalPrice, o.TotalAfterDiscount, o.TaxPrice, o.ShippingPrice,
			o.TotalOrderPrice, nullString(o.CouponID), o.ShippingAddress, o.PaymentMethod,
		).Scan(&orderID)
		if err != nil {
			return mapErr("insert order", err)
		}

		for i, it := range o.Items {
			if _, err := tx.ExecContext(ctx, insertOrderItemSQL,
				orderID, i+1, it.ProductID, it.Quantity, it.Color, it.Price,
			); err != nil {
				return mapErr("insert order item", err)
			}
		}

		if o.CouponID != nil {
			if err := recordCouponUsage(ctx, tx, *o.CouponID, o.UserID); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, deleteCartSQL, o.UserID); err != nil {
			return mapErr("delete cart", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, orderID)
}

func recordCouponUsage(ctx context.Context, tx *sql.Tx, couponID, userID string) error {
	res, err := tx.ExecContext(ctx, insertCouponUsageSQL, couponID, userID)
	if err != nil {
		return mapErr("record coupon usage", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("coupon already used by user: %w", repository.ErrStateChanged)
	}
	res, err = tx.ExecContext(ctx, incrementCouponSQL, couponID)
	if err != nil {
		return mapErr("increment coupon usage", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("coupon usage limit reached: %w", repository.ErrStateChanged)
	}
	return nil
}

func (r *OrderPostgres) FindByID(ctx context.Context, id string) (*model.Order, error) {
	out, err := scanOrder(r.db.QueryRowContext(ctx, getOrderSQL, id))
	return out, mapErr("get order", err)
}

func (r *OrderPostgres) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	rows, err := r.db.QueryContext(ctx, listOrdersByUserSQL, userID)
	if err != nil {
		return nil, mapErr("list user orders", err)
	}
	defer rows.Close()

	items := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, mapErr("scan order", err)
		}
		items = append(items, *o)
	}
	return items, mapErr("list user orders", rows.Err())
}

func (r *OrderPostgres) List(ctx context.Context, f repository.OrderFilter) (*repository.PageResult[model.Order], error) {
	var (
		conds []string
		args  []any
	)
	addFlag := func(col string, v *bool) {
		if v == nil {
			return
		}
		args = append(args, *v)
		conds = append(conds, fmt.Sprintf("o.%s = $%d", col, len(args)))
	}
	addFlag("is_paid", f.IsPaid)
	addFlag("is_delivered", f.IsDelivered)
	addFlag("is_canceled", f.IsCanceled)

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders o"+where, args...).Scan(&total); err != nil {
		return nil, mapErr("count orders", err)
	}

	args = append(args, f.Limit, f.Offset)
	q := `SELECT ` + orderColumns + `, u.name, u.email, u.phone_number
		FROM orders o JOIN users u ON u.id = o.user_id` + where +
		fmt.Sprintf(" ORDER BY o.created_at DESC, o.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr("list orders", err)
	}
	defer rows.Close()

	items := make([]model.Order, 0)
	for rows.Next() {
		var u model.OrderUser
		o, err := scanOrder(rows, &u.Name, &u.Email, &u.PhoneNumber)
		if err != nil {
			return nil, mapErr("scan order", err)
		}
		o.User = &u
		items = append(items, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list orders", err)
	}
	return &repository.PageResult[model.Order]{Items: items, Total: total}, nil
}

func (r *OrderPostgres) Stats(ctx context.Context) (*model.OrderStats, error) {
	var s model.OrderStats
	err := r.db.QueryRowContext(ctx, orderStatsSQL).Scan(
		&s.TotalOrders, &s.TotalRevenue,
		&s.OrdersByStatus.Pending, &s.OrdersByStatus.Paid, &s.OrdersByStatus.Delivered, &s.OrdersByStatus.Cancelled,
	)
	if err != nil {
		return nil, mapErr("order stats", err)
	}
	return &s, nil
}

func (r *OrderPostgres) MarkPaid(ctx context.Context, id string, at time.Time, res model.PaymentResult) (*model.Order, error) {
	return r.transition(ctx, "mark order paid", id, markPaidSQL, at, res)
}

func (r *OrderPostgres) MarkDelivered(ctx context.Context, id string, at time.Time) (*model.Order, error) {
	return r.transition(ctx, "mark order delivered", id, markDeliveredSQL, at)
}

func (r *OrderPostgres) Cancel(ctx context.Context, id string, at time.Time) (*model.Order, error) {
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := conditionalUpdate(ctx, tx, "cancel order", cancelOrderSQL, id, at); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, restoreStockSQL, id); err != nil {
			return mapErr("restore stock", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *OrderPostgres) transition(ctx context.Context, op, id, q string, args ...any) (*model.Order, error) {
	if err := conditionalUpdate(ctx, r.db, op, q, append([]any{id}, args...)...); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func conditionalUpdate(ctx context.Context, q querier, op, query string, args ...any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapErr(op, err)
	}
	if err := affected(op, res); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, repository.ErrStateChanged)
		}
		return err
	}
	return nil
}

func scanOrder(row rowScanner, extra ...any) (*model.Order, error) {
	var (
		o        model.Order
		couponID sql.NullString
	)
	dest := []any{
		&o.ID, &o.UserID, &o.TotalPrice, &o.TotalAfterDiscount, &o.TaxPrice, &o.ShippingPrice,
		&o.TotalOrderPrice, &couponID, &o.ShippingAddress, &o.PaymentMethod,
		&o.IsPaid, &o.PaidAt, &o.PaymentResult, &o.IsDelivered, &o.DeliveredAt, &o.IsCanceled, &o.CanceledAt,
		&o.CreatedAt, &o.UpdatedAt,
		jsonColumn[[]model.OrderItem]{&o.Items},
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	o.CouponID = stringPtr(couponID)
	if o.Items == nil {
		o.Items = []model.OrderItem{}
	}
	return &o, nil
}
