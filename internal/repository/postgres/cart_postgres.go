package postgres

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"shopapi/internal/database"
	"shopapi/internal/model"
	"shopapi/internal/repository"
)

const (
	getCartByUserSQL = `SELECT c.id, c.user_id, c.total_price, c.total_after_discount,
		c.coupon_id, c.coupon_name, c.coupon_discount, c.coupon_amount,
		(SELECT COALESCE(json_agg(json_build_object(
			'id', i.id, 'productId', i.product_id, 'quantity', i.quantity, 'color', i.color, 'price', i.price
		) ORDER BY i.position), '[]'::json) FROM cart_items i WHERE i.cart_id = c.id),
		c.created_at, c.updated_at
		FROM carts c WHERE c.user_id = $1`

	upsertCartSQL = `INSERT INTO carts (user_id, total_price, total_after_discount, coupon_id, coupon_name, coupon_discount, coupon_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			total_price = EXCLUDED.total_price,
			total_after_discount = EXCLUDED.total_after_discount,
			coupon_id = EXCLUDED.coupon_id,
			coupon_name = EXCLUDED.coupon_name,
			coupon_discount = EXCLUDED.coupon_discount,
			coupon_amount = EXCLUDED.coupon_amount,
			updated_at = now()
		RETURNING id`

	deleteCartItemsSQL = `DELETE FROM cart_items WHERE cart_id = $1`
	insertCartItemSQL  = `INSERT INTO cart_items (id, cart_id, product_id, quantity, color, price) VALUES ($1, $2, $3, $4, $5, $6)`
)

type CartPostgres struct {
	db *sql.DB
}

func NewCartPostgres(db *sql.DB) *CartPostgres {
	return &CartPostgres{db: db}
}

var _ repository.CartRepository = (*CartPostgres)(nil)

func (r *CartPostgres) FindByUser(ctx context.Context, userID string) (*model.Cart, error) {
	out, err := scanCart(r.db.QueryRowContext(ctx, getCartByUserSQL, userID))
	return out, mapErr("get cart", err)
}

// Save upserts the cart and rewrites its lines in list order.
func (r *CartPostgres) Save(ctx context.Context, c *model.Cart) (*model.Cart, error) {
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var (
			couponID       sql.NullString
			couponName     string
			couponDiscount int
			couponAmount   = decimal.Zero
		)
		if c.Coupon != nil {
			couponID = sql.NullString{String: c.Coupon.CouponID, Valid: true}
			couponName = c.Coupon.Name
			couponDiscount = c.Coupon.Discount
			couponAmount = c.Coupon.Amount
		}

		var cartID string
		err := tx.QueryRowContext(ctx, upsertCartSQL,
			c.UserID, c.TotalPrice, c.TotalAfterDiscount, couponID, couponName, couponDiscount, couponAmount,
		).Scan(&cartID)
		if err != nil {
			return mapErr("upsert cart", err)
		}

		if _, err := tx.ExecContext(ctx, deleteCartItemsSQL, cartID); err != nil {
			return mapErr("clear cart items", err)
		}
		for _, it := range c.Items {
			if _, err := tx.ExecContext(ctx, insertCartItemSQL,
				it.ID, cartID, it.ProductID, it.Quantity, it.Color, it.Price,
			); err != nil {
				return mapErr("insert cart item", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByUser(ctx, c.UserID)
}

func scanCart(row rowScanner) (*model.Cart, error) {
	var (
		c              model.Cart
		couponID       sql.NullString
		couponName     string
		couponDiscount int
		couponAmount   decimal.Decimal
	)
	err := row.Scan(
		&c.ID, &c.UserID, &c.TotalPrice, &c.TotalAfterDiscount,
		&couponID, &couponName, &couponDiscount, &couponAmount,
		jsonColumn[[]model.CartItem]{&c.Items},
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []model.CartItem{}
	}
	if couponID.Valid {
		c.Coupon = &model.AppliedCoupon{
			CouponID: couponID.String,
			Name:     couponName,
			Discount: couponDiscount,
			Amount:   couponAmount,
		}
	}
	return &c, nil
}
