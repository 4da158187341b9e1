package postgres

import (
	"context"
	"database/sql"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

const (
	couponSelect = `SELECT c.id, c.name, c.expire_date, c.discount, c.min_order_value, c.max_discount_amount,
		c.is_active, c.max_usage, c.used_count,
		(SELECT COALESCE(json_agg(u.user_id ORDER BY u.used_at), '[]'::json) FROM coupon_usages u WHERE u.coupon_id = c.id),
		c.created_at, c.updated_at
		FROM coupons c`

	insertCouponSQL = `INSERT INTO coupons (name, expire_date, discount, min_order_value, max_discount_amount, is_active, max_usage)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	getCouponSQL       = couponSelect + ` WHERE c.id = $1`
	getCouponByNameSQL = couponSelect + ` WHERE c.name = $1`
	listCouponsSQL     = couponSelect + ` ORDER BY c.created_at DESC, c.id DESC`
	updateCouponSQL    = `UPDATE coupons SET name = $2, expire_date = $3, discount = $4, min_order_value = $5,
		max_discount_amount = $6, is_active = $7, max_usage = $8, updated_at = now()
		WHERE id = $1`
	deleteCouponSQL     = `DELETE FROM coupons WHERE id = $1`
	listCouponNamesSQL  = `SELECT name FROM coupons`
	getTaxSQL           = `SELECT tax_price, shipping_price, updated_at FROM taxes WHERE id = 1`
	upsertTaxSQL        = `INSERT INTO taxes (id, tax_price, shipping_price) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET tax_price = EXCLUDED.tax_price, shipping_price = EXCLUDED.shipping_price, updated_at = now()
		RETURNING tax_price, shipping_price, updated_at`
)

type CouponPostgres struct {
	db *sql.DB
}

func NewCouponPostgres(db *sql.DB) *CouponPostgres {
	return &CouponPostgres{db: db}
}

var _ repository.CouponRepository = (*CouponPostgres)(nil)

func (r *CouponPostgres) Create(ctx context.Context, c *model.Coupon) (*model.Coupon, error) {
	var id string
	err := r.db.QueryRowContext(ctx, insertCouponSQL,
		c.Name, c.ExpireDate, c.Discount, c.MinOrderValue, c.MaxDiscountAmount, c.IsActive, nullInt(c.MaxUsage),
	).Scan(&id)
	if err != nil {
		return nil, mapErr("insert coupon", err)
	}
	return r.FindByID(ctx, id)
}

func (r *CouponPostgres) FindByID(ctx context.Context, id string) (*model.Coupon, error) {
	out, err := scanCoupon(r.db.QueryRowContext(ctx, getCouponSQL, id))
	return out, mapErr("get coupon", err)
}

func (r *CouponPostgres) FindByName(ctx context.Context, name string) (*model.Coupon, error) {
	out, err := scanCoupon(r.db.QueryRowContext(ctx, getCouponByNameSQL, name))
	return out, mapErr("get coupon by name", err)
}

func (r *CouponPostgres) List(ctx context.Context) ([]model.Coupon, error) {
	rows, err := r.db.QueryContext(ctx, listCouponsSQL)
	if err != nil {
		return nil, mapErr("list coupons", err)
	}
	defer rows.Close()

	items := make([]model.Coupon, 0)
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, mapErr("scan coupon", err)
		}
		items = append(items, *c)
	}
	return items, mapErr("list coupons", rows.Err())
}

func (r *CouponPostgres) Update(ctx context.Context, c *model.Coupon) (*model.Coupon, error) {
	res, err := r.db.ExecContext(ctx, updateCouponSQL,
		c.ID, c.Name, c.ExpireDate, c.Discount, c.MinOrderValue, c.MaxDiscountAmount, c.IsActive, nullInt(c.MaxUsage),
	)
	if err != nil {
		return nil, mapErr("update coupon", err)
	}
	if err := affected("update coupon", res); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, c.ID)
}

func (r *CouponPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteCouponSQL, id)
	if err != nil {
		return mapErr("delete coupon", err)
	}
	return affected("delete coupon", res)
}

func (r *CouponPostgres) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listCouponNamesSQL)
	if err != nil {
		return nil, mapErr("list coupon names", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, mapErr("scan coupon name", err)
		}
		names = append(names, n)
	}
	return names, mapErr("list coupon names", rows.Err())
}

func scanCoupon(row rowScanner) (*model.Coupon, error) {
	var (
		c        model.Coupon
		maxUsage sql.NullInt64
		usedBy   []string
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.ExpireDate, &c.Discount, &c.MinOrderValue, &c.MaxDiscountAmount,
		&c.IsActive, &maxUsage, &c.UsedCount, jsonColumn[[]string]{&usedBy},
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.MaxUsage = intPtr(maxUsage)
	if usedBy == nil {
		usedBy = []string{}
	}
	c.UsedBy = usedBy
	return &c, nil
}

// TaxPostgres stores the singleton tax row (id = 1).
type TaxPostgres struct {
	db *sql.DB
}

func NewTaxPostgres(db *sql.DB) *TaxPostgres {
	return &TaxPostgres{db: db}
}

var _ repository.TaxRepository = (*TaxPostgres)(nil)

func (r *TaxPostgres) Get(ctx context.Context) (*model.Tax, error) {
	var t model.Tax
	if err := r.db.QueryRowContext(ctx, getTaxSQL).Scan(&t.TaxPrice, &t.ShippingPrice, &t.UpdatedAt); err != nil {
		return nil, mapErr("get tax", err)
	}
	return &t, nil
}

func (r *TaxPostgres) Upsert(ctx context.Context, t *model.Tax) (*model.Tax, error) {
	var out model.Tax
	err := r.db.QueryRowContext(ctx, upsertTaxSQL, t.TaxPrice, t.ShippingPrice).
		Scan(&out.TaxPrice, &out.ShippingPrice, &out.UpdatedAt)
	if err != nil {
		return nil, mapErr("upsert tax", err)
	}
	return &out, nil
}
