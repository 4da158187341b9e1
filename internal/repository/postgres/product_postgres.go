package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

const (
	productColumns = `p.id, p.title, p.slug, p.description, p.quantity, p.sold, p.price, p.price_after_discount,
		p.colors, p.image_cover, p.images, p.category_id, p.sub_category_id, p.brand_id, p.supplier_id,
		p.ratings_average, p.ratings_quantity, p.created_at, p.updated_at`

	productDetailSelect = `SELECT ` + productColumns + `,
		c.name, c.image, s.name, b.name, b.image
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN sub_categories s ON s.id = p.sub_category_id
		LEFT JOIN brands b ON b.id = p.brand_id`

	insertProductSQL = `INSERT INTO products (title, slug, description, quantity, price, price_after_discount,
		colors, image_cover, images, category_id, sub_category_id, brand_id, supplier_id, ratings_average, ratings_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	getProductSQL        = productDetailSelect + ` WHERE p.id = $1`
	getProductByTitleSQL = `SELECT ` + productColumns + ` FROM products p WHERE p.title = $1`
	updateProductSQL     = `UPDATE products SET title = $2, slug = $3, description = $4, quantity = $5, price = $6,
		price_after_discount = $7, colors = $8, image_cover = $9, images = $10, category_id = $11,
		sub_category_id = $12, brand_id = $13, supplier_id = $14, ratings_average = $15, ratings_quantity = $16,
		updated_at = now()
		WHERE id = $1`
	deleteProductSQL = `DELETE FROM products WHERE id = $1`
)

// productRangeColumns maps repository.RangeFields to columns.
var productRangeColumns = map[string]string{
	"price":          "p.price",
	"quantity":       "p.quantity",
	"sold":           "p.sold",
	"ratingsAverage": "p.ratings_average",
}

var rangeOperators = map[repository.RangeOp]string{
	repository.OpGTE: ">=",
	repository.OpGT:  ">",
	repository.OpLTE: "<=",
	repository.OpLT:  "<",
}

type ProductPostgres struct {
	db *sql.DB
}

func NewProductPostgres(db *sql.DB) *ProductPostgres {
	return &ProductPostgres{db: db}
}

var _ repository.ProductRepository = (*ProductPostgres)(nil)

func (r *ProductPostgres) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	var id string
	err := r.db.QueryRowContext(ctx, insertProductSQL,
		p.Title, p.Slug, p.Description, p.Quantity, p.Price, p.PriceAfterDiscount,
		p.Colors, p.ImageCover, p.Images, p.CategoryID, p.SubCategoryID, nullString(p.BrandID), nullString(p.SupplierID),
		p.RatingsAverage, p.RatingsQuantity,
	).Scan(&id)
	if err != nil {
		return nil, mapErr("insert product", err)
	}
	return r.FindByID(ctx, id)
}

func (r *ProductPostgres) FindByID(ctx context.Context, id string) (*model.Product, error) {
	out, err := scanProductDetail(r.db.QueryRowContext(ctx, getProductSQL, id))
	return out, mapErr("get product", err)
}

func (r *ProductPostgres) FindByTitle(ctx context.Context, title string) (*model.Product, error) {
	out, err := scanProduct(r.db.QueryRowContext(ctx, getProductByTitleSQL, title))
	return out, mapErr("get product by title", err)
}

func (r *ProductPostgres) List(ctx context.Context, f repository.ProductFilter) (*repository.PageResult[model.Product], error) {
	var (
		conds []string
		args  []any
	)
	if f.Keyword != "" {
		args = append(args, "%"+escapeLike(f.Keyword)+"%")
		conds = append(conds, fmt.Sprintf("(p.title ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args)))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	for _, rf := range f.Ranges {
		col, ok := productRangeColumns[rf.Field]
		if !ok {
			return nil, fmt.Errorf("list products: unknown range field %q", rf.Field)
		}
		op, ok := rangeOperators[rf.Op]
		if !ok {
			return nil, fmt.Errorf("list products: unknown range operator %q", rf.Op)
		}
		args = append(args, rf.Value)
		conds = append(conds, fmt.Sprintf("%s %s $%d", col, op, len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products p"+where, args...).Scan(&total); err != nil {
		return nil, mapErr("count products", err)
	}

	order := " ORDER BY p.created_at DESC, p.id DESC"
	if f.SortByTitle {
		order = " ORDER BY p.title ASC, p.id ASC"
		if f.SortDesc {
			order = " ORDER BY p.title DESC, p.id DESC"
		}
	}
	args = append(args, f.Limit, f.Offset)
	q := productDetailSelect + where + order + fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr("list products", err)
	}
	defer rows.Close()

	items := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProductDetail(rows)
		if err != nil {
			return nil, mapErr("scan product", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list products", err)
	}
	return &repository.PageResult[model.Product]{Items: items, Total: total}, nil
}

func (r *ProductPostgres) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	res, err := r.db.ExecContext(ctx, updateProductSQL,
		p.ID, p.Title, p.Slug, p.Description, p.Quantity, p.Price, p.PriceAfterDiscount,
		p.Colors, p.ImageCover, p.Images, p.CategoryID, p.SubCategoryID, nullString(p.BrandID), nullString(p.SupplierID),
		p.RatingsAverage, p.RatingsQuantity,
	)
	if err != nil {
		return nil, mapErr("update product", err)
	}
	if err := affected("update product", res); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, p.ID)
}

func (r *ProductPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteProductSQL, id)
	if err != nil {
		return mapErr("delete product", err)
	}
	return affected("delete product", res)
}

func productDest(p *model.Product, brandID, supplierID *sql.NullString) []any {
	return []any{
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.Quantity, &p.Sold, &p.Price, &p.PriceAfterDiscount,
		&p.Colors, &p.ImageCover, &p.Images, &p.CategoryID, &p.SubCategoryID, brandID, supplierID,
		&p.RatingsAverage, &p.RatingsQuantity, &p.CreatedAt, &p.UpdatedAt,
	}
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var (
		p                   model.Product
		brandID, supplierID sql.NullString
	)
	if err := row.Scan(productDest(&p, &brandID, &supplierID)...); err != nil {
		return nil, err
	}
	p.BrandID = stringPtr(brandID)
	p.SupplierID = stringPtr(supplierID)
	return &p, nil
}

func scanProductDetail(row rowScanner) (*model.Product, error) {
	var (
		p                     model.Product
		brandID, supplierID   sql.NullString
		category, subCategory model.Ref
		brandName, brandImage sql.NullString
	)
	dest := append(productDest(&p, &brandID, &supplierID),
		&category.Name, &category.Image, &subCategory.Name, &brandName, &brandImage)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	p.BrandID = stringPtr(brandID)
	p.SupplierID = stringPtr(supplierID)

	category.ID = p.CategoryID
	subCategory.ID = p.SubCategoryID
	p.Category = &category
	p.SubCategory = &subCategory
	if p.BrandID != nil {
		p.Brand = &model.Ref{ID: *p.BrandID, Name: brandName.String, Image: brandImage.String}
	}
	return &p, nil
}
