package postgres

import (
	"context"
	"database/sql"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

const (
	brandColumns = `id, name, image, created_at, updated_at`

	insertBrandSQL = `INSERT INTO brands (name, image) VALUES ($1, $2) RETURNING ` + brandColumns
	getBrandSQL    = `SELECT ` + brandColumns + ` FROM brands WHERE id = $1`
	getBrandByName = `SELECT ` + brandColumns + ` FROM brands WHERE name = $1`
	listBrandsSQL  = `SELECT ` + brandColumns + ` FROM brands ORDER BY created_at DESC, id DESC`
	updateBrandSQL = `UPDATE brands SET name = $2, image = $3, updated_at = now() WHERE id = $1 RETURNING ` + brandColumns
	deleteBrandSQL = `DELETE FROM brands WHERE id = $1`
)

type BrandPostgres struct {
	db *sql.DB
}

func NewBrandPostgres(db *sql.DB) *BrandPostgres {
	return &BrandPostgres{db: db}
}

var _ repository.BrandRepository = (*BrandPostgres)(nil)

func (r *BrandPostgres) Create(ctx context.Context, b *model.Brand) (*model.Brand, error) {
	out, err := scanBrand(r.db.QueryRowContext(ctx, insertBrandSQL, b.Name, b.Image))
	return out, mapErr("insert brand", err)
}

func (r *BrandPostgres) FindByID(ctx context.Context, id string) (*model.Brand, error) {
	out, err := scanBrand(r.db.QueryRowContext(ctx, getBrandSQL, id))
	return out, mapErr("get brand", err)
}

func (r *BrandPostgres) FindByName(ctx context.Context, name string) (*model.Brand, error) {
	out, err := scanBrand(r.db.QueryRowContext(ctx, getBrandByName, name))
	return out, mapErr("get brand by name", err)
}

func (r *BrandPostgres) List(ctx context.Context) ([]model.Brand, error) {
	rows, err := r.db.QueryContext(ctx, listBrandsSQL)
	if err != nil {
		return nil, mapErr("list brands", err)
	}
	defer rows.Close()

	items := make([]model.Brand, 0)
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, mapErr("scan brand", err)
		}
		items = append(items, *b)
	}
	return items, mapErr("list brands", rows.Err())
}

func (r *BrandPostgres) Update(ctx context.Context, b *model.Brand) (*model.Brand, error) {
	out, err := scanBrand(r.db.QueryRowContext(ctx, updateBrandSQL, b.ID, b.Name, b.Image))
	return out, mapErr("update brand", err)
}

func (r *BrandPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteBrandSQL, id)
	if err != nil {
		return mapErr("delete brand", err)
	}
	return affected("delete brand", res)
}

func scanBrand(row rowScanner) (*model.Brand, error) {
	var b model.Brand
	if err := row.Scan(&b.ID, &b.Name, &b.Image, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
