package postgres

import (
	"context"
	"database/sql"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

const (
	categoryColumns = `id, name, image, created_at, updated_at`

	insertCategorySQL = `INSERT INTO categories (name, image) VALUES ($1, $2) RETURNING ` + categoryColumns
	getCategorySQL    = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	getCategoryByName = `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`
	listCategoriesSQL = `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at DESC, id DESC`
	updateCategorySQL = `UPDATE categories SET name = $2, image = $3, updated_at = now() WHERE id = $1 RETURNING ` + categoryColumns
	deleteCategorySQL = `DELETE FROM categories WHERE id = $1`
)

type CategoryPostgres struct {
	db *sql.DB
}

func NewCategoryPostgres(db *sql.DB) *CategoryPostgres {
	return &CategoryPostgres{db: db}
}

var _ repository.CategoryRepository = (*CategoryPostgres)(nil)

func (r *CategoryPostgres) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	out, err := scanCategory(r.db.QueryRowContext(ctx, insertCategorySQL, c.Name, c.Image))
	return out, mapErr("insert category", err)
}

func (r *CategoryPostgres) FindByID(ctx context.Context, id string) (*model.Category, error) {
	out, err := scanCategory(r.db.QueryRowContext(ctx, getCategorySQL, id))
	return out, mapErr("get category", err)
}

func (r *CategoryPostgres) FindByName(ctx context.Context, name string) (*model.Category, error) {
	out, err := scanCategory(r.db.QueryRowContext(ctx, getCategoryByName, name))
	return out, mapErr("get category by name", err)
}

func (r *CategoryPostgres) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, listCategoriesSQL)
	if err != nil {
		return nil, mapErr("list categories", err)
	}
	defer rows.Close()

	items := make([]model.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, mapErr("scan category", err)
		}
		items = append(items, *c)
	}
	return items, mapErr("list categories", rows.Err())
}

func (r *CategoryPostgres) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	out, err := scanCategory(r.db.QueryRowContext(ctx, updateCategorySQL, c.ID, c.Name, c.Image))
	return out, mapErr("update category", err)
}

func (r *CategoryPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteCategorySQL, id)
	if err != nil {
		return mapErr("delete category", err)
	}
	return affected("delete category", res)
}

func scanCategory(row rowScanner) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
