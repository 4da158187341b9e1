package postgres

import (
	"context"
	"database/sql"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

const (
	subCategorySelect = `SELECT s.id, s.name, s.category_id, c.name, c.image, s.created_at, s.updated_at
		FROM sub_categories s JOIN categories c ON c.id = s.category_id`

	insertSubCategorySQL = `INSERT INTO sub_categories (name, category_id) VALUES ($1, $2) RETURNING id`
	getSubCategorySQL    = subCategorySelect + ` WHERE s.id = $1`
	getSubCategoryByName = subCategorySelect + ` WHERE s.name = $1`
	listSubCategoriesSQL = subCategorySelect + ` ORDER BY s.created_at DESC, s.id DESC`
	updateSubCategorySQL = `UPDATE sub_categories SET name = $2, category_id = $3, updated_at = now() WHERE id = $1`
	deleteSubCategorySQL = `DELETE FROM sub_categories WHERE id = $1`
)

type SubCategoryPostgres struct {
	db *sql.DB
}

func NewSubCategoryPostgres(db *sql.DB) *SubCategoryPostgres {
	return &SubCategoryPostgres{db: db}
}

var _ repository.SubCategoryRepository = (*SubCategoryPostgres)(nil)

// Create inserts the row and re-reads it so the parent category is embedded.
func (r *SubCategoryPostgres) Create(ctx context.Context, s *model.SubCategory) (*model.SubCategory, error) {
	var id string
	if err := r.db.QueryRowContext(ctx, insertSubCategorySQL, s.Name, s.CategoryID).Scan(&id); err != nil {
		return nil, mapErr("insert sub-category", err)
	}
	return r.FindByID(ctx, id)
}

func (r *SubCategoryPostgres) FindByID(ctx context.Context, id string) (*model.SubCategory, error) {
	out, err := scanSubCategory(r.db.QueryRowContext(ctx, getSubCategorySQL, id))
	return out, mapErr("get sub-category", err)
}

func (r *SubCategoryPostgres) FindByName(ctx context.Context, name string) (*model.SubCategory, error) {
	out, err := scanSubCategory(r.db.QueryRowContext(ctx, getSubCategoryByName, name))
	return out, mapErr("get sub-category by name", err)
}

func (r *SubCategoryPostgres) List(ctx context.Context) ([]model.SubCategory, error) {
	rows, err := r.db.QueryContext(ctx, listSubCategoriesSQL)
	if err != nil {
		return nil, mapErr("list sub-categories", err)
	}
	defer rows.Close()

	items := make([]model.SubCategory, 0)
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			return nil, mapErr("scan sub-category", err)
		}
		items = append(items, *s)
	}
	return items, mapErr("list sub-categories", rows.Err())
}

func (r *SubCategoryPostgres) Update(ctx context.Context, s *model.SubCategory) (*model.SubCategory, error) {
	res, err := r.db.ExecContext(ctx, updateSubCategorySQL, s.ID, s.Name, s.CategoryID)
	if err != nil {
		return nil, mapErr("update sub-category", err)
	}
	if err := affected("update sub-category", res); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, s.ID)
}

func (r *SubCategoryPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteSubCategorySQL, id)
	if err != nil {
		return mapErr("delete sub-category", err)
	}
	return affected("delete sub-category", res)
}

func scanSubCategory(row rowScanner) (*model.SubCategory, error) {
	var (
		s   model.SubCategory
		ref model.Ref
	)
	if err := row.Scan(&s.ID, &s.Name, &s.CategoryID, &ref.Name, &ref.Image, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	ref.ID = s.CategoryID
	s.Category = &ref
	return &s, nil
}
