package postgres

import (
	"context"
	"database/sql"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

const (
	supplierColumns = `id, name, website, created_at, updated_at`

	insertSupplierSQL = `INSERT INTO suppliers (name, website) VALUES ($1, $2) RETURNING ` + supplierColumns
	getSupplierSQL    = `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	getSupplierByName = `SELECT ` + supplierColumns + ` FROM suppliers WHERE name = $1`
	listSuppliersSQL  = `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at DESC, id DESC`
	updateSupplierSQL = `UPDATE suppliers SET name = $2, website = $3, updated_at = now() WHERE id = $1 RETURNING ` + supplierColumns
	deleteSupplierSQL = `DELETE FROM suppliers WHERE id = $1`
)

type SupplierPostgres struct {
	db *sql.DB
}

func NewSupplierPostgres(db *sql.DB) *SupplierPostgres {
	return &SupplierPostgres{db: db}
}

var _ repository.SupplierRepository = (*SupplierPostgres)(nil)

func (r *SupplierPostgres) Create(ctx context.Context, s *model.Supplier) (*model.Supplier, error) {
	out, err := scanSupplier(r.db.QueryRowContext(ctx, insertSupplierSQL, s.Name, s.Website))
	return out, mapErr("insert supplier", err)
}

func (r *SupplierPostgres) FindByID(ctx context.Context, id string) (*model.Supplier, error) {
	out, err := scanSupplier(r.db.QueryRowContext(ctx, getSupplierSQL, id))
	return out, mapErr("get supplier", err)
}

func (r *SupplierPostgres) FindByName(ctx context.Context, name string) (*model.Supplier, error) {
	out, err := scanSupplier(r.db.QueryRowContext(ctx, getSupplierByName, name))
	return out, mapErr("get supplier by name", err)
}

func (r *SupplierPostgres) List(ctx context.Context) ([]model.Supplier, error) {
	rows, err := r.db.QueryContext(ctx, listSuppliersSQL)
	if err != nil {
		return nil, mapErr("list suppliers", err)
	}
	defer rows.Close()

	items := make([]model.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, mapErr("scan supplier", err)
		}
		items = append(items, *s)
	}
	return items, mapErr("list suppliers", rows.Err())
}

func (r *SupplierPostgres) Update(ctx context.Context, s *model.Supplier) (*model.Supplier, error) {
	out, err := scanSupplier(r.db.QueryRowContext(ctx, updateSupplierSQL, s.ID, s.Name, s.Website))
	return out, mapErr("update supplier", err)
}

func (r *SupplierPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteSupplierSQL, id)
	if err != nil {
		return mapErr("delete supplier", err)
	}
	return affected("delete supplier", res)
}

func scanSupplier(row rowScanner) (*model.Supplier, error) {
	var s model.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.Website, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
