package repository

import (
	"context"

	"shopapi/internal/model"
)

// CategoryRepository persists categories. Delete yields ErrReferenced while
// sub-categories or products still point at the category.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) (*model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

// SubCategoryRepository returns sub-categories with their parent category embedded.
type SubCategoryRepository interface {
	Create(ctx context.Context, s *model.SubCategory) (*model.SubCategory, error)
	FindByID(ctx context.Context, id string) (*model.SubCategory, error)
	FindByName(ctx context.Context, name string) (*model.SubCategory, error)
	List(ctx context.Context) ([]model.SubCategory, error)
	Update(ctx context.Context, s *model.SubCategory) (*model.SubCategory, error)
	Delete(ctx context.Context, id string) error
}

type BrandRepository interface {
	Create(ctx context.Context, b *model.Brand) (*model.Brand, error)
	FindByID(ctx context.Context, id string) (*model.Brand, error)
	FindByName(ctx context.Context, name string) (*model.Brand, error)
	List(ctx context.Context) ([]model.Brand, error)
	Update(ctx context.Context, b *model.Brand) (*model.Brand, error)
	Delete(ctx context.Context, id string) error
}

type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) (*model.Supplier, error)
	FindByID(ctx context.Context, id string) (*model.Supplier, error)
	FindByName(ctx context.Context, name string) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) (*model.Supplier, error)
	Delete(ctx context.Context, id string) error
}
