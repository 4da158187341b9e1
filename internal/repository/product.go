package repository

import (
	"context"

	"shopapi/internal/model"
)

// RangeOp is a numeric comparison used in product listing filters.
type RangeOp string

const (
	OpGTE RangeOp = "gte"
	OpGT  RangeOp = "gt"
	OpLTE RangeOp = "lte"
	OpLT  RangeOp = "lt"
)

// RangeFields are the numeric product fields usable in a RangeFilter.
var RangeFields = []string{"price", "quantity", "sold", "ratingsAverage"}

// IsRangeField reports whether field can be used in a RangeFilter.
func IsRangeField(field string) bool {
	for _, f := range RangeFields {
		if f == field {
			return true
		}
	}
	return false
}

// IsRangeOp reports whether op is a known comparison.
func IsRangeOp(op RangeOp) bool {
	switch op {
	case OpGTE, OpGT, OpLTE, OpLT:
		return true
	}
	return false
}

// RangeFilter compares a numeric product field with Value.
type RangeFilter struct {
	Field string
	Op    RangeOp
	Value float64
}

// ProductFilter narrows product listings. Keyword matches title or description.
type ProductFilter struct {
	Keyword    string
	CategoryID string
	Ranges     []RangeFilter
	// SortByTitle orders by title instead of newest first.
	SortByTitle bool
	SortDesc    bool
	PageQuery
}

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	// FindByID returns the product with category, sub-category and brand embedded.
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByTitle(ctx context.Context, title string) (*model.Product, error)
	List(ctx context.Context, f ProductFilter) (*PageResult[model.Product], error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}
