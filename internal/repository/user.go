package repository

import (
	"context"

	"shopapi/internal/model"
)

// UserFilter narrows admin user listings. Name and Email match case-insensitive substrings.
type UserFilter struct {
	Name     string
	Email    string
	Role     model.Role
	SortDesc bool
	PageQuery
}

type UserRepository interface {
	// Create inserts u and returns the stored row. Duplicate emails yield ErrDuplicate.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, f UserFilter) (*PageResult[model.User], error)
	// Update writes every mutable column of u, including password and verification state.
	Update(ctx context.Context, u *model.User) (*model.User, error)
	Delete(ctx context.Context, id string) error
}
