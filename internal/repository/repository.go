// Package repository contains data access abstractions. Implementations live in
// subpackages (postgres) and contain no business rules.
package repository

import "github.com/go-faster/errors"

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced is returned when a row is still referenced by another table,
	// or a referenced row does not exist.
	ErrReferenced = errors.New("record referenced")
	// ErrInsufficientStock is returned when a conditional stock decrement matches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStateChanged is returned when a conditional status update matches no row.
	ErrStateChanged = errors.New("record state changed")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
