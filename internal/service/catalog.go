package service

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"shopapi/internal/repository"
)

// checkNameFree fails with an invalid error when find locates a record called name.
func checkNameFree[T any](ctx context.Context, find func(context.Context, string) (*T, error), name, label string) error {
	_, err := find(ctx, name)
	switch {
	case err == nil:
		return invalidf("%s already exists", label)
	case isNotFound(err):
		return nil
	default:
		return errors.Wrapf(err, "find %s by name", strings.ToLower(label))
	}
}

// renameCheck validates a requested rename from current to next.
func renameCheck[T any](ctx context.Context, find func(context.Context, string) (*T, error), current, next, label string) error {
	if next == current {
		return invalidf("New %s name must differ from the current one", strings.ToLower(label))
	}
	return checkNameFree(ctx, find, next, label)
}

// writeErr classifies a failed create or update of a named record.
func writeErr(err error, op, label string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return invalidf("%s already exists", label)
	case errors.Is(err, repository.ErrNotFound):
		return notFoundf("%s not found", label)
	case errors.Is(err, repository.ErrReferenced):
		return invalidf("%s references a record that does not exist", label)
	default:
		return errors.Wrap(err, op)
	}
}

// deleteErr classifies a failed delete.
func deleteErr(err error, op, label string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFoundf("%s not found", label)
	case errors.Is(err, repository.ErrReferenced):
		return conflictf("%s is still in use", label)
	default:
		return errors.Wrap(err, op)
	}
}
