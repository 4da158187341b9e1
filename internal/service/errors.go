// Package service implements the shop's use cases on top of the repository
// interfaces. Errors returned to callers are *Error values classified by Kind.
package service

import (
	"fmt"

	"github.com/go-faster/errors"

	"shopapi/internal/repository"
)

// Kind classifies a service error for the transport layer.
type Kind int

const (
	KindInvalid Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
)

// Error is a client-facing failure. Msg is safe to return to callers.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is matches any *Error of the same kind when target carries no message, so
// errors.Is(err, ErrNotFound) works for every not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == ""
}

var (
	ErrInvalid      = &Error{Kind: KindInvalid}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
)

var (
	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Msg: "Invalid credentials"}
	ErrAccountInactive    = &Error{Kind: KindForbidden, Msg: "Account is not active"}

	ErrCouponInactive  = &Error{Kind: KindInvalid, Msg: "Coupon is not active"}
	ErrCouponExpired   = &Error{Kind: KindInvalid, Msg: "Coupon has expired"}
	ErrCouponExhausted = &Error{Kind: KindInvalid, Msg: "Coupon usage limit reached"}
	ErrCouponUsed      = &Error{Kind: KindInvalid, Msg: "You have already used this coupon"}
)

func invalidf(format string, args ...any) error {
	return &Error{Kind: KindInvalid, Msg: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func forbiddenf(format string, args ...any) error {
	return &Error{Kind: KindForbidden, Msg: fmt.Sprintf(format, args...)}
}

// notFoundOr maps repository.ErrNotFound to a not-found error with msg and
// wraps anything else with op.
func notFoundOr(err error, op, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &Error{Kind: KindNotFound, Msg: msg}
	}
	return errors.Wrap(err, op)
}

// isNotFound reports whether a repository lookup found nothing.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// Page is a slice of results plus the total matching count.
type Page[T any] struct {
	Items []T
	Total int
}
