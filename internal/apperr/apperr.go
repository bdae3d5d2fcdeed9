// Package apperr is the request-facing error taxonomy. Every failure a
// handler returns to a client is one of these kinds; the kind fixes the
// HTTP status and the message is safe to show to users.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindPolicy
)

type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Msg: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Msg: msg} }
func Policy(msg string) *Error       { return &Error{Kind: KindPolicy, Msg: msg} }

// Status maps an error to its HTTP status. Conflict and Policy map to
// 400 rather than 409, preserving the behavior existing clients expect.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindConflict, KindPolicy:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
