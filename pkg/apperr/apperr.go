package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the HTTP layer and the tests.
type Kind int

const (
	Validation Kind = iota + 1
	Conflict
	CapacityExceeded
	NotFoundOrForbidden
	Forbidden
	Gateway
	Internal
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	case CapacityExceeded:
		return "capacity_exceeded"
	case NotFoundOrForbidden:
		return "not_found"
	case Forbidden:
		return "forbidden"
	case Gateway:
		return "gateway"
	case Internal:
		return "internal"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, msg string) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the Kind of err, or Internal for errors that did not
// come out of this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
