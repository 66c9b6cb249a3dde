package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := New(Conflict, "already registered")
	require.Equal(t, Conflict, KindOf(err))
	require.True(t, IsKind(err, Conflict))
	require.False(t, IsKind(err, Validation))
}

func TestKindOf_ForeignError(t *testing.T) {
	require.Equal(t, Internal, KindOf(errors.New("boom")))
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := New(CapacityExceeded, "event 3 is full")
	outer := fmt.Errorf("register: %w", inner)
	require.Equal(t, CapacityExceeded, KindOf(outer))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(Gateway, cause, "payment gateway error")

	require.ErrorIs(t, err, cause)
	require.Equal(t, Gateway, KindOf(err))
	require.Equal(t, "payment gateway error: connection refused", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(NotFoundOrForbidden, "fest %d not found", 42)
	require.Equal(t, "fest 42 not found", err.Error())
	require.Equal(t, NotFoundOrForbidden, KindOf(err))
}
