package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type pathError struct{ path string }

func (e *pathError) Error() string { return "bad path " + e.path }

func TestSuccess_HoldsValue(t *testing.T) {
	t.Parallel()
	r := Success(42)

	require.True(t, r.IsSuccess())
	require.False(t, r.IsFailure())
	require.True(t, r.HasResult())
	require.Equal(t, 42, r.Result())
	require.NoError(t, r.Err())
	require.NotEqual(t, uuid.Nil, r.Id())
	require.False(t, r.CreatedAt().IsZero())
}

func TestFail_HoldsError(t *testing.T) {
	t.Parallel()
	issue := errors.New("disk full")
	r := Fail[int](issue)

	require.True(t, r.IsFailure())
	require.False(t, r.IsCancel())
	require.False(t, r.HasResult())
	require.ErrorIs(t, r.Err(), issue)

	v, err := r.Get()
	require.Zero(t, v)
	require.ErrorIs(t, err, issue)
}

func TestCancel_NilErrorDefaultsToErrCancelled(t *testing.T) {
	t.Parallel()
	r := Cancel[string](nil)

	require.True(t, r.IsCancel())
	require.True(t, r.IsFailure())
	require.ErrorIs(t, r.Err(), ErrCancelled)
}

func TestCancelFrom_KeepsIdentityAndError(t *testing.T) {
	t.Parallel()
	from := Cancel[int](context.Canceled)
	to := CancelFrom[int, string](from)

	require.True(t, to.IsCancel())
	require.Equal(t, from.Id(), to.Id())
	require.Equal(t, from.CreatedAt(), to.CreatedAt())
	require.ErrorIs(t, to.Err(), context.Canceled)
}

func TestEmptyResult_IsFailureWithErrEmptyResult(t *testing.T) {
	t.Parallel()
	var r Result[int]

	require.True(t, r.IsEmpty())
	require.True(t, r.IsFailure())
	require.ErrorIs(t, r.Err(), ErrEmptyResult)
	require.Equal(t, "an empty", r.Variant())
}

func TestOf(t *testing.T) {
	t.Parallel()
	var typedNil *pathError

	tests := []struct {
		name      string
		err       error
		isSuccess bool
		isCancel  bool
	}{
		{name: "nil error", err: nil, isSuccess: true},
		{name: "typed nil error", err: typedNil, isSuccess: true},
		{name: "plain error", err: errors.New("boom")},
		{name: "deadline", err: fmt.Errorf("fetch: %w", context.DeadlineExceeded), isCancel: true},
		{name: "canceled", err: context.Canceled, isCancel: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := Of(7, tt.err)
			require.Equal(t, tt.isSuccess, r.IsSuccess())
			require.Equal(t, tt.isCancel, r.IsCancel())
			if tt.isSuccess {
				require.Equal(t, 7, r.Result())
			}
		})
	}
}

func TestErrors_FlattensJoined(t *testing.T) {
	t.Parallel()
	e1, e2 := errors.New("one"), errors.New("two")

	require.Nil(t, Success(1).Errors())
	require.Equal(t, []error{e1}, Fail[int](e1).Errors())
	require.Equal(t, []error{e1, e2}, Fail[int](errors.Join(e1, e2)).Errors())
}

func TestUnwrap(t *testing.T) {
	t.Parallel()
	require.Equal(t, 3, Success(3).Unwrap())
	require.PanicsWithError(t, "called `Unwrap()` on a failed Result: boom", func() {
		Fail[int](errors.New("boom")).Unwrap()
	})
	require.PanicsWithError(t, "called `Unwrap()` on a cancelled Result: context canceled", func() {
		Cancel[int](context.Canceled).Unwrap()
	})
}

func TestExpect_WrapsFailureError(t *testing.T) {
	t.Parallel()
	issue := errors.New("disk full")

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, issue)
		require.Equal(t, "failed to read config: disk full", err.Error())
	}()
	Fail[int](issue).Expect("failed to read config")
}

func TestUnwrapOrFamily(t *testing.T) {
	t.Parallel()
	issue := errors.New("boom")
	ok, bad := Success(5), Fail[int](issue)

	require.Equal(t, 5, ok.UnwrapOr(9))
	require.Equal(t, 9, bad.UnwrapOr(9))

	require.Equal(t, 5, ok.UnwrapOrElse(func(error) int { return 9 }))
	require.Equal(t, 4, bad.UnwrapOrElse(func(err error) int { return len(err.Error()) }))

	require.Equal(t, 5, ok.UnwrapOrDefault())
	require.Equal(t, 0, bad.UnwrapOrDefault())
}

func TestUnwrapErr(t *testing.T) {
	t.Parallel()
	issue := errors.New("boom")

	require.ErrorIs(t, Fail[int](issue).UnwrapErr(), issue)
	require.ErrorIs(t, Fail[int](issue).ExpectErr("unused"), issue)
	require.PanicsWithError(t, "called `UnwrapErr()` on a successful Result: 42", func() {
		_ = Success(42).UnwrapErr()
	})
	require.PanicsWithError(t, "expected a failure: 42", func() {
		_ = Success(42).ExpectErr("expected a failure")
	})
}
