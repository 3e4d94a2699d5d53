package rop

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResult = errors.New("empty result")
	ErrCancelled   = errors.New("operation cancelled")
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
	hasResult bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		hasResult: true,
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	if err == nil {
		err = ErrCancelled
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		hasResult: false,
		id:        uuid.New(),
	}
}

// CancelFrom carries the failure of from over to a Result of another type.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		hasResult: false,
		id:        from.id,
	}
}

// Of builds a Result from a (value, error) pair as returned by most Go calls.
// Context cancellation and deadline errors produce a cancelled Result.
func Of[T any](r T, err error) Result[T] {
	if IsNil(err) {
		return Success(r)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

func (r Result[T]) Result() T {
	return r.result
}

// Err returns the failure payload. An empty Result reports ErrEmptyResult.
func (r Result[T]) Err() error {
	if r.IsEmpty() {
		return ErrEmptyResult
	}
	return r.err
}

// Errors returns the joined members of Err, or nil on success.
func (r Result[T]) Errors() []error {
	if r.isSuccess {
		return nil
	}
	return GetErrors(r.Err())
}

func (r Result[T]) Get() (T, error) {
	if r.isSuccess {
		return r.result, nil
	}
	var zero T
	return zero, r.Err()
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) HasResult() bool {
	return r.hasResult
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the success payload and panics on the failure variant.
func (r Result[T]) Unwrap() T {
	if !r.isSuccess {
		panic(fmt.Errorf("called `Unwrap()` on %s Result: %w", r.Variant(), r.Err()))
	}
	return r.result
}

// Expect returns the success payload and panics with msg followed by the
// failure error otherwise. The panic value wraps the failure error.
func (r Result[T]) Expect(msg string) T {
	if !r.isSuccess {
		panic(fmt.Errorf("%s: %w", msg, r.Err()))
	}
	return r.result
}

func (r Result[T]) UnwrapOr(def T) T {
	if !r.isSuccess {
		return def
	}
	return r.result
}

func (r Result[T]) UnwrapOrElse(f func(err error) T) T {
	if !r.isSuccess {
		return f(r.Err())
	}
	return r.result
}

func (r Result[T]) UnwrapOrDefault() T {
	if !r.isSuccess {
		var zero T
		return zero
	}
	return r.result
}

// UnwrapErr returns the failure error and panics on the success variant.
func (r Result[T]) UnwrapErr() error {
	if r.isSuccess {
		panic(fmt.Errorf("called `UnwrapErr()` on %s Result: %v", r.Variant(), r.result))
	}
	return r.Err()
}

func (r Result[T]) ExpectErr(msg string) error {
	if r.isSuccess {
		panic(fmt.Errorf("%s: %v", msg, r.result))
	}
	return r.Err()
}

// Variant names the active variant with its article, e.g. "a failed".
func (r Result[T]) Variant() string {
	switch {
	case r.isSuccess:
		return "a successful"
	case r.isCancel:
		return "a cancelled"
	case r.IsEmpty():
		return "an empty"
	default:
		return "a failed"
	}
}
