package better

import (
	"fmt"

	"github.com/ib-77/orpanic/pkg/rop"
)

// ResultOps is the explicit-panic view of a rop.Result.
type ResultOps[T any] struct {
	r rop.Result[T]
}

func Result[T any](r rop.Result[T]) ResultOps[T] {
	return ResultOps[T]{r: r}
}

// OrPanic returns the success value.
//
// It panics if r is a failure; the panic value wraps r's error.
func (o ResultOps[T]) OrPanic() T {
	if o.r.IsFailure() {
		panic(fmt.Errorf("called `OrPanic()` on %s Result: %w", o.r.Variant(), o.r.Err()))
	}
	return o.r.Result()
}

// PanicWith returns the success value, or panics with "msg: err".
func (o ResultOps[T]) PanicWith(msg string) T {
	return o.r.Expect(msg)
}

func (o ResultOps[T]) PanicOr(def T) T {
	return o.r.UnwrapOr(def)
}

// PanicOrElse returns the success value or computes one from the error.
func (o ResultOps[T]) PanicOrElse(f func(err error) T) T {
	return o.r.UnwrapOrElse(f)
}

// PanicOrDefault returns the success value or the zero value of T.
func (o ResultOps[T]) PanicOrDefault() T {
	return o.r.UnwrapOrDefault()
}

// OrPanicErr returns the error of a failed Result.
//
// It panics if r is a success; the message includes the success value.
func (o ResultOps[T]) OrPanicErr() error {
	if o.r.IsSuccess() {
		panic(fmt.Errorf("called `OrPanicErr()` on %s Result: %v", o.r.Variant(), o.r.Result()))
	}
	return o.r.Err()
}

// PanicErrWith returns the error of a failed Result, or panics with
// "msg: value".
func (o ResultOps[T]) PanicErrWith(msg string) error {
	return o.r.ExpectErr(msg)
}
