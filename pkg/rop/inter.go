package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

// Unwrapper is the extraction family shared by Result and Option.
type Unwrapper[T any] interface {
	// Unwrap returns the payload or panics
	Unwrap() T
	// Expect returns the payload or panics with msg
	Expect(msg string) T
	UnwrapOr(def T) T
	UnwrapOrDefault() T
}

// ErrUnwrapper extends Unwrapper with access to the failure payload.
type ErrUnwrapper[T any] interface {
	Unwrapper[T]
	UnwrapOrElse(f func(err error) T) T
	UnwrapErr() error
	ExpectErr(msg string) error
}

var (
	_ WithCancel[int]   = Result[int]{}
	_ ErrUnwrapper[int] = Result[int]{}
	_ Unwrapper[int]    = Option[int]{}
)
