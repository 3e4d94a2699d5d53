package rop

import "errors"

// Option holds either a value (Some) or nothing (None). The zero value is
// None.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:   v,
		present: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair builds an Option from a comma-ok pair such as a map lookup.
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPointer dereferences p, treating nil as None.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// ToResult turns None into a failed Result carrying err.
func (o Option[T]) ToResult(err error) Result[T] {
	if !o.present {
		return Fail[T](err)
	}
	return Success(o.value)
}

// Unwrap returns the value and panics on None.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(errors.New("called `Unwrap()` on a `None` value"))
	}
	return o.value
}

// Expect returns the value and panics with msg on None.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(errors.New(msg))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.present {
		return f()
	}
	return o.value
}

func (o Option[T]) UnwrapOrDefault() T {
	if !o.present {
		var zero T
		return zero
	}
	return o.value
}
