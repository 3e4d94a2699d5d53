package better

import (
	"errors"

	"github.com/ib-77/orpanic/pkg/rop"
)

// OptionOps is the explicit-panic view of a rop.Option.
type OptionOps[T any] struct {
	o rop.Option[T]
}

func Option[T any](o rop.Option[T]) OptionOps[T] {
	return OptionOps[T]{o: o}
}

// OrPanic returns the value, panicking if the Option is None.
func (o OptionOps[T]) OrPanic() T {
	if o.o.IsNone() {
		panic(errors.New("called `OrPanic()` on a `None` value"))
	}
	v, _ := o.o.Get()
	return v
}

// PanicWith returns the value, panicking with msg if the Option is None.
func (o OptionOps[T]) PanicWith(msg string) T {
	return o.o.Expect(msg)
}

func (o OptionOps[T]) PanicOr(def T) T {
	return o.o.UnwrapOr(def)
}

func (o OptionOps[T]) PanicOrElse(f func() T) T {
	return o.o.UnwrapOrElse(f)
}

func (o OptionOps[T]) PanicOrDefault() T {
	return o.o.UnwrapOrDefault()
}
