// Package prelude gathers the containers and their explicit-panic views
// behind a single import.
//
//	import . "github.com/ib-77/orpanic/pkg/rop/better/prelude"
//
//	n := R(Ok(42)).OrPanic()
//	s := O(None[string]()).PanicOr("fallback")
package prelude

import (
	"github.com/ib-77/orpanic/pkg/rop"
	"github.com/ib-77/orpanic/pkg/rop/better"
)

type (
	Result[T any]    = rop.Result[T]
	Option[T any]    = rop.Option[T]
	ResultOps[T any] = better.ResultOps[T]
	OptionOps[T any] = better.OptionOps[T]
	Accessor[T any]  = better.Accessor[T]
)

// R returns the explicit-panic view of r.
func R[T any](r Result[T]) ResultOps[T] {
	return better.Result(r)
}

// O returns the explicit-panic view of o.
func O[T any](o Option[T]) OptionOps[T] {
	return better.Option(o)
}

func Ok[T any](v T) Result[T] {
	return rop.Success(v)
}

func Err[T any](err error) Result[T] {
	return rop.Fail[T](err)
}

func Some[T any](v T) Option[T] {
	return rop.Some(v)
}

func None[T any]() Option[T] {
	return rop.None[T]()
}
