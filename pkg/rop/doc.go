// Package rop defines the two containers the rest of the module works on:
// Result[T], which is either a success value or an error, and Option[T],
// which is either a value or nothing.
//
// Both carry the usual extraction family:
// - Unwrap/Expect: return the payload or panic
// - UnwrapOr/UnwrapOrElse/UnwrapOrDefault: return the payload or a fallback
// - UnwrapErr/ExpectErr (Result only): return the error or panic
//
// For call sites that should read as deliberately crashing, see package
// better.
package rop
