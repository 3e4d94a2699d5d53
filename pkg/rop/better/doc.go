// Package better renames the unwrap family of rop.Result and rop.Option so
// that a call site says out loud when it can crash the program.
//
// Wrap a container in a view and call the accessor:
// - OrPanic/PanicWith: return the payload or panic
// - PanicOr/PanicOrElse/PanicOrDefault: return the payload or a fallback, never panic
// - OrPanicErr/PanicErrWith (Result only): return the error or panic
//
//	port := better.Result(rop.Of(strconv.Atoi(s))).PanicWith("bad port")
//
// Every accessor behaves exactly like the rop method it delegates to. Panics
// are never recovered here; use the PanicOr variants where a failure is
// expected.
package better
