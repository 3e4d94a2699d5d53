package better

// Accessor is the accessor set shared by ResultOps and OptionOps. It is a
// static contract: both views are checked against it at compile time and
// nothing in this package dispatches through it.
type Accessor[T any] interface {
	OrPanic() T
	PanicWith(msg string) T
	PanicOr(def T) T
	PanicOrDefault() T
}

var (
	_ Accessor[int] = ResultOps[int]{}
	_ Accessor[int] = OptionOps[int]{}
)
