// Package lazy provides composable lazy cursors for Go: build a pipeline of
// deferred stages (skip, take, map, until, filter) over any finite linear
// source, and only pull elements when a sink asks for the next one.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The lazy/core subpackage contains the
// concrete cursor types, which are rarely needed by name.
//
//	evens := lazy.FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}).Filter(isEven)
//	lazy.UntilEq(evens, 6).Collect() // [0 2 4]
//
// Pipelines are single-pass and single-consumer. Every stage borrows its
// parent and advances it in place, so a pipeline must not be shared between
// goroutines, and a consumed pipeline cannot be restarted.
package lazy

import (
	"iter"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Type aliases for core abstractions.
// These allow users to work with the library without importing core directly.
type (
	// Cursor is a position within a (possibly derived) view of a sequence.
	Cursor[T any] = core.Cursor[T]

	// Adapter wraps a Cursor of type IN into a Cursor of type OUT.
	Adapter[IN, OUT any] = core.Adapter[IN, OUT]

	// AdapterFunc turns a plain wrapping function into an Adapter.
	AdapterFunc[IN, OUT any] = core.AdapterFunc[IN, OUT]

	// Position is a location inside an external linear range.
	Position[T, P any] = core.Position[T, P]

	// Output is an external output position written by CopyInto.
	Output[T any] = core.Output[T]

	// OutputFunc turns a plain function into an Output.
	OutputFunc[T any] = core.OutputFunc[T]

	// Option configures a sink.
	Option = core.Option

	// ErrPanic wraps a panic recovered by TryCollect.
	ErrPanic = core.ErrPanic
)

// ErrExhausted is the panic value of a guarded cursor used past its end.
var ErrExhausted = core.ErrExhausted

// Adapter constructors.

// Skip drops up to count leading elements of parent, right away.
func Skip[T any](parent Cursor[T], count int) *core.SkipCursor[T] {
	return core.Skip(parent, count)
}

// Take caps parent at n produced elements.
func Take[T any](parent Cursor[T], n int) *core.TakeCursor[T] {
	return core.Take(parent, n)
}

// Map transforms every element of parent on read.
func Map[IN, OUT any](parent Cursor[IN], transform func(IN) OUT) *core.MapCursor[IN, OUT] {
	return core.Map(parent, transform)
}

// Until stops before the first element of parent matching stop.
func Until[T any](parent Cursor[T], stop func(T) bool) *core.UntilCursor[T] {
	return core.Until(parent, stop)
}

// UntilEq stops before the first element of parent equal to value.
func UntilEq[T comparable](parent Cursor[T], value T) *core.UntilCursor[T] {
	return core.UntilEq(parent, value)
}

// Filter keeps only the elements of parent matching keep.
func Filter[T any](parent Cursor[T], keep func(T) bool) *core.FilterCursor[T] {
	return core.Filter(parent, keep)
}

// FilterNeq keeps only the elements of parent not equal to value.
func FilterNeq[T comparable](parent Cursor[T], value T) *core.FilterCursor[T] {
	return core.FilterNeq(parent, value)
}

// Guard makes misuse of parent fail fast with ErrExhausted.
func Guard[T any](parent Cursor[T]) *core.GuardCursor[T] {
	return core.Guard(parent)
}

// Terminal operations.

// Collect drains c into a new slice.
func Collect[T any](c Cursor[T], opts ...Option) []T {
	return core.Collect(c, opts...)
}

// TryCollect drains c into a new slice, turning a panic into an ErrPanic.
func TryCollect[T any](c Cursor[T], opts ...Option) ([]T, error) {
	return core.TryCollect(c, opts...)
}

// CopyInto drains c into out.
func CopyInto[T any](c Cursor[T], out Output[T]) {
	core.CopyInto(c, out)
}

// IntoSlice returns an Output filling dst from index 0.
func IntoSlice[T any](dst []T) *core.SliceOutput[T] {
	return core.IntoSlice(dst)
}

// All returns a single-use iterator over the remaining elements of c.
func All[T any](c Cursor[T]) iter.Seq[T] {
	return core.All(c)
}

// WithCapacity preallocates room for n elements in Collect.
func WithCapacity(n int) Option {
	return core.WithCapacity(n)
}
