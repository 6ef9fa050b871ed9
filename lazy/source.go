package lazy

import (
	"iter"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// FromSlice creates a Cursor over the elements of items.
// The slice is not copied and must outlive the pipeline unchanged.
func FromSlice[T any](items []T) *core.RangeCursor[T, core.SlicePosition[T]] {
	return core.FromSlice(items)
}

// FromRange creates a Cursor walking an external range from begin up to,
// but excluding, end.
func FromRange[T any, P Position[T, P]](begin, end P) *core.RangeCursor[T, P] {
	return core.FromRange[T](begin, end)
}

// FromString creates a Cursor over the runes of s.
func FromString(s string) *core.RangeCursor[rune, core.RunePosition] {
	return core.FromString(s)
}

// Range creates a Cursor of integers from start to end (exclusive).
func Range(start, end int) *core.RangeCursor[int, core.IntPosition] {
	return core.Range(start, end)
}

// FromIter creates a Cursor from a Go 1.23+ iterator sequence.
// The first element is pulled immediately. Close the cursor if it is
// abandoned before it runs out.
func FromIter[T any](seq iter.Seq[T]) *core.PullCursor[T] {
	return core.FromIter(seq)
}

// FromPull creates a Cursor from a pull function. stop may be nil.
func FromPull[T any](next func() (T, bool), stop func()) *core.PullCursor[T] {
	return core.FromPull(next, stop)
}

// Empty creates a Cursor with no elements.
func Empty[T any]() *core.RangeCursor[T, core.SlicePosition[T]] {
	return core.FromSlice[T](nil)
}

// Once creates a Cursor with a single element.
func Once[T any](value T) *core.RangeCursor[T, core.SlicePosition[T]] {
	return core.FromSlice([]T{value})
}

// Of creates a Cursor over the given values.
func Of[T any](values ...T) *core.RangeCursor[T, core.SlicePosition[T]] {
	return core.FromSlice(values)
}

// Repeat creates a Cursor producing value count times.
// A negative count produces nothing.
func Repeat[T any](value T, count int) *core.PullCursor[T] {
	return core.FromPull(func() (T, bool) {
		if count <= 0 {
			var zero T
			return zero, false
		}
		count--
		return value, true
	}, nil)
}

// Iterate creates an unbounded Cursor producing seed, next(seed),
// next(next(seed)), and so on. Bound it with Take or Until.
func Iterate[T any](seed T, next func(T) T) *core.PullCursor[T] {
	v, started := seed, false
	return core.FromPull(func() (T, bool) {
		if started {
			v = next(v)
		}
		started = true
		return v, true
	}, nil)
}
