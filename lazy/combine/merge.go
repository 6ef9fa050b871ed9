// Package combine provides cursors built from more than one parent:
// concatenation, zipping and interleaving. Like every adapter, they borrow
// their parents and advance them in place, one element at a time.
package combine

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Concat walks several cursors one after another.
// Elements of the second cursor are only read once the first is exhausted, etc.
func Concat[T any](cursors ...core.Cursor[T]) core.Cursor[T] {
	c := &concatCursor[T]{cursors: cursors}
	c.settle()
	return c
}

// concatCursor keeps idx on the first cursor that still has more, or at
// len(cursors) once all are exhausted.
type concatCursor[T any] struct {
	cursors []core.Cursor[T]
	idx     int
}

func (c *concatCursor[T]) Current() T    { return c.cursors[c.idx].Current() }
func (c *concatCursor[T]) HasMore() bool { return c.idx < len(c.cursors) }

func (c *concatCursor[T]) Advance() {
	c.cursors[c.idx].Advance()
	c.settle()
}

func (c *concatCursor[T]) settle() {
	for c.idx < len(c.cursors) && !c.cursors[c.idx].HasMore() {
		c.idx++
	}
}

// Pair holds one element of each zipped cursor.
type Pair[A, B any] struct {
	A A
	B B
}

// Zip combines two cursors pairwise.
// It ends as soon as either cursor is exhausted; extra elements of the
// longer one are left unread.
func Zip[A, B any](a core.Cursor[A], b core.Cursor[B]) core.Cursor[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{A: x, B: y} })
}

// ZipWith combines two cursors pairwise using a combiner function.
// Like Map, the combiner runs on every Current call and must be pure.
func ZipWith[A, B, C any](a core.Cursor[A], b core.Cursor[B], combiner func(A, B) C) core.Cursor[C] {
	return &zipCursor[A, B, C]{a: a, b: b, combine: combiner}
}

type zipCursor[A, B, C any] struct {
	a       core.Cursor[A]
	b       core.Cursor[B]
	combine func(A, B) C
}

func (c *zipCursor[A, B, C]) Current() C    { return c.combine(c.a.Current(), c.b.Current()) }
func (c *zipCursor[A, B, C]) HasMore() bool { return c.a.HasMore() && c.b.HasMore() }

func (c *zipCursor[A, B, C]) Advance() {
	c.a.Advance()
	c.b.Advance()
}

// Interleave takes one element from each cursor in turn.
// Exhausted cursors drop out of the rotation; the rest keep going.
func Interleave[T any](cursors ...core.Cursor[T]) core.Cursor[T] {
	c := &interleaveCursor[T]{cursors: cursors}
	c.settle(0)
	return c
}

// interleaveCursor keeps idx on a cursor that has more, or at -1 once every
// cursor is exhausted.
type interleaveCursor[T any] struct {
	cursors []core.Cursor[T]
	idx     int
}

func (c *interleaveCursor[T]) Current() T    { return c.cursors[c.idx].Current() }
func (c *interleaveCursor[T]) HasMore() bool { return c.idx >= 0 }

func (c *interleaveCursor[T]) Advance() {
	c.cursors[c.idx].Advance()
	c.settle(c.idx + 1)
}

// settle moves idx to the first cursor with more elements, starting at from
// and wrapping around.
func (c *interleaveCursor[T]) settle(from int) {
	n := len(c.cursors)
	for i := 0; i < n; i++ {
		j := (from + i) % n
		if c.cursors[j].HasMore() {
			c.idx = j
			return
		}
	}
	c.idx = -1
}

// IfEmpty returns source if it has elements, or alternative otherwise.
// Nothing is read from either cursor to decide.
func IfEmpty[T any](source, alternative core.Cursor[T]) core.Cursor[T] {
	if source.HasMore() {
		return source
	}
	return alternative
}

// SequenceEqual reports whether a and b produce the same elements in the same
// order. It stops pulling at the first difference.
func SequenceEqual[T comparable](a, b core.Cursor[T]) bool {
	return SequenceEqualBy(a, b, func(x, y T) bool { return x == y })
}

// SequenceEqualBy is SequenceEqual using a custom equality function.
func SequenceEqualBy[T any](a, b core.Cursor[T], equals func(T, T) bool) bool {
	for a.HasMore() && b.HasMore() {
		if !equals(a.Current(), b.Current()) {
			return false
		}
		a.Advance()
		b.Advance()
	}
	return !a.HasMore() && !b.HasMore()
}
