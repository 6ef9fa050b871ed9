// Package transform provides adapters that change what each element of a
// cursor looks like, or add elements around it.
package transform

import (
	"github.com/lguimbarda/min-lazy/lazy/combine"
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Map creates an Adapter applying fn to every element on read.
// See core.Map for the recompute-per-read semantics.
func Map[IN, OUT any](fn func(IN) OUT) core.Adapter[IN, OUT] {
	return core.AdapterFunc[IN, OUT](func(c core.Cursor[IN]) core.Cursor[OUT] {
		return core.Map(c, fn)
	})
}

// Tap creates an Adapter that calls fn with each element the first time it
// is read, and passes the element through unchanged.
// Elements that are skipped over without being read are never tapped.
func Tap[T any](fn func(T)) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return &tapCursor[T]{parent: c, fn: fn}
	})
}

type tapCursor[T any] struct {
	parent core.Cursor[T]
	fn     func(T)
	tapped bool
}

func (c *tapCursor[T]) HasMore() bool { return c.parent.HasMore() }

func (c *tapCursor[T]) Current() T {
	v := c.parent.Current()
	if !c.tapped {
		c.tapped = true
		c.fn(v)
	}
	return v
}

func (c *tapCursor[T]) Advance() {
	c.parent.Advance()
	c.tapped = false
}

// Indexed pairs an element with its 0-based position in the cursor it came from.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerate creates an Adapter that pairs every element with its index.
func Enumerate[T any]() core.Adapter[T, Indexed[T]] {
	return core.AdapterFunc[T, Indexed[T]](func(c core.Cursor[T]) core.Cursor[Indexed[T]] {
		return &enumerateCursor[T]{parent: c}
	})
}

type enumerateCursor[T any] struct {
	parent core.Cursor[T]
	index  int
}

func (c *enumerateCursor[T]) HasMore() bool { return c.parent.HasMore() }

func (c *enumerateCursor[T]) Current() Indexed[T] {
	return Indexed[T]{Index: c.index, Value: c.parent.Current()}
}

func (c *enumerateCursor[T]) Advance() {
	c.parent.Advance()
	c.index++
}

// Pairwise creates an Adapter that exposes pairs of consecutive elements.
// A cursor of n elements yields n-1 pairs; the first element is consumed
// when the adapter is applied.
func Pairwise[T any]() core.Adapter[T, [2]T] {
	return core.AdapterFunc[T, [2]T](func(c core.Cursor[T]) core.Cursor[[2]T] {
		p := &pairwiseCursor[T]{parent: c}
		if c.HasMore() {
			p.prev = c.Current()
			c.Advance()
		}
		return p
	})
}

type pairwiseCursor[T any] struct {
	parent core.Cursor[T]
	prev   T
}

func (c *pairwiseCursor[T]) Current() [2]T { return [2]T{c.prev, c.parent.Current()} }
func (c *pairwiseCursor[T]) HasMore() bool { return c.parent.HasMore() }

func (c *pairwiseCursor[T]) Advance() {
	c.prev = c.parent.Current()
	c.parent.Advance()
}

// Scan creates an Adapter exposing the running accumulation of the elements.
// The i-th element is fn applied to the accumulation of the first i-1
// elements (initial for the first) and the i-th element itself.
// Like Map, fn runs on every read and must be pure.
func Scan[T, A any](initial A, fn func(A, T) A) core.Adapter[T, A] {
	return core.AdapterFunc[T, A](func(c core.Cursor[T]) core.Cursor[A] {
		return &scanCursor[T, A]{parent: c, acc: initial, fn: fn}
	})
}

type scanCursor[T, A any] struct {
	parent core.Cursor[T]
	acc    A
	fn     func(A, T) A
}

func (c *scanCursor[T, A]) Current() A    { return c.fn(c.acc, c.parent.Current()) }
func (c *scanCursor[T, A]) HasMore() bool { return c.parent.HasMore() }

func (c *scanCursor[T, A]) Advance() {
	c.acc = c.fn(c.acc, c.parent.Current())
	c.parent.Advance()
}

// StartWith creates an Adapter that exposes values before the elements of
// the cursor. values is not copied.
func StartWith[T any](values ...T) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return combine.Concat[T](core.FromSlice(values), c)
	})
}

// EndWith creates an Adapter that exposes values after the cursor is exhausted.
// values is not copied.
func EndWith[T any](values ...T) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return combine.Concat[T](c, core.FromSlice(values))
	})
}

// DefaultIfEmpty creates an Adapter that exposes defaultValue alone if the
// cursor has no elements when the adapter is applied.
func DefaultIfEmpty[T any](defaultValue T) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return combine.IfEmpty[T](c, core.FromSlice([]T{defaultValue}))
	})
}
