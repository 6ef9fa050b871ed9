package filter

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// DistinctUntilChanged creates an Adapter that drops elements equal to the
// one exposed just before them. Only consecutive duplicates are removed.
func DistinctUntilChanged[T comparable]() core.Adapter[T, T] {
	return DistinctUntilChangedBy(func(v T) T { return v })
}

// DistinctUntilChangedBy is DistinctUntilChanged comparing the keys returned by keyFn.
func DistinctUntilChangedBy[T any, K comparable](keyFn func(T) K) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return &distinctCursor[T, K]{parent: c, key: keyFn}
	})
}

// distinctCursor holds no state; Advance keys the element it leaves and skips
// the parent past every element with the same key.
type distinctCursor[T any, K comparable] struct {
	parent core.Cursor[T]
	key    func(T) K
}

func (c *distinctCursor[T, K]) Current() T    { return c.parent.Current() }
func (c *distinctCursor[T, K]) HasMore() bool { return c.parent.HasMore() }

func (c *distinctCursor[T, K]) Advance() {
	last := c.key(c.parent.Current())
	c.parent.Advance()
	for c.parent.HasMore() && c.key(c.parent.Current()) == last {
		c.parent.Advance()
	}
}

// EveryNth creates an Adapter exposing the first element and then every
// n-th one after it (indices 0, n, 2n, ...). If n <= 1 every element is kept.
func EveryNth[T any](n int) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return &strideCursor[T]{parent: c, stride: max(n, 1)}
	})
}

type strideCursor[T any] struct {
	parent core.Cursor[T]
	stride int
}

func (c *strideCursor[T]) Current() T    { return c.parent.Current() }
func (c *strideCursor[T]) HasMore() bool { return c.parent.HasMore() }

// Advance moves the parent stride elements, or as far as it goes.
func (c *strideCursor[T]) Advance() {
	c.parent.Advance()
	for i := 1; i < c.stride && c.parent.HasMore(); i++ {
		c.parent.Advance()
	}
}
