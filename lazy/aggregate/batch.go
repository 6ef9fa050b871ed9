package aggregate

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Chunk creates an Adapter that groups consecutive elements into slices of
// size elements. The last chunk holds whatever is left and may be shorter.
// Each chunk is read from the parent when the cursor reaches it, and every
// chunk is a new slice the caller may keep.
// If size <= 0, panics.
func Chunk[T any](size int) core.Adapter[T, []T] {
	if size <= 0 {
		panic("aggregate: chunk size must be > 0")
	}
	return core.AdapterFunc[T, []T](func(c core.Cursor[T]) core.Cursor[[]T] {
		b := &chunkCursor[T]{parent: c, size: size}
		b.fill()
		return b
	})
}

type chunkCursor[T any] struct {
	parent  core.Cursor[T]
	size    int
	current []T
}

func (c *chunkCursor[T]) Current() []T  { return c.current }
func (c *chunkCursor[T]) HasMore() bool { return len(c.current) > 0 }
func (c *chunkCursor[T]) Advance()      { c.fill() }

func (c *chunkCursor[T]) fill() {
	var chunk []T
	for len(chunk) < c.size && c.parent.HasMore() {
		chunk = append(chunk, c.parent.Current())
		c.parent.Advance()
	}
	c.current = chunk
}

// Window creates an Adapter exposing sliding windows of size elements that
// move forward by step elements. Only full windows are exposed: Window(3, 1)
// over [1 2 3 4 5] gives [1 2 3], [2 3 4] and [3 4 5].
// Every window is a new slice the caller may keep.
// If size <= 0 or step <= 0, panics.
func Window[T any](size, step int) core.Adapter[T, []T] {
	if size <= 0 {
		panic("aggregate: window size must be > 0")
	}
	if step <= 0 {
		panic("aggregate: window step must be > 0")
	}
	return core.AdapterFunc[T, []T](func(c core.Cursor[T]) core.Cursor[[]T] {
		w := &windowCursor[T]{parent: c, size: size, step: step}
		w.fill(nil)
		return w
	})
}

type windowCursor[T any] struct {
	parent  core.Cursor[T]
	size    int
	step    int
	current []T
}

func (c *windowCursor[T]) Current() []T  { return c.current }
func (c *windowCursor[T]) HasMore() bool { return c.current != nil }

func (c *windowCursor[T]) Advance() {
	if c.step < c.size {
		c.fill(c.current[c.step:])
		return
	}
	for i := c.size; i < c.step && c.parent.HasMore(); i++ {
		c.parent.Advance()
	}
	c.fill(nil)
}

// fill starts a new window with a copy of kept and tops it up from the
// parent. A window that cannot be filled ends the cursor.
func (c *windowCursor[T]) fill(kept []T) {
	window := make([]T, len(kept), c.size)
	copy(window, kept)
	for len(window) < c.size && c.parent.HasMore() {
		window = append(window, c.parent.Current())
		c.parent.Advance()
	}
	if len(window) < c.size {
		c.current = nil
		return
	}
	c.current = window
}

// Partition drains c, splitting its elements by predicate.
func Partition[T any](c core.Cursor[T], predicate func(T) bool) (matched, unmatched []T) {
	matched, unmatched = []T{}, []T{}
	for c.HasMore() {
		v := c.Current()
		if predicate(v) {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
		c.Advance()
	}
	return matched, unmatched
}

// GroupBy drains c, grouping its elements by the key keyFn returns.
// Elements keep their order within a group.
func GroupBy[T any, K comparable](c core.Cursor[T], keyFn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for c.HasMore() {
		v := c.Current()
		k := keyFn(v)
		groups[k] = append(groups[k], v)
		c.Advance()
	}
	return groups
}
