// Package observe provides pass-through cursors that report how a pipeline
// is driven: reads, advances and exhaustion.
//
// Observers never change what a cursor produces. They sit between two stages
// and forward every call, so they can be inserted anywhere in a pipeline.
package observe

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Hooks are callbacks run by a watched cursor. Any of them may be nil.
type Hooks[T any] struct {
	// OnRead runs with the value every time Current is called.
	OnRead func(T)
	// OnAdvance runs after every Advance.
	OnAdvance func()
	// OnExhausted runs once, the first time HasMore reports false.
	OnExhausted func()
}

// Watch wraps parent so that hooks run as it is driven.
func Watch[T any](parent core.Cursor[T], hooks Hooks[T]) *WatchCursor[T] {
	return &WatchCursor[T]{parent: parent, hooks: hooks}
}

// WatchWith creates an Adapter that applies Watch with hooks.
func WatchWith[T any](hooks Hooks[T]) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return Watch(c, hooks)
	})
}

// WatchCursor forwards to its parent and runs Hooks.
type WatchCursor[T any] struct {
	parent    core.Cursor[T]
	hooks     Hooks[T]
	exhausted bool
}

func (c *WatchCursor[T]) Current() T {
	v := c.parent.Current()
	if c.hooks.OnRead != nil {
		c.hooks.OnRead(v)
	}
	return v
}

func (c *WatchCursor[T]) Advance() {
	c.parent.Advance()
	if c.hooks.OnAdvance != nil {
		c.hooks.OnAdvance()
	}
}

func (c *WatchCursor[T]) HasMore() bool {
	more := c.parent.HasMore()
	if !more && !c.exhausted {
		c.exhausted = true
		if c.hooks.OnExhausted != nil {
			c.hooks.OnExhausted()
		}
	}
	return more
}

// CountingCursor counts how often it is read and advanced.
type CountingCursor[T any] struct {
	*WatchCursor[T]
	reads    int
	advances int
}

// Count wraps parent in a CountingCursor.
func Count[T any](parent core.Cursor[T]) *CountingCursor[T] {
	c := &CountingCursor[T]{}
	c.WatchCursor = Watch(parent, Hooks[T]{
		OnRead:    func(T) { c.reads++ },
		OnAdvance: func() { c.advances++ },
	})
	return c
}

// Reads returns how many times Current was called.
func (c *CountingCursor[T]) Reads() int { return c.reads }

// Advances returns how many times Advance was called.
func (c *CountingCursor[T]) Advances() int { return c.advances }
