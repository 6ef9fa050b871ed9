package core

import "errors"

// ErrExhausted is the panic value raised by a guarded cursor when it is read
// or advanced past its end.
var ErrExhausted = errors.New("cursor is exhausted")

// GuardCursor checks the Current and Advance preconditions of its parent.
type GuardCursor[T any] struct {
	chain[T]
	parent Cursor[T]
}

// Guard wraps parent so that misuse fails fast: Current or Advance on an
// exhausted cursor panics with ErrExhausted instead of reading stale or
// out of range state. Meant for tests and debugging, never for flow control.
func Guard[T any](parent Cursor[T]) *GuardCursor[T] {
	c := &GuardCursor[T]{parent: parent}
	c.chain = chain[T]{self: c}
	return c
}

func (c *GuardCursor[T]) Current() T {
	if !c.parent.HasMore() {
		panic(ErrExhausted)
	}
	return c.parent.Current()
}

func (c *GuardCursor[T]) Advance() {
	if !c.parent.HasMore() {
		panic(ErrExhausted)
	}
	c.parent.Advance()
}

func (c *GuardCursor[T]) HasMore() bool { return c.parent.HasMore() }
