package core

import (
	"errors"
	"io"
)

// ReadCursor is a source cursor over a fallible collaborator such as a
// reader, a decoder or a result set. It holds exactly one pending element.
//
// The first error other than io.EOF ends the cursor: HasMore turns false and
// Err reports it. Errors never travel through adapters, so check Err after
// the sink returns.
type ReadCursor[T any] struct {
	chain[T]
	read    func() (T, error)
	close   func() error
	current T
	ok      bool
	err     error
}

// FromRead creates a source cursor over read. read returns io.EOF once there
// is nothing left. The first element is read at construction.
// closer may be nil; otherwise it is called once, when the cursor runs out
// or fails, or on Close.
func FromRead[T any](read func() (T, error), closer func() error) *ReadCursor[T] {
	c := &ReadCursor[T]{read: read, close: closer}
	c.chain = chain[T]{self: c}
	c.pull()
	return c
}

func (c *ReadCursor[T]) Current() T    { return c.current }
func (c *ReadCursor[T]) Advance()      { c.pull() }
func (c *ReadCursor[T]) HasMore() bool { return c.ok }

// Err returns the error that ended the cursor, or nil if it ran out normally
// or is still going.
func (c *ReadCursor[T]) Err() error { return c.err }

// Close releases the collaborator and exhausts the cursor.
// It is safe to call more than once; later calls return nil.
func (c *ReadCursor[T]) Close() error {
	c.ok = false
	var zero T
	c.current = zero
	return c.release()
}

func (c *ReadCursor[T]) pull() {
	v, err := c.read()
	if err != nil {
		c.ok = false
		var zero T
		c.current = zero
		if !errors.Is(err, io.EOF) {
			c.err = err
		}
		if cerr := c.release(); cerr != nil && c.err == nil {
			c.err = cerr
		}
		return
	}
	c.current, c.ok = v, true
}

func (c *ReadCursor[T]) release() error {
	if c.close == nil {
		return nil
	}
	closeFn := c.close
	c.close = nil
	return closeFn()
}
