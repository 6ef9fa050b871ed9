package core

import "iter"

// PullCursor adapts a pull function (see iter.Pull) to the cursor contract.
// It holds exactly one pending element: the one Current returns.
type PullCursor[T any] struct {
	chain[T]
	next    func() (T, bool)
	stop    func()
	current T
	ok      bool
}

// FromPull creates a source cursor over next. The first element is pulled at
// construction so that HasMore can answer without side effects. stop may be
// nil; otherwise it is called once, when the cursor runs out or is closed.
func FromPull[T any](next func() (T, bool), stop func()) *PullCursor[T] {
	c := &PullCursor[T]{next: next, stop: stop}
	c.chain = chain[T]{self: c}
	c.pull()
	return c
}

// FromIter creates a source cursor over a push iterator by converting it with
// iter.Pull. Close the cursor if it is abandoned before it runs out, to
// release the iterator.
func FromIter[T any](seq iter.Seq[T]) *PullCursor[T] {
	next, stop := iter.Pull(seq)
	return FromPull(next, stop)
}

func (c *PullCursor[T]) Current() T    { return c.current }
func (c *PullCursor[T]) Advance()      { c.pull() }
func (c *PullCursor[T]) HasMore() bool { return c.ok }

// Close releases the underlying iterator. The cursor is exhausted afterwards.
// It is safe to call more than once.
func (c *PullCursor[T]) Close() error {
	c.ok = false
	var zero T
	c.current = zero
	c.release()
	return nil
}

func (c *PullCursor[T]) pull() {
	c.current, c.ok = c.next()
	if !c.ok {
		c.release()
	}
}

func (c *PullCursor[T]) release() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}
