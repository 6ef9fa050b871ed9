package core

// SkipCursor drops a fixed number of leading elements of its parent.
// All the work happens at construction; afterwards it forwards verbatim.
type SkipCursor[T any] struct {
	chain[T]
	parent Cursor[T]
}

// Skip advances parent count times right away, stopping early if parent runs
// out. Skipping past the end is not an error, it leaves the cursor exhausted.
// A negative count skips nothing.
func Skip[T any](parent Cursor[T], count int) *SkipCursor[T] {
	for i := 0; i < count && parent.HasMore(); i++ {
		parent.Advance()
	}
	c := &SkipCursor[T]{parent: parent}
	c.chain = chain[T]{self: c}
	return c
}

func (c *SkipCursor[T]) Current() T    { return c.parent.Current() }
func (c *SkipCursor[T]) Advance()      { c.parent.Advance() }
func (c *SkipCursor[T]) HasMore() bool { return c.parent.HasMore() }

// TakeCursor caps its parent at a fixed number of produced elements.
type TakeCursor[T any] struct {
	chain[T]
	parent    Cursor[T]
	remaining int
}

// Take creates a cursor that produces at most n elements of parent.
// If n <= 0 the cursor is exhausted from the start, whatever parent holds.
func Take[T any](parent Cursor[T], n int) *TakeCursor[T] {
	c := &TakeCursor[T]{parent: parent, remaining: max(n, 0)}
	c.chain = chain[T]{self: c}
	return c
}

func (c *TakeCursor[T]) Current() T { return c.parent.Current() }

// Advance spends one element of the budget. The parent is only advanced while
// budget is left, so nothing past the limit is ever pulled from it.
func (c *TakeCursor[T]) Advance() {
	c.remaining--
	if c.remaining > 0 {
		c.parent.Advance()
	}
}

func (c *TakeCursor[T]) HasMore() bool {
	return c.parent.HasMore() && c.remaining > 0
}
