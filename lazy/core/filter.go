package core

// UntilCursor exposes its parent's elements up to, but excluding, the first
// one for which the stop predicate holds.
type UntilCursor[T any] struct {
	chain[T]
	parent Cursor[T]
	stop   func(T) bool
}

// Until creates a cursor that ends right before the first element of parent
// matching stop. The matching element is never exposed and never advanced past.
func Until[T any](parent Cursor[T], stop func(T) bool) *UntilCursor[T] {
	c := &UntilCursor[T]{parent: parent, stop: stop}
	c.chain = chain[T]{self: c}
	return c
}

// UntilEq is Until with a stop predicate of equality to value.
func UntilEq[T comparable](parent Cursor[T], value T) *UntilCursor[T] {
	return Until(parent, func(v T) bool { return v == value })
}

func (c *UntilCursor[T]) Current() T { return c.parent.Current() }

// Advance is a no-op once the stop element has been reached, so it is safe to
// call on an exhausted UntilCursor.
func (c *UntilCursor[T]) Advance() {
	if c.HasMore() {
		c.parent.Advance()
	}
}

func (c *UntilCursor[T]) HasMore() bool {
	return c.parent.HasMore() && !c.stop(c.parent.Current())
}

// FilterCursor exposes only the elements of its parent for which the keep
// predicate holds.
//
// Whenever the parent has more, its current element already satisfies keep.
// Construction and Advance both catch up eagerly to maintain this, which is
// what lets HasMore and Current forward to the parent unchanged.
type FilterCursor[T any] struct {
	chain[T]
	parent Cursor[T]
	keep   func(T) bool
}

// Filter creates a cursor over the elements of parent matching keep.
// Non-matching leading elements are skipped immediately, at construction.
// If nothing matches, the cursor ends up exhausted; that is not an error.
func Filter[T any](parent Cursor[T], keep func(T) bool) *FilterCursor[T] {
	c := &FilterCursor[T]{parent: parent, keep: keep}
	c.chain = chain[T]{self: c}
	if parent.HasMore() && !keep(parent.Current()) {
		c.Advance()
	}
	return c
}

// FilterNeq is Filter keeping every element not equal to value.
func FilterNeq[T comparable](parent Cursor[T], value T) *FilterCursor[T] {
	return Filter(parent, func(v T) bool { return v != value })
}

func (c *FilterCursor[T]) Current() T    { return c.parent.Current() }
func (c *FilterCursor[T]) HasMore() bool { return c.parent.HasMore() }

// Advance moves the parent once, then on to the next matching element.
func (c *FilterCursor[T]) Advance() {
	c.parent.Advance()
	for c.parent.HasMore() && !c.keep(c.parent.Current()) {
		c.parent.Advance()
	}
}
