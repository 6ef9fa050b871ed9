package core

// MapCursor applies a transformation to every element of its parent on read.
type MapCursor[IN, OUT any] struct {
	chain[OUT]
	parent    Cursor[IN]
	transform func(IN) OUT
}

// Map creates a cursor that exposes transform(v) for each element v of parent.
// The result is computed on every Current call and never cached, so transform
// must be pure. Map is a function rather than a method because it changes the
// element type.
func Map[IN, OUT any](parent Cursor[IN], transform func(IN) OUT) *MapCursor[IN, OUT] {
	c := &MapCursor[IN, OUT]{parent: parent, transform: transform}
	c.chain = chain[OUT]{self: c}
	return c
}

func (c *MapCursor[IN, OUT]) Current() OUT  { return c.transform(c.parent.Current()) }
func (c *MapCursor[IN, OUT]) Advance()      { c.parent.Advance() }
func (c *MapCursor[IN, OUT]) HasMore() bool { return c.parent.HasMore() }
