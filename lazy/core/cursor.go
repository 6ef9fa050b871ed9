// package core defines the cursor contract, the source cursor that adapts an
// external linear range, and the family of adapters that wrap exactly one
// parent cursor and reinterpret what it produces.
// It provides the foundational building blocks for composing lazy pipelines:
// nothing is pulled from a source until a sink asks for the next value.
//
// User supplied functions (map transforms, filter and until predicates) must
// be pure. Map recomputes its function on every Current call and the
// predicate adapters re-evaluate their predicate whenever they inspect the
// parent, so a function with observable side effects may run more than once
// per element.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other lazy packages.
package core

import "iter"

// Cursor represents a position within a (possibly derived) view of a
// sequence. Every stage of a pipeline implements it: the source cursor at the
// leaf and each adapter stacked on top.
//
// Current and Advance are only defined while HasMore reports true. Calling
// them on an exhausted cursor is a caller fault, not a reported error.
type Cursor[T any] interface {
	// Current returns the element at the present position.
	Current() T
	// Advance moves forward by exactly one element of this cursor's own view.
	Advance()
	// HasMore reports whether a current element exists. It has no side
	// effects on the cursor and may be called any number of times.
	HasMore() bool
}

// Adapter represents a reusable pipeline stage that wraps a Cursor of type IN
// into a Cursor of type OUT. Adapters can be composed with Through and Chain
// in the lazy package.
// They answer the question: "What is done to the cursor's view?".
type Adapter[IN, OUT any] interface {
	Apply(Cursor[IN]) Cursor[OUT]
}

// AdapterFunc turns a plain wrapping function into an Adapter.
type AdapterFunc[IN, OUT any] func(Cursor[IN]) Cursor[OUT]

// Apply implements Adapter.
func (f AdapterFunc[IN, OUT]) Apply(c Cursor[IN]) Cursor[OUT] {
	return f(c)
}

// chain provides the fluent composition methods shared by every concrete
// cursor in this package. self always points at the embedding cursor.
type chain[T any] struct {
	self Cursor[T]
}

// Skip drops up to count leading elements. See Skip.
func (c chain[T]) Skip(count int) *SkipCursor[T] {
	return Skip(c.self, count)
}

// Take caps the number of produced elements at n. See Take.
func (c chain[T]) Take(n int) *TakeCursor[T] {
	return Take(c.self, n)
}

// Until stops before the first element matching stop. See Until.
func (c chain[T]) Until(stop func(T) bool) *UntilCursor[T] {
	return Until(c.self, stop)
}

// Filter keeps only the elements matching keep. See Filter.
func (c chain[T]) Filter(keep func(T) bool) *FilterCursor[T] {
	return Filter(c.self, keep)
}

// Collect drains the cursor into a slice. See Collect.
func (c chain[T]) Collect(opts ...Option) []T {
	return Collect(c.self, opts...)
}

// CopyInto drains the cursor into out. See CopyInto.
func (c chain[T]) CopyInto(out Output[T]) {
	CopyInto(c.self, out)
}

// All returns a single-use iterator over the remaining elements. See All.
func (c chain[T]) All() iter.Seq[T] {
	return All(c.self)
}
