package core

import "unicode/utf8"

// Position is a location inside some external linear range. A pair of
// positions, begin and end, delimits the elements a RangeCursor visits.
// P is the concrete position type itself, so Next and Equal stay
// statically typed.
type Position[T, P any] interface {
	// Value returns the element at this position.
	Value() T
	// Next returns the position one element further.
	Next() P
	// Equal reports whether both positions refer to the same location.
	Equal(P) bool
}

// RangeCursor is the source cursor: the leaf of every pipeline.
// It is the only component that touches the range's representation.
type RangeCursor[T any, P Position[T, P]] struct {
	chain[T]
	begin, end P
}

// FromRange creates a source cursor walking from begin up to, but excluding, end.
// The element type cannot be inferred from the positions, so callers name it:
//
//	c := core.FromRange[int](begin, end)
func FromRange[T any, P Position[T, P]](begin, end P) *RangeCursor[T, P] {
	c := &RangeCursor[T, P]{begin: begin, end: end}
	c.chain = chain[T]{self: c}
	return c
}

func (c *RangeCursor[T, P]) Current() T    { return c.begin.Value() }
func (c *RangeCursor[T, P]) Advance()      { c.begin = c.begin.Next() }
func (c *RangeCursor[T, P]) HasMore() bool { return !c.begin.Equal(c.end) }

// SlicePosition is a Position over a slice. Positions are only comparable
// when they were derived from the same slice.
type SlicePosition[T any] struct {
	items []T
	index int
}

// SliceBegin returns the position of the first element of items.
func SliceBegin[T any](items []T) SlicePosition[T] {
	return SlicePosition[T]{items: items}
}

// SliceEnd returns the position one past the last element of items.
func SliceEnd[T any](items []T) SlicePosition[T] {
	return SlicePosition[T]{items: items, index: len(items)}
}

func (p SlicePosition[T]) Value() T { return p.items[p.index] }

func (p SlicePosition[T]) Next() SlicePosition[T] {
	return SlicePosition[T]{items: p.items, index: p.index + 1}
}

func (p SlicePosition[T]) Equal(other SlicePosition[T]) bool {
	return p.index == other.index
}

// FromSlice creates a source cursor over the elements of items.
// The slice is not copied; it must not be modified while the pipeline is in use.
func FromSlice[T any](items []T) *RangeCursor[T, SlicePosition[T]] {
	return FromRange[T](SliceBegin(items), SliceEnd(items))
}

// RunePosition is a Position over the runes of a UTF-8 string, addressed by
// byte offset. Invalid encodings yield utf8.RuneError and advance one byte.
type RunePosition struct {
	s      string
	offset int
}

func (p RunePosition) Value() rune {
	r, _ := utf8.DecodeRuneInString(p.s[p.offset:])
	return r
}

func (p RunePosition) Next() RunePosition {
	_, size := utf8.DecodeRuneInString(p.s[p.offset:])
	return RunePosition{s: p.s, offset: p.offset + size}
}

func (p RunePosition) Equal(other RunePosition) bool {
	return p.offset == other.offset
}

// FromString creates a source cursor over the runes of s.
func FromString(s string) *RangeCursor[rune, RunePosition] {
	return FromRange[rune](RunePosition{s: s}, RunePosition{s: s, offset: len(s)})
}

// IntPosition is a Position over consecutive integers. Its value is itself.
type IntPosition int

func (p IntPosition) Value() int                   { return int(p) }
func (p IntPosition) Next() IntPosition            { return p + 1 }
func (p IntPosition) Equal(other IntPosition) bool { return p == other }

// Range creates a source cursor of integers from start to end (exclusive).
// If end is before start the cursor is empty.
func Range(start, end int) *RangeCursor[int, IntPosition] {
	if end < start {
		end = start
	}
	return FromRange[int](IntPosition(start), IntPosition(end))
}
