package core_test

import "github.com/lguimbarda/min-lazy/lazy/core"

// spy records how a cursor is driven by the stage above it.
type spy[T any] struct {
	parent   core.Cursor[T]
	reads    int
	advances int
}

func newSpy[T any](parent core.Cursor[T]) *spy[T] {
	return &spy[T]{parent: parent}
}

func (s *spy[T]) Current() T {
	s.reads++
	return s.parent.Current()
}

func (s *spy[T]) Advance() {
	s.advances++
	s.parent.Advance()
}

func (s *spy[T]) HasMore() bool { return s.parent.HasMore() }

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func isEven(n int) bool { return n%2 == 0 }
