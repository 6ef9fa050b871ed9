package aggregate

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Find returns the first element of c matching predicate, leaving c on it.
// If no element matches, ok is false and c is exhausted.
func Find[T any](c core.Cursor[T], predicate func(T) bool) (found T, ok bool) {
	for c.HasMore() {
		if v := c.Current(); predicate(v) {
			return v, true
		}
		c.Advance()
	}
	return found, false
}

// FindIndex returns the index of the first element of c matching predicate,
// or -1 if there is none.
func FindIndex[T any](c core.Cursor[T], predicate func(T) bool) int {
	for i := 0; c.HasMore(); i++ {
		if predicate(c.Current()) {
			return i
		}
		c.Advance()
	}
	return -1
}

// IndexOf returns the index of the first element of c equal to value,
// or -1 if there is none.
func IndexOf[T comparable](c core.Cursor[T], value T) int {
	return FindIndex(c, func(v T) bool { return v == value })
}

// Contains reports whether c produces value. It stops at the first match.
func Contains[T comparable](c core.Cursor[T], value T) bool {
	return IndexOf(c, value) >= 0
}

// CountIf drains c and returns how many elements match predicate.
func CountIf[T any](c core.Cursor[T], predicate func(T) bool) int {
	return Fold(c, 0, func(n int, v T) int {
		if predicate(v) {
			return n + 1
		}
		return n
	})
}

// IsEmpty reports whether c has no elements left. Nothing is read.
func IsEmpty[T any](c core.Cursor[T]) bool {
	return !c.HasMore()
}
