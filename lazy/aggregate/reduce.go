// Package aggregate provides sinks that drive a cursor and fold what it
// produces into a single value.
//
// Sinks that can answer early (Any, All, None, First, Nth) stop pulling as
// soon as they know the result, leaving the cursor on the element that
// decided it.
package aggregate

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Numeric is a constraint for types that support arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Reduce combines all elements of c using reducer.
// The first element is the initial accumulator. If c is empty, ok is false.
func Reduce[T any](c core.Cursor[T], reducer func(acc, item T) T) (result T, ok bool) {
	if !c.HasMore() {
		return result, false
	}
	result = c.Current()
	c.Advance()
	for c.HasMore() {
		result = reducer(result, c.Current())
		c.Advance()
	}
	return result, true
}

// Fold combines all elements of c into an accumulator starting at initial.
// Unlike Reduce, Fold always has a result (initial if c is empty).
func Fold[T, R any](c core.Cursor[T], initial R, folder func(acc R, item T) R) R {
	acc := initial
	for c.HasMore() {
		acc = folder(acc, c.Current())
		c.Advance()
	}
	return acc
}

// Count drains c and returns how many elements it produced.
// Elements are advanced over without being read.
func Count[T any](c core.Cursor[T]) int {
	n := 0
	for c.HasMore() {
		n++
		c.Advance()
	}
	return n
}

// Sum adds up all elements of c. An empty cursor sums to zero.
func Sum[T Numeric](c core.Cursor[T]) T {
	return Fold(c, T(0), func(acc, item T) T { return acc + item })
}

// Average returns the arithmetic mean of the elements of c.
// If c is empty, ok is false.
func Average[T Numeric](c core.Cursor[T]) (avg float64, ok bool) {
	var sum float64
	n := 0
	for c.HasMore() {
		sum += float64(c.Current())
		n++
		c.Advance()
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Min returns the smallest element of c according to less.
// On ties the earliest element wins. If c is empty, ok is false.
func Min[T any](c core.Cursor[T], less func(a, b T) bool) (T, bool) {
	return Reduce(c, func(acc, item T) T {
		if less(item, acc) {
			return item
		}
		return acc
	})
}

// Max returns the largest element of c according to less.
// On ties the earliest element wins. If c is empty, ok is false.
func Max[T any](c core.Cursor[T], less func(a, b T) bool) (T, bool) {
	return Reduce(c, func(acc, item T) T {
		if less(acc, item) {
			return item
		}
		return acc
	})
}

// All reports whether every element of c satisfies predicate.
// It returns true for an empty cursor and stops at the first failure.
func All[T any](c core.Cursor[T], predicate func(T) bool) bool {
	for c.HasMore() {
		if !predicate(c.Current()) {
			return false
		}
		c.Advance()
	}
	return true
}

// Any reports whether at least one element of c satisfies predicate.
// It stops at the first match.
func Any[T any](c core.Cursor[T], predicate func(T) bool) bool {
	for c.HasMore() {
		if predicate(c.Current()) {
			return true
		}
		c.Advance()
	}
	return false
}

// None reports whether no element of c satisfies predicate.
func None[T any](c core.Cursor[T], predicate func(T) bool) bool {
	return !Any(c, predicate)
}

// First returns the current element of c without advancing it.
// If c is empty, ok is false.
func First[T any](c core.Cursor[T]) (first T, ok bool) {
	if !c.HasMore() {
		return first, false
	}
	return c.Current(), true
}

// Last drains c and returns the element it produced last.
// If c is empty, ok is false.
func Last[T any](c core.Cursor[T]) (last T, ok bool) {
	for c.HasMore() {
		last, ok = c.Current(), true
		c.Advance()
	}
	return last, ok
}

// Nth returns the element at index n (0-indexed), advancing c onto it.
// If n is negative or c has n or fewer elements, ok is false.
func Nth[T any](c core.Cursor[T], n int) (nth T, ok bool) {
	if n < 0 {
		return nth, false
	}
	for i := 0; i < n && c.HasMore(); i++ {
		c.Advance()
	}
	return First(c)
}
