// Package filter provides reusable adapters that select which elements of a
// cursor are exposed: prefixes, limits, predicates and sampling.
//
// Every function returns a core.Adapter, to be applied with lazy.Pipe,
// lazy.Chain or adapter.Apply. Adapters do their construction-time work
// (skipping a prefix, catching up to the first match) when applied.
package filter

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Take creates an Adapter that passes through only the first n elements.
// If n <= 0, the resulting cursor is empty.
func Take[T any](n int) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return core.Take(c, n)
	})
}

// First creates an Adapter exposing at most the first element.
// This is equivalent to Take(1).
func First[T any]() core.Adapter[T, T] {
	return Take[T](1)
}

// TakeWhile creates an Adapter that passes through elements while the
// predicate returns true, and ends right before the first one it rejects.
func TakeWhile[T any](predicate func(T) bool) core.Adapter[T, T] {
	return Until(func(v T) bool { return !predicate(v) })
}

// Until creates an Adapter that ends right before the first element matching stop.
func Until[T any](stop func(T) bool) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return core.Until(c, stop)
	})
}

// UntilEq creates an Adapter that ends right before the first element equal to value.
func UntilEq[T comparable](value T) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return core.UntilEq(c, value)
	})
}

// Skip creates an Adapter that drops the first n elements when applied.
// If n <= 0, all elements are passed through.
func Skip[T any](n int) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return core.Skip(c, n)
	})
}

// ElementAt creates an Adapter exposing only the element at index (0-indexed).
// If the cursor has index or fewer elements, the result is empty.
func ElementAt[T any](index int) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		if index < 0 {
			return core.Take(c, 0)
		}
		return core.Take(core.Skip(c, index), 1)
	})
}

// SkipWhile creates an Adapter that skips elements while the predicate
// returns true. The skipping happens when the adapter is applied; from the
// first rejected element on, everything is passed through.
func SkipWhile[T any](predicate func(T) bool) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		for c.HasMore() && predicate(c.Current()) {
			c.Advance()
		}
		return c
	})
}
