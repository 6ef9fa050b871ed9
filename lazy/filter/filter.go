package filter

import (
	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Where creates an Adapter that only exposes elements matching the predicate.
// Elements that don't match are skipped transparently.
func Where[T any](predicate func(T) bool) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return core.Filter(c, predicate)
	})
}

// WhereNeq creates an Adapter that only exposes elements not equal to value.
func WhereNeq[T comparable](value T) core.Adapter[T, T] {
	return core.AdapterFunc[T, T](func(c core.Cursor[T]) core.Cursor[T] {
		return core.FilterNeq(c, value)
	})
}

// Exclude creates an Adapter that skips elements matching the predicate.
// It is the inverse of Where.
func Exclude[T any](predicate func(T) bool) core.Adapter[T, T] {
	return Where(func(v T) bool { return !predicate(v) })
}

// MapWhere creates an Adapter that both filters and maps.
// The function returns (value, true) to include the transformed value,
// or (_, false) to skip the element. fn runs once when an element is
// checked and again each time the kept element is read, so it must be pure.
func MapWhere[IN, OUT any](fn func(IN) (OUT, bool)) core.Adapter[IN, OUT] {
	return core.AdapterFunc[IN, OUT](func(c core.Cursor[IN]) core.Cursor[OUT] {
		kept := core.Filter(c, func(v IN) bool {
			_, ok := fn(v)
			return ok
		})
		return core.Map[IN, OUT](kept, func(v IN) OUT {
			out, _ := fn(v)
			return out
		})
	})
}
