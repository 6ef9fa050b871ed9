package lazy

// Through chains two adapters together, creating a new adapter that first
// applies a1 and then a2 to the cursor.
func Through[IN, MID, OUT any](a1 Adapter[IN, MID], a2 Adapter[MID, OUT]) Adapter[IN, OUT] {
	return AdapterFunc[IN, OUT](func(c Cursor[IN]) Cursor[OUT] {
		return a2.Apply(a1.Apply(c))
	})
}

// Chain composes multiple adapters of the same type into a single adapter.
// Adapters are applied in order from left to right.
// If no adapters are provided, returns an identity adapter.
func Chain[T any](adapters ...Adapter[T, T]) Adapter[T, T] {
	return AdapterFunc[T, T](func(c Cursor[T]) Cursor[T] {
		return Pipe(c, adapters...)
	})
}

// Pipe applies a series of adapters to a cursor, returning the outermost one.
// Each adapter is built, and does its construction-time work, in order.
func Pipe[T any](source Cursor[T], adapters ...Adapter[T, T]) Cursor[T] {
	result := source
	for _, a := range adapters {
		result = a.Apply(result)
	}
	return result
}

// Apply is a helper to apply a single adapter to a cursor.
// Equivalent to adapter.Apply(c) but reads left-to-right.
func Apply[IN, OUT any](c Cursor[IN], adapter Adapter[IN, OUT]) Cursor[OUT] {
	return adapter.Apply(c)
}
