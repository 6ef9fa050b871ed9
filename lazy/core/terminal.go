package core

import "iter"

// Terminal functions are sinks: they drive a pipeline to exhaustion, pulling
// one element at a time from the outermost cursor.

// Collect drains c into a new slice, in traversal order.
// An already exhausted cursor yields an empty, non-nil slice.
func Collect[T any](c Cursor[T], opts ...Option) []T {
	cfg := applyOptions(opts...)
	result := make([]T, 0, cfg.Capacity)
	for c.HasMore() {
		result = append(result, c.Current())
		c.Advance()
	}
	return result
}

// TryCollect behaves like Collect but recovers a panic raised by a user
// function anywhere in the pipeline and returns it as an ErrPanic, together
// with the elements collected before it. No adapter recovers on its own; this
// sink boundary is the only place a panic is turned into an error.
func TryCollect[T any](c Cursor[T], opts ...Option) (result []T, err error) {
	cfg := applyOptions(opts...)
	result = make([]T, 0, cfg.Capacity)
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	for c.HasMore() {
		result = append(result, c.Current())
		c.Advance()
	}
	return result, nil
}

// Output is an external output position. Put stores a value at the current
// position and moves the position forward by one.
type Output[T any] interface {
	Put(T)
}

// OutputFunc turns a plain function into an Output.
type OutputFunc[T any] func(T)

// Put implements Output.
func (f OutputFunc[T]) Put(v T) { f(v) }

// SliceOutput writes into caller owned, preallocated storage.
// Writing past the end of the slice panics like any out of range index.
type SliceOutput[T any] struct {
	dst []T
	pos int
}

// IntoSlice returns an Output that fills dst from index 0.
func IntoSlice[T any](dst []T) *SliceOutput[T] {
	return &SliceOutput[T]{dst: dst}
}

// Put implements Output.
func (o *SliceOutput[T]) Put(v T) {
	o.dst[o.pos] = v
	o.pos++
}

// Written returns how many values have been put so far.
func (o *SliceOutput[T]) Written() int { return o.pos }

// CopyInto drains c, putting every element into out and advancing both in lockstep.
func CopyInto[T any](c Cursor[T], out Output[T]) {
	for c.HasMore() {
		out.Put(c.Current())
		c.Advance()
	}
}

// All returns a single-use iterator over the remaining elements of c.
// Breaking out of the range loop leaves c positioned on the element that was
// yielded last; it is not advanced past it.
func All[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c.HasMore() {
			if !yield(c.Current()) {
				return
			}
			c.Advance()
		}
	}
}
