// Package benchmarks compares min-lazy cursors against popular Go collection
// and stream libraries, and against a hand-written loop.
package benchmarks

import (
	"fmt"
	"testing"
)

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

var sizes = []int{SmallSize, MediumSize, LargeSize}

// generateInts creates a slice of integers for benchmarking.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// square returns the square of an integer.
func square(x int) int {
	return x * x
}

// isEven returns true if the number is even.
func isEven(x int) bool {
	return x%2 == 0
}

// sink keeps results alive so the compiler cannot drop the work.
var sink any

// runSizes runs fn as a sub-benchmark for every data size.
func runSizes(b *testing.B, fn func(b *testing.B, data []int)) {
	for _, size := range sizes {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			data := generateInts(size)
			b.ReportAllocs()
			b.ResetTimer()
			fn(b, data)
		})
	}
}
