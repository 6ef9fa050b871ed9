package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

func TestFromIter(t *testing.T) {
	got := core.FromIter(slices.Values([]int{1, 2, 3, 4})).Filter(isEven).Collect()
	assert.Equal(t, []int{2, 4}, got)
}

func TestFromIterPullsOnDemand(t *testing.T) {
	var produced []int
	seq := func(yield func(int) bool) {
		for i := 0; i < 100; i++ {
			produced = append(produced, i)
			if !yield(i) {
				return
			}
		}
	}

	c := core.FromIter(seq)
	defer c.Close()

	assert.Equal(t, []int{0}, produced, "only the first element is primed")
	assert.Equal(t, []int{0, 1, 2}, c.Take(3).Collect())
	assert.Equal(t, []int{0, 1, 2}, produced)
}

func TestPullCursorClose(t *testing.T) {
	stopped := 0
	values := []int{1, 2, 3}
	i := 0
	next := func() (int, bool) {
		if i >= len(values) {
			return 0, false
		}
		i++
		return values[i-1], true
	}

	c := core.FromPull(next, func() { stopped++ })
	require.True(t, c.HasMore())

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.False(t, c.HasMore())
	assert.Equal(t, 1, stopped)
}

func TestPullCursorStopsWhenDrained(t *testing.T) {
	stopped := 0
	next, stop := func() (int, bool) { return 0, false }, func() { stopped++ }

	c := core.FromPull(next, stop)
	assert.False(t, c.HasMore())
	assert.Equal(t, 1, stopped)

	require.NoError(t, c.Close())
	assert.Equal(t, 1, stopped)
}
