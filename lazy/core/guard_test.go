package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

func TestGuard(t *testing.T) {
	c := core.Guard[int](core.FromSlice([]int{1}))

	assert.Equal(t, 1, c.Current())
	c.Advance()
	assert.False(t, c.HasMore())

	assert.PanicsWithValue(t, core.ErrExhausted, func() { c.Current() })
	assert.PanicsWithValue(t, core.ErrExhausted, func() { c.Advance() })
}

func TestGuardIsTransparent(t *testing.T) {
	got := core.Guard[int](core.Range(0, 10).Filter(isEven)).Skip(1).Take(2).Collect()
	assert.Equal(t, []int{2, 4}, got)
}
