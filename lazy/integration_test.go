package lazy_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/min-lazy/lazy"
	"github.com/lguimbarda/min-lazy/lazy/aggregate"
	"github.com/lguimbarda/min-lazy/lazy/combine"
	"github.com/lguimbarda/min-lazy/lazy/filter"
	lazyio "github.com/lguimbarda/min-lazy/lazy/io"
	"github.com/lguimbarda/min-lazy/lazy/observe"
	"github.com/lguimbarda/min-lazy/lazy/transform"
)

func isEven(n int) bool { return n%2 == 0 }

func TestIntegrationReadmeScenarios(t *testing.T) {
	seq := lazy.Range(0, 9)

	assert.Equal(t, []int{2, 3, 4}, lazy.Range(0, 7).Skip(2).Take(3).Collect())
	assert.Equal(t, []int{0, 2, 4}, lazy.UntilEq[int](seq.Filter(isEven), 6).Collect())
	assert.Equal(t, []int{2, 3}, lazy.FilterNeq[int](lazy.Of(1, 2, 1, 3, 1), 1).Collect())
}

func TestIntegrationCopyIntoPreallocated(t *testing.T) {
	dst := make([]string, 3)
	out := lazy.IntoSlice(dst)

	words := lazy.Map[string](lazy.Of("a", "bb", "ccc", "dddd"), strings.ToUpper)
	lazy.Take[string](words, 3).CopyInto(out)

	assert.Equal(t, []string{"A", "BB", "CCC"}, dst)
	assert.Equal(t, 3, out.Written())
}

func TestIntegrationAbandonedPipelineIsHarmless(t *testing.T) {
	// Build a pipeline and never drive it: nothing is pulled beyond what
	// construction needs.
	src := observe.Count[int](lazy.Range(0, 1000))
	_ = lazy.Map[int](lazy.Take[int](src, 10), func(n int) int { return n * n })

	assert.Equal(t, 0, src.Reads())
	assert.Equal(t, 0, src.Advances())
}

func TestIntegrationPanicSurfacesOnceAtSink(t *testing.T) {
	boom := errors.New("bad element")
	parse := func(n int) int {
		if n == 3 {
			panic(boom)
		}
		return n * 10
	}

	got, err := lazy.TryCollect[int](lazy.Map[int](lazy.Range(0, 10), parse))
	require.Error(t, err)
	assert.Equal(t, []int{0, 10, 20}, got)

	var perr lazy.ErrPanic
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, boom)
	assert.NotEmpty(t, perr.Stack)
}

func TestIntegrationGuardCatchesMisuse(t *testing.T) {
	c := lazy.Guard[int](lazy.Of(1))
	c.Advance()

	assert.PanicsWithValue(t, lazy.ErrExhausted, func() { c.Current() })
}

func TestIntegrationWordFrequencyPipeline(t *testing.T) {
	text := `the quick brown fox
jumps over the lazy dog

the end`

	// Take the paragraph before the first blank line, split it into words
	// and count those longer than three letters.
	lines := lazyio.Lines(strings.NewReader(text))
	paragraph := lazy.Collect(lazy.UntilEq[string](lines, ""))

	long := 0
	for _, line := range paragraph {
		long += aggregate.Count[string](lazyio.Words(strings.NewReader(line)).Filter(func(w string) bool { return len(w) > 3 }))
	}
	assert.Equal(t, 5, long) // quick brown jumps over lazy
	assert.Equal(t, "", lines.Current(), "lines stays on the blank line")
}

func TestIntegrationEveryPackageComposes(t *testing.T) {
	evens := lazy.Pipe(lazy.Cursor[int](lazy.Range(0, 20)), filter.Where(isEven), filter.Take[int](5))
	odds := lazy.Pipe(lazy.Cursor[int](lazy.Range(0, 20)), filter.Exclude(isEven), filter.Take[int](5))

	pairs := combine.ZipWith(evens, odds, func(a, b int) string { return fmt.Sprintf("%d+%d", a, b) })
	indexed := transform.Enumerate[string]().Apply(pairs)

	last, ok := aggregate.Last(indexed)
	require.True(t, ok)
	assert.Equal(t, transform.Indexed[string]{Index: 4, Value: "8+9"}, last)
}
