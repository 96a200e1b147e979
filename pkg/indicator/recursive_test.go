package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicators/pkg/series"
)

// counter is calculate(0) = 0, calculate(i) = Value(i-1) + 1.
type counter struct {
	*Indicator[int64]
	computed map[int64]int
}

func newCounter(s series.Source) *counter {
	c := &counter{computed: make(map[int64]int)}
	c.Indicator = New(s, 0, c.calculate, Recursive(), WithName("counter"))
	return c
}

func (c *counter) calculate(index int64) int64 {
	c.computed[index]++
	if index == 0 {
		return 0
	}
	return c.Value(index-1) + 1
}

func TestRecursive_LongSeriesWithoutDeepRecursion(t *testing.T) {
	const length = 100_001
	s := series.MustNew(length, make([]int, length))
	c := newCounter(s)

	assert.Equal(t, int64(100_000), c.Value(100_000))
	require.Len(t, c.computed, length)
	for index, n := range c.computed {
		if n != 1 {
			t.Fatalf("index %d computed %d times", index, n)
		}
	}
	assert.Equal(t, int64(length), c.Stats().Calculations)
}

func TestRecursive_MemoHasNoGaps(t *testing.T) {
	s := series.MustNew(100, make([]int, 50))
	c := newCounter(s)

	c.Value(10)
	c.Value(40)
	c.Value(25)

	for i := int64(0); i <= 40; i++ {
		_, ok := c.memo.get(i)
		assert.True(t, ok, "index %d should be memoized", i)
	}
	assert.Equal(t, int64(40), c.memo.highest)
	assert.Len(t, c.computed, 41)
}

func TestRecursive_AppendContinuesFromHighest(t *testing.T) {
	s := series.MustNew(1000, make([]int, 500))
	c := newCounter(s)

	assert.Equal(t, int64(499), c.Last())

	for i := 0; i < 100; i++ {
		s.Add(0)
	}
	assert.Equal(t, int64(599), c.Last())
	assert.Len(t, c.computed, 600)
	for _, n := range c.computed {
		assert.Equal(t, 1, n)
	}
}

func TestRecursive_AfterEviction(t *testing.T) {
	s := series.MustNew[int](5, nil)
	c := newCounter(s)

	for i := 0; i < 12; i++ {
		s.Add(i)
	}

	// the memo only spans the retained window; older indices are seeded
	// through index 0
	assert.Equal(t, int64(7), s.StartIndex())
	got := c.Last()
	assert.Equal(t, int64(5), got)
	assert.Equal(t, c.Value(0), c.Value(3))
}

func TestRecursive_ReplaceLastRecomputesOnlyEnd(t *testing.T) {
	s := series.MustNew(10, make([]int, 5))
	c := newCounter(s)

	c.Last()
	s.ReplaceLast(1)
	c.Last()

	assert.Equal(t, 2, c.computed[4])
	for i := int64(0); i < 4; i++ {
		assert.Equal(t, 1, c.computed[i])
	}
}

func TestRecursive_CanNotDisableCache(t *testing.T) {
	s := series.MustNew[int](10, nil)
	c := newCounter(s)
	assert.Equal(t, CacheRecursive, c.Mode())
	c.EnableCaching()
	assert.Equal(t, CacheRecursive, c.Mode())
	assert.True(t, c.IsCaching())
}
