package indicatorv2

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/indicators/pkg/num"
)

func TestRandomNums_StablePerIndex(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 10, []float64{1, 2, 3})
	random := RandomNums(bars)

	first := random.Value(1)
	random.Value(0)
	random.Value(2)
	assert.Equal(t, first, random.Value(1))

	v := first.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestCurrentTimes(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 10, []float64{1, 2})

	now := startTime
	clock := func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	times := CurrentTimes(bars, clock)
	t0 := times.Value(0)
	t1 := times.Value(1)
	assert.Equal(t, startTime.Add(time.Second), t0)
	assert.Equal(t, startTime.Add(2*time.Second), t1)
	assert.Equal(t, t0, times.Value(0), "the first evaluation time is kept")
}

func TestCurrentTimes_ClosedIndexKeepsTime(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 10, []float64{1, 2, 3})

	now := startTime
	times := CurrentTimes(bars, func() time.Time {
		now = now.Add(time.Second)
		return now
	})

	closed := times.Value(2)

	// a new bar opens and is revised while forming
	next := buildBars(f, []float64{4})[0]
	bars.Add(next)
	bars.ReplaceLast(next.AddPrice(f.Of(5)))

	assert.Equal(t, closed, times.Value(2))
}
