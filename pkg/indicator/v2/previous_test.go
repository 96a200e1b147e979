package indicatorv2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/indicators/pkg/num"
)

func TestPrevious(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 10, []float64{1, 2, 3, 4})
	sma := SMA(ClosePrices(bars), 2)
	prev := Previous[num.Num](sma, 2)

	assert.True(t, sma.IsCaching(), "random history reads enable the upstream memo")
	assert.Equal(t, 1.5, prev.Last().Float64())
	assert.Equal(t, 1.0, prev.Value(1).Float64(), "clamped to the first value")
	assert.Equal(t, 3, prev.MinimumStableIndex())
}

func TestPrevious_InvalidN(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 10, []float64{1})
	assert.Panics(t, func() { Previous[num.Num](ClosePrices(bars), 0) })
}
