package indicatorv2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/indicators/pkg/num"
)

func TestCumulativeSum(t *testing.T) {
	f := num.DecimalFactory(num.DefaultPrecision)
	bars := newBarSeries(t, f, 10, []float64{1, 2, 3, 4, 5})
	sum := CumulativeSum(ClosePrices(bars), 3)

	tests := []struct {
		index int64
		want  string
	}{
		{0, "1"},
		{1, "3"},
		{2, "6"},
		{3, "9"},
		{4, "12"},
		{2, "6"},
		{3, "9"},
		{0, "1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sum.Value(tt.index).String(), "index %d", tt.index)
	}
}

func TestCumulativeSum_RevisedBeforeClose(t *testing.T) {
	f := num.DecimalFactory(num.DefaultPrecision)
	bars := newBarSeries(t, f, 10, []float64{1, 2})
	sum := CumulativeSum(ClosePrices(bars), 3)

	assert.Equal(t, "3", sum.Last().String())

	last := bars.Last()
	bars.ReplaceLast(last.AddPrice(f.Of(5)))
	assert.Equal(t, "6", sum.Last().String())

	last = bars.Last()
	bars.ReplaceLast(last.AddPrice(f.Of(7)))
	bars.Add(buildBars(f, []float64{10})[0])
	assert.Equal(t, "18", sum.Last().String())
}

func TestCumulativeSum_EnablesUpstreamCaching(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 10, []float64{1, 2})
	upstream := Scale(ClosePrices(bars), f.Two())
	CumulativeSum(upstream, 2)
	assert.True(t, upstream.IsCaching())
}

func TestCumulativeSum_WindowAsLongAsSeries(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 3, nil)
	sum := CumulativeSum(ClosePrices(bars), 3)
	sma := SMA(ClosePrices(bars), 3)

	wantSums := []string{"1", "3", "6", "9", "12", "15"}
	wantAverages := []string{"1", "1.5", "2", "3", "4", "5"}
	for i, c := range []float64{1, 2, 3, 4, 5, 6} {
		bars.Add(buildBars(f, []float64{c})[0])
		assert.Equal(t, wantSums[i], sum.Last().String(), "sum at index %d", i)
		assert.Equal(t, wantAverages[i], sma.Last().String(), "sma at index %d", i)
	}
}
