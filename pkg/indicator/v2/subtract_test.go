package indicatorv2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/indicators/pkg/indicator"
	"github.com/c9s/indicators/pkg/num"
)

func TestBinaryOperations(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 10, []float64{10, 20, 30})
	closes := ClosePrices(bars)
	highs := HighPrices(bars)

	assert.Equal(t, 61.0, Add(closes, highs).Last().Float64())
	assert.Equal(t, -1.0, Subtract(closes, highs).Last().Float64())
	assert.Equal(t, 930.0, Multiply(closes, highs).Last().Float64())
	assert.InDelta(t, 30.0/31.0, Divide(closes, highs).Last().Float64(), 1e-12)
	assert.Equal(t, -30.0, Negate(closes).Last().Float64())
	assert.Equal(t, 30.0, Abs(Negate(closes)).Last().Float64())
	assert.Equal(t, 60.0, Scale(closes, f.Two()).Last().Float64())
}

func TestBinary_DivideByZeroIsNaN(t *testing.T) {
	f := num.DecimalFactory(8)
	bars := newBarSeries(t, f, 10, []float64{10})
	zero := indicator.Constant[num.Num](bars, f.Zero())

	assert.True(t, Divide(ClosePrices(bars), zero).Last().IsNaN())
}

func TestBinary_StableIndexIsMaxOfOperands(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 10, []float64{1, 2, 3})
	closes := ClosePrices(bars)

	diff := Subtract(SMA(closes, 3), SMA(closes, 5))
	assert.Equal(t, 4, diff.MinimumStableIndex())
}

func TestBinary_GenericResult(t *testing.T) {
	f := num.FloatFactory()
	bars := newBarSeries(t, f, 10, []float64{1, 5, 3})
	closes := ClosePrices(bars)
	opens := Previous[num.Num](closes, 1)

	rising := Binary("rising", func(a, b num.Num) bool { return a.Cmp(b) > 0 }, closes, opens)
	assert.False(t, rising.Value(0))
	assert.True(t, rising.Value(1))
	assert.False(t, rising.Value(2))
}
