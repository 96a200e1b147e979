package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/indicators/pkg/num"
)

var f = num.DecimalFactory(num.DefaultPrecision)

func TestBar_AddTrade(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	bar := NewTradeBar(start, time.Minute, f.OfInt(100), f.OfInt(1))

	bar = bar.AddTrade(f.OfInt(105), f.OfInt(2))
	bar = bar.AddPrice(f.OfInt(98))

	assert.Equal(t, 100.0, bar.Open.Float64())
	assert.Equal(t, 105.0, bar.High.Float64())
	assert.Equal(t, 98.0, bar.Low.Float64())
	assert.Equal(t, 98.0, bar.Close.Float64())
	assert.Equal(t, 3.0, bar.Volume.Float64())
	assert.Equal(t, 3.0, bar.TradeCount.Float64())
	assert.Equal(t, time.Minute, bar.Duration())
	assert.True(t, bar.IsBearish())
	assert.False(t, bar.IsBullish())
}

func TestBar_Aggregate(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	first := NewBar(start, time.Minute, f.OfInt(10), f.OfInt(12), f.OfInt(9), f.OfInt(11), f.OfInt(5), f.OfInt(3))
	second := NewBar(start.Add(time.Minute), time.Minute, f.OfInt(11), f.OfInt(15), f.OfInt(10), f.OfInt(14), f.OfInt(7), f.OfInt(4))

	for _, agg := range []Bar{first.Aggregate(second), second.Aggregate(first)} {
		assert.Equal(t, start, agg.Start)
		assert.Equal(t, start.Add(2*time.Minute), agg.End)
		assert.Equal(t, 10.0, agg.Open.Float64())
		assert.Equal(t, 15.0, agg.High.Float64())
		assert.Equal(t, 9.0, agg.Low.Float64())
		assert.Equal(t, 14.0, agg.Close.Float64())
		assert.Equal(t, 12.0, agg.Volume.Float64())
		assert.Equal(t, 7.0, agg.TradeCount.Float64())
	}
}

func TestBar_ContainsTime(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	bar := NewTradeBar(start, time.Minute, f.OfInt(1), f.OfInt(1))
	next := NewTradeBar(start.Add(30*time.Second), time.Minute, f.OfInt(1), f.OfInt(1))
	later := NewTradeBar(start.Add(2*time.Minute), time.Minute, f.OfInt(1), f.OfInt(1))

	assert.True(t, bar.ContainsTime(start))
	assert.False(t, bar.ContainsTime(start.Add(time.Minute)))
	assert.True(t, bar.Overlaps(next))
	assert.False(t, bar.Overlaps(later))
}
