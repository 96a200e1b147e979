package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResample(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	bar := func(minute int, o, h, l, c float64) Bar {
		return NewBar(start.Add(time.Duration(minute)*time.Minute), time.Minute, f.Of(o), f.Of(h), f.Of(l), f.Of(c), f.One(), f.One())
	}

	bars := []Bar{
		bar(0, 10, 12, 9, 11),
		bar(1, 11, 15, 10, 14),
		bar(2, 14, 14, 8, 9),
		bar(5, 9, 10, 9, 10),
		bar(6, 10, 11, 10, 11),
	}

	out := Resample(bars, 5*time.Minute)
	require.Len(t, out, 2)

	assert.Equal(t, start, out[0].Start)
	assert.Equal(t, start.Add(5*time.Minute), out[0].End)
	assert.Equal(t, "10", out[0].Open.String())
	assert.Equal(t, "15", out[0].High.String())
	assert.Equal(t, "8", out[0].Low.String())
	assert.Equal(t, "9", out[0].Close.String())
	assert.Equal(t, "3", out[0].Volume.String())
	assert.Equal(t, "3", out[0].TradeCount.String())

	assert.Equal(t, start.Add(5*time.Minute), out[1].Start)
	assert.Equal(t, "11", out[1].Close.String())
	assert.Equal(t, "2", out[1].Volume.String())
}
