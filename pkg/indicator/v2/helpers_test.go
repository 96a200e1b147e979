package indicatorv2

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/series"
	"github.com/c9s/indicators/pkg/types"
)

var startTime = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

func buildBars(f num.Factory, closes []float64) []types.Bar {
	var bars []types.Bar
	for i, c := range closes {
		p := f.Of(c)
		bars = append(bars, types.NewBar(startTime.Add(time.Duration(i)*time.Minute), time.Minute,
			p, p.Add(f.One()), p.Sub(f.One()), p, f.OfInt(int64(i+1)), f.One()))
	}
	return bars
}

func newBarSeries(t *testing.T, f num.Factory, capacity int, closes []float64) *series.BarSeries {
	bs, err := series.NewBarSeries(capacity, buildBars(f, closes), series.WithName("test"), series.WithNum(f, nil))
	require.NoError(t, err)
	return bs
}
