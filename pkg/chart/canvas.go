// Package chart renders indicator values over a bar series with go-chart.
package chart

import (
	"io"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/indicators/pkg/indicator"
	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/series"
)

type Canvas struct {
	chart.Chart
	Interval time.Duration
}

func NewCanvas(title string, interval time.Duration) *Canvas {
	valueFormatter := chart.TimeMinuteValueFormatter
	if interval >= 24*time.Hour {
		valueFormatter = chart.TimeDateValueFormatter
	} else if interval >= time.Hour {
		valueFormatter = chart.TimeHourValueFormatter
	}

	out := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: valueFormatter,
			},
		},
		Interval: interval,
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

// Plot adds the values of ind over the last length bars. NaN values repeat
// the previous value so the line stays continuous.
func (canvas *Canvas) Plot(tag string, ind indicator.Interface[num.Num], bars *series.BarSeries, length int) {
	if bars.IsEmpty() || length <= 0 {
		return
	}

	start := max(bars.StartIndex(), bars.EndIndex()-int64(length)+1)

	var (
		xs []time.Time
		ys []float64
	)
	for i := start; i <= bars.EndIndex(); i++ {
		v := ind.Value(i).Float64()
		if math.IsNaN(v) {
			if len(ys) == 0 {
				continue
			}
			v = ys[len(ys)-1]
		}

		xs = append(xs, bars.Get(i).Start)
		ys = append(ys, v)
	}

	canvas.Series = append(canvas.Series, chart.TimeSeries{
		Name:    tag,
		XValues: xs,
		YValues: ys,
	})
}

// Render writes the chart as PNG.
func (canvas *Canvas) Render(w io.Writer) error {
	if len(canvas.Series) == 0 {
		return errors.New("nothing to plot")
	}

	return errors.Wrap(canvas.Chart.Render(chart.PNG, w), "cannot render chart")
}
