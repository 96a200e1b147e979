package cmd

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicators/pkg/cache"
	"github.com/c9s/indicators/pkg/metrics"
)

func TestReplay(t *testing.T) {
	for _, intrabar := range []bool{false, true} {
		cfg := loadTestConfig(t, graphConfig)
		collector := metrics.NewIndicatorCollector()

		graph, err := replay(context.Background(), cfg, collector, replayOptions{Intrabar: intrabar})
		require.NoError(t, err)

		bars := graph.Bars
		assert.Equal(t, 12, bars.Length())
		if intrabar {
			assert.Equal(t, int64(24), bars.AddCallCount(), "one append and one revision per bar")
		} else {
			assert.Equal(t, int64(12), bars.AddCallCount())
		}

		// the incremental values agree with a fresh evaluation
		price, _ := graph.Node("price")
		sma3, _ := graph.Node("sma3")
		want := (price.Indicator.Value(9).Float64() + price.Indicator.Value(10).Float64() + price.Indicator.Value(11).Float64()) / 3
		assert.InDelta(t, want, sma3.Indicator.Value(bars.EndIndex()).Float64(), 1e-9)

		fresh, err := newBarSeries(cfg)
		require.NoError(t, err)
		for i := bars.StartIndex(); i <= bars.EndIndex(); i++ {
			fresh.Add(bars.Get(i))
		}
		freshGraph, err := BuildGraph(cfg, fresh, cache.NewInterner[string, Node]())
		require.NoError(t, err)
		for _, name := range graph.Names {
			a, _ := graph.Node(name)
			b, _ := freshGraph.Node(name)
			for i := bars.StartIndex(); i <= bars.EndIndex(); i++ {
				assert.InDelta(t, b.Indicator.Value(i).Float64(), a.Indicator.Value(i).Float64(), 1e-9, "%s at %d", name, i)
			}
		}

		assert.InDelta(t, want, testutil.ToFloat64(metrics.IndicatorValueMetrics.WithLabelValues("btcusdt", "sma3")), 1e-9)
		assert.Equal(t, 11.0, testutil.ToFloat64(metrics.SeriesEndIndexMetrics.WithLabelValues("btcusdt")))
		assert.Equal(t, 12, testutil.CollectAndCount(collector), "three counters per distinct indicator")
	}
}

func TestReplay_Canceled(t *testing.T) {
	cfg := loadTestConfig(t, graphConfig)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := replay(ctx, cfg, metrics.NewIndicatorCollector(), replayOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}
