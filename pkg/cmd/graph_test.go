package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicators/pkg/cache"
	"github.com/c9s/indicators/pkg/config"
)

func loadTestConfig(t *testing.T, content string) *config.Config {
	cfg, err := config.LoadBytes([]byte(content))
	require.NoError(t, err)
	cfg.Source.File = "testdata/btcusdt-1h.csv"
	return cfg
}

const graphConfig = `
series:
  name: btcusdt
  maximumLength: 100
  interval: 1h
num:
  type: float
indicators:
- name: price
  type: close
- name: sma3
  type: sma
  input: price
  length: 3
- name: sma3again
  type: sma
  input: close
  length: 3
- name: ema3
  type: ema
  input: sma3
  length: 3
- name: last
  type: previous
  input: price
  length: 1
`

func TestBuildGraph_SharesDefinitions(t *testing.T) {
	cfg := loadTestConfig(t, graphConfig)
	bars, err := newBarSeries(cfg)
	require.NoError(t, err)

	interner := cache.NewInterner[string, Node]()
	graph, err := BuildGraph(cfg, bars, interner)
	require.NoError(t, err)

	sma3, ok := graph.Node("sma3")
	require.True(t, ok)
	again, ok := graph.Node("sma3again")
	require.True(t, ok)
	assert.Same(t, sma3, again)
	assert.Equal(t, "sma(close,3)", sma3.Key)

	ema3, _ := graph.Node("ema3")
	assert.Equal(t, "ema(sma(close,3),3)", ema3.Key)

	assert.Len(t, graph.Distinct(), 4)
	assert.Equal(t, 4, interner.Len())

	names, nodes, err := graph.Columns([]string{"ema3", "price"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ema3", "price"}, names)
	assert.Len(t, nodes, 2)

	_, _, err = graph.Columns([]string{"missing"})
	assert.Error(t, err)
}

func TestBuildGraph_Values(t *testing.T) {
	cfg := loadTestConfig(t, graphConfig)
	bars, err := newBarSeries(cfg)
	require.NoError(t, err)

	graph, err := BuildGraph(cfg, bars, cache.NewInterner[string, Node]())
	require.NoError(t, err)

	reader, file, err := openBarReader(cfg, bars.NumFactory())
	require.NoError(t, err)
	defer file.Close()

	all, err := reader.ReadAll(cfg.Series.Interval)
	require.NoError(t, err)
	require.Len(t, all, 12)
	for _, b := range all[:3] {
		bars.Add(b)
	}

	sma3, _ := graph.Node("sma3")
	last, _ := graph.Node("last")
	assert.InDelta(t, (28995.13+29409.99+29194.65)/3, sma3.Indicator.Value(2).Float64(), 1e-9)
	assert.InDelta(t, 29409.99, last.Indicator.Value(2).Float64(), 1e-9)
	assert.True(t, sma3.Indicator.IsStableAt(2))
}
