package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/indicators/pkg/indicator"
)

// StatsProvider is anything exposing indicator evaluation statistics.
type StatsProvider interface {
	Stats() indicator.Stats
}

var (
	calculationsDesc = prometheus.NewDesc(
		"indicators_calculations_total",
		"number of calculate calls of the indicator",
		[]string{"indicator"}, nil)

	singleSlotHitsDesc = prometheus.NewDesc(
		"indicators_single_slot_hits_total",
		"number of values served from the single slot cache",
		[]string{"indicator"}, nil)

	memoHitsDesc = prometheus.NewDesc(
		"indicators_memo_hits_total",
		"number of values served from the memo table",
		[]string{"indicator"}, nil)
)

// IndicatorCollector reads the statistics of the registered indicators on
// every scrape. Indicators are not safe for concurrent use, so the caller
// must not evaluate them while a scrape is running, see Lock.
type IndicatorCollector struct {
	sync.Mutex

	providers map[string]StatsProvider
}

var _ prometheus.Collector = (*IndicatorCollector)(nil)

func NewIndicatorCollector() *IndicatorCollector {
	return &IndicatorCollector{
		providers: make(map[string]StatsProvider),
	}
}

// Add registers p under name, replacing any provider with the same name.
func (c *IndicatorCollector) Add(name string, p StatsProvider) {
	c.Lock()
	c.providers[name] = p
	c.Unlock()
}

func (c *IndicatorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- calculationsDesc
	ch <- singleSlotHitsDesc
	ch <- memoHitsDesc
}

func (c *IndicatorCollector) Collect(ch chan<- prometheus.Metric) {
	c.Lock()
	defer c.Unlock()

	names := make([]string, 0, len(c.providers))
	for name := range c.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		stats := c.providers[name].Stats()
		ch <- prometheus.MustNewConstMetric(calculationsDesc, prometheus.CounterValue, float64(stats.Calculations), name)
		ch <- prometheus.MustNewConstMetric(singleSlotHitsDesc, prometheus.CounterValue, float64(stats.SingleSlotHits), name)
		ch <- prometheus.MustNewConstMetric(memoHitsDesc, prometheus.CounterValue, float64(stats.MemoHits), name)
	}
}
