package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/indicators/pkg/series"
)

var SeriesLengthMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "indicators_series_length",
		Help: "number of values retained by the series",
	}, []string{"series"})

var SeriesEndIndexMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "indicators_series_end_index",
		Help: "absolute index of the latest value of the series",
	}, []string{"series"})

var IndicatorValueMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "indicators_indicator_value",
		Help: "latest value of the indicator",
	}, []string{"series", "indicator"})

func init() {
	prometheus.MustRegister(SeriesLengthMetrics, SeriesEndIndexMetrics, IndicatorValueMetrics)
}

// UpdateSeries sets the series gauges from the current state of s.
func UpdateSeries(s series.Source) {
	SeriesLengthMetrics.WithLabelValues(s.Name()).Set(float64(s.Length()))
	SeriesEndIndexMetrics.WithLabelValues(s.Name()).Set(float64(s.EndIndex()))
}

// SetIndicatorValue records the latest value of a named indicator. NaN
// values are exported as NaN.
func SetIndicatorValue(seriesName, indicatorName string, v float64) {
	IndicatorValueMetrics.WithLabelValues(seriesName, indicatorName).Set(v)
}
