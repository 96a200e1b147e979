package types

import "time"

// Resample merges bars into bars of the given interval. Input bars must be
// ordered by start time; each output bar spans [t, t+interval) where t is
// the bar start truncated to the interval.
func Resample(bars []Bar, interval time.Duration) []Bar {
	var out []Bar
	for _, b := range bars {
		start := b.Start.Truncate(interval)
		if n := len(out); n > 0 && out[n-1].Start.Equal(start) {
			merged := out[n-1].Aggregate(b)
			merged.Start, merged.End = start, start.Add(interval)
			out[n-1] = merged
			continue
		}

		b.Start, b.End = start, start.Add(interval)
		out = append(out, b)
	}

	return out
}
