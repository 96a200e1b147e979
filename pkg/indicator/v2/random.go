package indicatorv2

import (
	"time"

	"github.com/c9s/indicators/pkg/indicator"
	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/series"
)

// RandomNums yields a random value in [0, 1) per index. The memo table keeps
// the value of an index stable across reads.
func RandomNums(source series.Source) *indicator.Indicator[num.Num] {
	return indicator.New(source, 0, func(int64) num.Num {
		return source.NumFactory().Random()
	}, indicator.Caching(), indicator.WithName("random"))
}

// Clock returns the current time.
type Clock func() time.Time

// CurrentTimes records the wall clock time an index was first evaluated at.
// A nil clock uses time.Now.
func CurrentTimes(source series.Source, clock Clock) *indicator.Indicator[time.Time] {
	if clock == nil {
		clock = time.Now
	}

	return indicator.New(source, 0, func(int64) time.Time {
		return clock()
	}, indicator.Caching(), indicator.WithName("currentTime"))
}
