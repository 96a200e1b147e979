package indicatorv2

import (
	"fmt"

	"github.com/c9s/indicators/pkg/indicator"
	"github.com/c9s/indicators/pkg/num"
)

// SMAIndicator is the simple moving average. Before length values exist it
// averages the values available.
type SMAIndicator struct {
	*indicator.Indicator[num.Num]

	length int64
	sum    *CumulativeSumIndicator
}

func SMA(upstream NumIndicator, length int) *SMAIndicator {
	if length <= 0 {
		panic(fmt.Errorf("sma: length must be greater than zero, %d given", length))
	}

	s := &SMAIndicator{
		length: int64(length),
		sum:    CumulativeSum(upstream, length),
	}
	s.Indicator = indicator.New(upstream.Source(), indicator.StableIndex(length-1, upstream), s.calculate,
		indicator.WithName(fmt.Sprintf("sma(%d)", length)))
	return s
}

func (s *SMAIndicator) calculate(index int64) num.Num {
	sum := s.sum.Value(index)
	return sum.Div(sum.Factory().OfInt(min(index+1, s.length)))
}
