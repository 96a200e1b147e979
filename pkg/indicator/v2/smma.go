package indicatorv2

import (
	"fmt"

	"github.com/c9s/indicators/pkg/indicator"
	"github.com/c9s/indicators/pkg/num"
)

// SMMAIndicator is the smoothed (Wilder's) moving average: the simple average
// of the first length values, then (previous * (length - 1) + value) / length.
// Before length values exist it averages the values available.
type SMMAIndicator struct {
	*indicator.Indicator[num.Num]

	upstream NumIndicator
	sma      *SMAIndicator
	length   int64
}

func SMMA(upstream NumIndicator, length int) *SMMAIndicator {
	if length <= 0 {
		panic(fmt.Errorf("smma: length must be greater than zero, %d given", length))
	}

	s := &SMMAIndicator{
		upstream: upstream,
		sma:      SMA(upstream, length),
		length:   int64(length),
	}
	s.Indicator = indicator.New(upstream.Source(), indicator.StableIndex(length-1, upstream), s.calculate,
		indicator.Recursive(), indicator.WithName(fmt.Sprintf("smma(%d)", length)))
	return s
}

func (s *SMMAIndicator) calculate(index int64) num.Num {
	if index < s.length {
		return s.sma.Value(index)
	}

	f := s.Source().NumFactory()
	previous := s.Value(index - 1)
	return previous.Mul(f.OfInt(s.length - 1)).Add(s.upstream.Value(index)).Div(f.OfInt(s.length))
}
