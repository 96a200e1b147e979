package indicatorv2

import (
	"fmt"

	"github.com/c9s/indicators/pkg/indicator"
	"github.com/c9s/indicators/pkg/num"
)

// EMAIndicator is the exponential moving average seeded with the first
// upstream value. Each value depends on the previous one, so it is
// evaluated recursively.
type EMAIndicator struct {
	*indicator.Indicator[num.Num]

	upstream   NumIndicator
	multiplier num.Num
}

// EMA uses the common smoothing factor 2, i.e. a multiplier of 2 / (length + 1).
func EMA(upstream NumIndicator, length int) *EMAIndicator {
	if length <= 0 {
		panic(fmt.Errorf("ema: length must be greater than zero, %d given", length))
	}

	f := upstream.Source().NumFactory()
	return newEMA(upstream, length, f.Two().Div(f.OfInt(int64(length+1))), fmt.Sprintf("ema(%d)", length))
}

func newEMA(upstream NumIndicator, length int, multiplier num.Num, name string) *EMAIndicator {
	s := &EMAIndicator{
		upstream:   upstream,
		multiplier: multiplier,
	}
	s.Indicator = indicator.New(upstream.Source(), indicator.StableIndex(length, upstream), s.calculate,
		indicator.Recursive(), indicator.WithName(name))
	return s
}

func (s *EMAIndicator) calculate(index int64) num.Num {
	if index <= 0 {
		return s.upstream.Value(index)
	}

	previous := s.Value(index - 1)
	return s.upstream.Value(index).Sub(previous).Mul(s.multiplier).Add(previous)
}

// RMA is the running moving average used by Wilder, an EMA with the
// multiplier 1 / length.
func RMA(upstream NumIndicator, length int) *EMAIndicator {
	if length <= 0 {
		panic(fmt.Errorf("rma: length must be greater than zero, %d given", length))
	}

	f := upstream.Source().NumFactory()
	return newEMA(upstream, length, f.One().Div(f.OfInt(int64(length))), fmt.Sprintf("rma(%d)", length))
}
