package indicatorv2

import (
	"fmt"

	"github.com/c9s/indicators/pkg/indicator"
	"github.com/c9s/indicators/pkg/num"
)

// CumulativeSumIndicator is the rolling sum over the last length values.
type CumulativeSumIndicator struct {
	*indicator.Indicator[num.Num]

	upstream NumIndicator
	length   int64

	previousIndex int64
	previousValue num.Num
	previousSum   num.Num
}

func CumulativeSum(upstream NumIndicator, length int) *CumulativeSumIndicator {
	if length <= 0 {
		panic(fmt.Errorf("cumulative sum: length must be greater than zero, %d given", length))
	}

	upstream.EnableCaching()
	s := &CumulativeSumIndicator{
		upstream:      upstream,
		length:        int64(length),
		previousIndex: -1,
	}
	s.Indicator = indicator.New(upstream.Source(), indicator.StableIndex(length-1, upstream), s.calculate,
		indicator.WithName(fmt.Sprintf("sum(%d)", length)))
	return s
}

// calculate reuses the previous sum when it is asked for the same or the next
// index, which is the common case when following the latest bar.
func (s *CumulativeSumIndicator) calculate(index int64) num.Num {
	current := s.upstream.Value(index)

	var sum num.Num
	switch {
	case s.previousIndex >= 0 && index == s.previousIndex:
		sum = s.previousSum.Sub(s.previousValue).Add(current)

	case s.previousIndex >= 0 && index == s.previousIndex+1 && index >= s.length && index-s.length < s.Source().StartIndex():
		// the value leaving the window is already evicted
		sum = s.sumWindow(index, current)

	case s.previousIndex >= 0 && index == s.previousIndex+1:
		// the previous value may have been revised before it was closed
		sum = s.previousSum.Sub(s.previousValue).Add(s.upstream.Value(s.previousIndex)).Add(current)
		if index >= s.length {
			sum = sum.Sub(s.upstream.Value(index - s.length))
		}

	default:
		sum = s.sumWindow(index, current)
	}

	s.previousIndex = index
	s.previousValue = current
	s.previousSum = sum
	return sum
}

func (s *CumulativeSumIndicator) sumWindow(index int64, current num.Num) num.Num {
	sum := current
	for i := max(0, index-s.length+1); i < index; i++ {
		sum = sum.Add(s.upstream.Value(i))
	}
	return sum
}
