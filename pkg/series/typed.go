package series

import (
	"github.com/c9s/indicators/pkg/types"
)

// BarSeries is a series of bars. Bars should share one duration and be added
// in chronological order, otherwise indicators may behave unexpectedly.
type BarSeries = Series[types.Bar]

// NumSeries is a series of timestamped Nums.
type NumSeries = Series[types.NumDatapoint]

func NewBarSeries(maximumLength int, initialValues []types.Bar, opts ...Option) (*BarSeries, error) {
	return New(maximumLength, initialValues, opts...)
}

func NewNumSeries(maximumLength int, initialValues []types.NumDatapoint, opts ...Option) (*NumSeries, error) {
	return New(maximumLength, initialValues, opts...)
}
