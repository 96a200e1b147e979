package indicatorv2

import (
	"github.com/c9s/indicators/pkg/indicator"
	"github.com/c9s/indicators/pkg/num"
	"github.com/c9s/indicators/pkg/series"
	"github.com/c9s/indicators/pkg/types"
)

// NumIndicator is any indicator producing Nums.
type NumIndicator = indicator.Interface[num.Num]

// BarMapper extracts one field of a bar.
type BarMapper func(b types.Bar) num.Num

func BarOpenMapper(b types.Bar) num.Num       { return b.Open }
func BarHighMapper(b types.Bar) num.Num       { return b.High }
func BarLowMapper(b types.Bar) num.Num        { return b.Low }
func BarCloseMapper(b types.Bar) num.Num      { return b.Close }
func BarVolumeMapper(b types.Bar) num.Num     { return b.Volume }
func BarTradeCountMapper(b types.Bar) num.Num { return b.TradeCount }

func BarTypicalPriceMapper(b types.Bar) num.Num {
	three := b.Close.Factory().OfInt(3)
	return b.High.Add(b.Low).Add(b.Close).Div(three)
}

// BarField reads a bar field straight from the series. Reading is cheaper
// than memoizing, so the indicator is cacheless.
func BarField(bars *series.BarSeries, name string, mapper BarMapper) *indicator.Indicator[num.Num] {
	return indicator.New(bars, 0, func(index int64) num.Num {
		return mapper(bars.Get(index))
	}, indicator.Cacheless(), indicator.WithName(name))
}

func OpenPrices(bars *series.BarSeries) *indicator.Indicator[num.Num] {
	return BarField(bars, "open", BarOpenMapper)
}

func HighPrices(bars *series.BarSeries) *indicator.Indicator[num.Num] {
	return BarField(bars, "high", BarHighMapper)
}

func LowPrices(bars *series.BarSeries) *indicator.Indicator[num.Num] {
	return BarField(bars, "low", BarLowMapper)
}

func ClosePrices(bars *series.BarSeries) *indicator.Indicator[num.Num] {
	return BarField(bars, "close", BarCloseMapper)
}

func Volumes(bars *series.BarSeries) *indicator.Indicator[num.Num] {
	return BarField(bars, "volume", BarVolumeMapper)
}

func TradeCounts(bars *series.BarSeries) *indicator.Indicator[num.Num] {
	return BarField(bars, "tradeCount", BarTradeCountMapper)
}

// TypicalPrices is (high + low + close) / 3.
func TypicalPrices(bars *series.BarSeries) *indicator.Indicator[num.Num] {
	return BarField(bars, "typical", BarTypicalPriceMapper)
}

// NumValues reads the values of a NumSeries.
func NumValues(points *series.NumSeries) *indicator.Indicator[num.Num] {
	return indicator.New(points, 0, func(index int64) num.Num {
		return points.Get(index).Value
	}, indicator.Cacheless(), indicator.WithName("value"))
}
