package types

import (
	"fmt"
	"time"

	"github.com/c9s/indicators/pkg/num"
)

// Bar is one OHLCV sample over [Start, End). Bars are immutable; the mutating
// helpers return a new Bar.
type Bar struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Open       num.Num `json:"open"`
	High       num.Num `json:"high"`
	Low        num.Num `json:"low"`
	Close      num.Num `json:"close"`
	Volume     num.Num `json:"volume"`
	TradeCount num.Num `json:"tradeCount"`
}

func NewBar(start time.Time, duration time.Duration, open, high, low, close, volume, tradeCount num.Num) Bar {
	return Bar{
		Start:      start,
		End:        start.Add(duration),
		Open:       open,
		High:       high,
		Low:        low,
		Close:      close,
		Volume:     volume,
		TradeCount: tradeCount,
	}
}

// NewTradeBar creates a bar from a single trade.
func NewTradeBar(start time.Time, duration time.Duration, price, volume num.Num) Bar {
	return NewBar(start, duration, price, price, price, price, volume, price.Factory().One())
}

func (b Bar) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// AddPrice folds a price update without volume into the bar.
func (b Bar) AddPrice(price num.Num) Bar {
	return b.AddTrade(price, nil)
}

// AddTrade folds a trade into the bar. A nil volume leaves Volume unchanged.
func (b Bar) AddTrade(price, volume num.Num) Bar {
	out := b
	out.High = b.High.Max(price)
	out.Low = b.Low.Min(price)
	out.Close = price
	if volume != nil {
		out.Volume = b.Volume.Add(volume)
	}
	out.TradeCount = b.TradeCount.Add(b.TradeCount.Factory().One())
	return out
}

// Aggregate merges two bars into one that spans both.
func (b Bar) Aggregate(o Bar) Bar {
	out := Bar{
		High:       b.High.Max(o.High),
		Low:        b.Low.Min(o.Low),
		Volume:     b.Volume.Add(o.Volume),
		TradeCount: b.TradeCount.Add(o.TradeCount),
	}

	if !b.Start.After(o.Start) {
		out.Start, out.Open = b.Start, b.Open
	} else {
		out.Start, out.Open = o.Start, o.Open
	}

	if !o.End.Before(b.End) {
		out.End, out.Close = o.End, o.Close
	} else {
		out.End, out.Close = b.End, b.Close
	}

	return out
}

// ContainsTime reports whether t is in [Start, End).
func (b Bar) ContainsTime(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

func (b Bar) Overlaps(o Bar) bool {
	return b.ContainsTime(o.Start) || b.ContainsTime(o.End)
}

func (b Bar) IsBullish() bool {
	return b.Close.Cmp(b.Open) > 0
}

func (b Bar) IsBearish() bool {
	return b.Close.Cmp(b.Open) < 0
}

func (b Bar) String() string {
	return fmt.Sprintf("Bar %s %s O: %s H: %s L: %s C: %s V: %s",
		b.Start.Format(time.RFC3339), b.Duration(), b.Open, b.High, b.Low, b.Close, b.Volume)
}

// NumDatapoint is a timestamped Num.
type NumDatapoint struct {
	Time  time.Time `json:"time"`
	Value num.Num   `json:"value"`
}
