package num

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of fractional digits kept by division and
// square roots of the default decimal factory.
const DefaultPrecision int32 = 32

const maxSqrtIterations = 100

var decimalTwo = decimal.NewFromInt(2)

// DecimalFactory returns an arbitrary precision factory backed by
// shopspring/decimal. Inexact operations round to precision digits.
func DecimalFactory(precision int32) Factory {
	if precision <= 0 {
		precision = DefaultPrecision
	}

	return &decimalFactory{precision: precision}
}

type decimalFactory struct {
	precision int32
}

func (f *decimalFactory) Of(v float64) Num {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.NaN()
	}
	return f.wrap(decimal.NewFromFloat(v))
}

func (f *decimalFactory) OfInt(v int64) Num {
	return f.wrap(decimal.NewFromInt(v))
}

func (f *decimalFactory) OfString(s string) (Num, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "can not parse %q as decimal", s)
	}

	return f.wrap(d), nil
}

func (f *decimalFactory) Zero() Num { return f.wrap(decimal.Zero) }
func (f *decimalFactory) One() Num  { return f.wrap(decimal.NewFromInt(1)) }
func (f *decimalFactory) Two() Num  { return f.wrap(decimalTwo) }
func (f *decimalFactory) NaN() Num  { return nan{factory: f} }

func (f *decimalFactory) Random() Num {
	return f.wrap(decimal.NewFromFloat(rand.Float64()))
}

func (f *decimalFactory) wrap(d decimal.Decimal) Decimal {
	return Decimal{d: d, factory: f}
}

// Decimal is an arbitrary precision Num.
type Decimal struct {
	d       decimal.Decimal
	factory *decimalFactory
}

// Decimal exposes the underlying shopspring value.
func (v Decimal) Decimal() decimal.Decimal {
	return v.d
}

func (v Decimal) operand(o Num) (decimal.Decimal, bool) {
	if o == nil || o.IsNaN() {
		return decimal.Zero, false
	}

	if d, ok := o.(Decimal); ok {
		return d.d, true
	}

	return decimal.NewFromFloat(o.Float64()), true
}

func (v Decimal) binary(o Num, op func(a, b decimal.Decimal) Num) Num {
	b, ok := v.operand(o)
	if !ok {
		return v.factory.NaN()
	}

	return op(v.d, b)
}

func (v Decimal) Add(o Num) Num {
	return v.binary(o, func(a, b decimal.Decimal) Num { return v.factory.wrap(a.Add(b)) })
}

func (v Decimal) Sub(o Num) Num {
	return v.binary(o, func(a, b decimal.Decimal) Num { return v.factory.wrap(a.Sub(b)) })
}

func (v Decimal) Mul(o Num) Num {
	return v.binary(o, func(a, b decimal.Decimal) Num { return v.factory.wrap(a.Mul(b)) })
}

func (v Decimal) Div(o Num) Num {
	return v.binary(o, func(a, b decimal.Decimal) Num {
		if b.IsZero() {
			return v.factory.NaN()
		}
		return v.factory.wrap(a.DivRound(b, v.factory.precision))
	})
}

func (v Decimal) Pow(o Num) Num {
	return v.binary(o, func(a, b decimal.Decimal) Num {
		r, err := a.PowWithPrecision(b, v.factory.precision)
		if err != nil {
			return v.factory.NaN()
		}
		return v.factory.wrap(r)
	})
}

func (v Decimal) Min(o Num) Num {
	return v.binary(o, func(a, b decimal.Decimal) Num { return v.factory.wrap(decimal.Min(a, b)) })
}

func (v Decimal) Max(o Num) Num {
	return v.binary(o, func(a, b decimal.Decimal) Num { return v.factory.wrap(decimal.Max(a, b)) })
}

func (v Decimal) Neg() Num { return v.factory.wrap(v.d.Neg()) }
func (v Decimal) Abs() Num { return v.factory.wrap(v.d.Abs()) }
func (v Decimal) Sin() Num { return v.factory.wrap(v.d.Sin()) }
func (v Decimal) Cos() Num { return v.factory.wrap(v.d.Cos()) }

// Sqrt uses Newton's method seeded with the float64 square root.
func (v Decimal) Sqrt() Num {
	if v.d.IsNegative() {
		return v.factory.NaN()
	}

	if v.d.IsZero() {
		return v
	}

	precision := v.factory.precision
	x := v.d
	if guess := math.Sqrt(v.d.InexactFloat64()); guess > 0 && !math.IsInf(guess, 0) {
		x = decimal.NewFromFloat(guess)
	}

	for i := 0; i < maxSqrtIterations; i++ {
		next := x.Add(v.d.DivRound(x, precision)).DivRound(decimalTwo, precision)
		if next.Equal(x) {
			break
		}
		x = next
	}

	return v.factory.wrap(x)
}

func (v Decimal) Cmp(o Num) int {
	b, ok := v.operand(o)
	if !ok {
		return 0
	}
	return v.d.Cmp(b)
}

func (v Decimal) IsZero() bool     { return v.d.IsZero() }
func (v Decimal) IsNaN() bool      { return false }
func (v Decimal) IsPositive() bool { return v.d.IsPositive() }
func (v Decimal) IsNegative() bool { return v.d.IsNegative() }
func (v Decimal) Float64() float64 { return v.d.InexactFloat64() }
func (v Decimal) String() string   { return v.d.String() }
func (v Decimal) Factory() Factory { return v.factory }
