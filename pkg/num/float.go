package num

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/pkg/errors"
)

var nanFloat = math.NaN()

var floatFactoryInstance = &floatFactory{}

// FloatFactory returns the float64 backed factory.
func FloatFactory() Factory {
	return floatFactoryInstance
}

type floatFactory struct{}

func (f *floatFactory) Of(v float64) Num {
	return f.wrap(v)
}

func (f *floatFactory) OfInt(v int64) Num {
	return Float(v)
}

func (f *floatFactory) OfString(s string) (Num, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "can not parse %q as float", s)
	}

	return f.wrap(v), nil
}

func (f *floatFactory) Zero() Num   { return Float(0) }
func (f *floatFactory) One() Num    { return Float(1) }
func (f *floatFactory) Two() Num    { return Float(2) }
func (f *floatFactory) NaN() Num    { return nan{factory: f} }
func (f *floatFactory) Random() Num { return Float(rand.Float64()) }

func (f *floatFactory) wrap(v float64) Num {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.NaN()
	}
	return Float(v)
}

// Float is a float64 Num.
type Float float64

func (v Float) operand(o Num) (float64, bool) {
	if o == nil || o.IsNaN() {
		return 0, false
	}

	if f, ok := o.(Float); ok {
		return float64(f), true
	}

	return o.Float64(), true
}

func (v Float) binary(o Num, op func(a, b float64) float64) Num {
	b, ok := v.operand(o)
	if !ok {
		return floatFactoryInstance.NaN()
	}

	return floatFactoryInstance.wrap(op(float64(v), b))
}

func (v Float) Add(o Num) Num {
	return v.binary(o, func(a, b float64) float64 { return a + b })
}

func (v Float) Sub(o Num) Num {
	return v.binary(o, func(a, b float64) float64 { return a - b })
}

func (v Float) Mul(o Num) Num {
	return v.binary(o, func(a, b float64) float64 { return a * b })
}

func (v Float) Div(o Num) Num {
	return v.binary(o, func(a, b float64) float64 {
		if b == 0 {
			return nanFloat
		}
		return a / b
	})
}

func (v Float) Pow(o Num) Num {
	return v.binary(o, math.Pow)
}

func (v Float) Min(o Num) Num {
	return v.binary(o, math.Min)
}

func (v Float) Max(o Num) Num {
	return v.binary(o, math.Max)
}

func (v Float) Neg() Num  { return -v }
func (v Float) Abs() Num  { return Float(math.Abs(float64(v))) }
func (v Float) Sqrt() Num { return floatFactoryInstance.wrap(math.Sqrt(float64(v))) }
func (v Float) Sin() Num  { return Float(math.Sin(float64(v))) }
func (v Float) Cos() Num  { return Float(math.Cos(float64(v))) }

func (v Float) Cmp(o Num) int {
	b, ok := v.operand(o)
	if !ok {
		return 0
	}

	switch {
	case float64(v) < b:
		return -1
	case float64(v) > b:
		return 1
	}
	return 0
}

func (v Float) IsZero() bool     { return v == 0 }
func (v Float) IsNaN() bool      { return false }
func (v Float) IsPositive() bool { return v > 0 }
func (v Float) IsNegative() bool { return v < 0 }
func (v Float) Float64() float64 { return float64(v) }
func (v Float) Factory() Factory { return floatFactoryInstance }

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}
