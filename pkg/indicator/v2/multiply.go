package indicatorv2

import (
	"github.com/c9s/indicators/pkg/indicator"
	"github.com/c9s/indicators/pkg/num"
)

// Unary applies op to every value of a.
func Unary[A, R any](name string, op func(A) R, a indicator.Interface[A]) *indicator.Indicator[R] {
	return indicator.New(a.Source(), a.MinimumStableIndex(), func(index int64) R {
		return op(a.Value(index))
	}, indicator.WithName(name))
}

// Binary applies op to the values of a and b at the same index. Both operands
// must be bound to the same series.
func Binary[A, B, R any](name string, op func(A, B) R, a indicator.Interface[A], b indicator.Interface[B]) *indicator.Indicator[R] {
	return indicator.New(a.Source(), indicator.StableIndex(0, a, b), func(index int64) R {
		return op(a.Value(index), b.Value(index))
	}, indicator.WithName(name))
}

func Add(a, b NumIndicator) *indicator.Indicator[num.Num] {
	return Binary("add", num.Num.Add, a, b)
}

func Subtract(a, b NumIndicator) *indicator.Indicator[num.Num] {
	return Binary("subtract", num.Num.Sub, a, b)
}

func Multiply(a, b NumIndicator) *indicator.Indicator[num.Num] {
	return Binary("multiply", num.Num.Mul, a, b)
}

func Divide(a, b NumIndicator) *indicator.Indicator[num.Num] {
	return Binary("divide", num.Num.Div, a, b)
}

func Negate(a NumIndicator) *indicator.Indicator[num.Num] {
	return Unary("negate", num.Num.Neg, a)
}

func Abs(a NumIndicator) *indicator.Indicator[num.Num] {
	return Unary("abs", num.Num.Abs, a)
}

// Scale multiplies every value of a by factor.
func Scale(a NumIndicator, factor num.Num) *indicator.Indicator[num.Num] {
	return Unary("scale", func(v num.Num) num.Num { return v.Mul(factor) }, a)
}
