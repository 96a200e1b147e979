package num

// Num is the numeric value every formula computes with. Implementations are
// immutable; every operation returns a new value.
//
// Operations involving NaN return NaN, division by zero returns NaN.
type Num interface {
	Add(o Num) Num
	Sub(o Num) Num
	Mul(o Num) Num
	Div(o Num) Num
	Neg() Num
	Abs() Num
	Sqrt() Num
	Pow(o Num) Num
	Sin() Num
	Cos() Num
	Min(o Num) Num
	Max(o Num) Num

	// Cmp returns -1, 0 or 1. Any comparison with NaN returns 0.
	Cmp(o Num) int

	IsZero() bool
	IsNaN() bool
	IsPositive() bool
	IsNegative() bool

	Float64() float64
	String() string

	Factory() Factory
}

// Factory creates Nums of one representation.
type Factory interface {
	Of(v float64) Num
	OfInt(v int64) Num
	OfString(s string) (Num, error)

	Zero() Num
	One() Num
	Two() Num
	NaN() Num

	// Random returns a uniformly distributed value in [0, 1).
	Random() Num
}

// IsEqual reports whether a and b differ by at most epsilon. A nil epsilon
// requires exact equality. NaN is never equal to anything.
func IsEqual(a, b, epsilon Num) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}

	if epsilon == nil {
		return a.Cmp(b) == 0
	}

	return a.Sub(b).Abs().Cmp(epsilon) <= 0
}

// IsNaN reports whether n is nil or NaN.
func IsNaN(n Num) bool {
	return n == nil || n.IsNaN()
}

type nan struct {
	factory Factory
}

func (n nan) Add(Num) Num      { return n }
func (n nan) Sub(Num) Num      { return n }
func (n nan) Mul(Num) Num      { return n }
func (n nan) Div(Num) Num      { return n }
func (n nan) Neg() Num         { return n }
func (n nan) Abs() Num         { return n }
func (n nan) Sqrt() Num        { return n }
func (n nan) Pow(Num) Num      { return n }
func (n nan) Sin() Num         { return n }
func (n nan) Cos() Num         { return n }
func (n nan) Min(Num) Num      { return n }
func (n nan) Max(Num) Num      { return n }
func (n nan) Cmp(Num) int      { return 0 }
func (n nan) IsZero() bool     { return false }
func (n nan) IsNaN() bool      { return true }
func (n nan) IsPositive() bool { return false }
func (n nan) IsNegative() bool { return false }
func (n nan) String() string   { return "NaN" }
func (n nan) Factory() Factory { return n.factory }

func (n nan) Float64() float64 {
	return nanFloat
}
