package algebra

import (
	"math"

	"github.com/sartorproj/numcalc/numerr"
)

// Progression is the n-th term and partial sum of a sequence.
type Progression struct {
	Last float64
	Sum  float64
}

// ArithmeticSum returns the n-th term a1+(n-1)d and the sum of the first n
// terms.
func ArithmeticSum(a1, d float64, n int) (*Progression, error) {
	if n < 1 {
		return nil, numerr.New(numerr.DomainError, "algebra.ArithmeticSum", "n", "n=%d must be >= 1", n)
	}
	fn := float64(n)
	last := a1 + (fn-1)*d
	return &Progression{Last: last, Sum: fn / 2 * (a1 + last)}, nil
}

// GeometricSum returns the n-th term a1·r^(n-1) and the sum of the first n
// terms.
func GeometricSum(a1, r float64, n int) (*Progression, error) {
	const op = "algebra.GeometricSum"
	if n < 1 {
		return nil, numerr.New(numerr.DomainError, op, "n", "n=%d must be >= 1", n)
	}
	fn := float64(n)
	last := a1 * math.Pow(r, fn-1)

	var sum float64
	if r == 1 {
		sum = a1 * fn
	} else {
		sum = a1 * (1 - math.Pow(r, fn)) / (1 - r)
	}
	if math.IsInf(sum, 0) || math.IsNaN(sum) || math.IsInf(last, 0) {
		return nil, numerr.New(numerr.Overflow, op, "", "sum of %d terms exceeds float64 range", n)
	}
	return &Progression{Last: last, Sum: sum}, nil
}

// Power returns base^exp.
func Power(base, exp float64) (float64, error) {
	const op = "algebra.Power"
	v := math.Pow(base, exp)
	switch {
	case math.IsNaN(v):
		return 0, numerr.New(numerr.DomainError, op, "base", "%g^%g is not a real number", base, exp)
	case math.IsInf(v, 0):
		return 0, numerr.New(numerr.Overflow, op, "", "%g^%g exceeds float64 range", base, exp)
	}
	return v, nil
}

// Log returns the base-b logarithm of x.
func Log(base, x float64) (float64, error) {
	const op = "algebra.Log"
	switch {
	case !(x > 0):
		return 0, numerr.New(numerr.DomainError, op, "x", "x=%g must be positive", x)
	case !(base > 0) || base == 1:
		return 0, numerr.New(numerr.DomainError, op, "base", "base=%g must be positive and != 1", base)
	}
	return math.Log(x) / math.Log(base), nil
}
