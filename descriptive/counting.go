package descriptive

import (
	"math"

	"github.com/sartorproj/numcalc/numerr"
)

// MaxFactorial is the largest n whose factorial fits in a float64.
const MaxFactorial = 170

// Factorial returns n! for a non-negative integer n. Values above
// MaxFactorial report Overflow instead of +Inf.
func Factorial(n float64) (float64, error) {
	const op = "descriptive.Factorial"
	if n < 0 || n != math.Trunc(n) || math.IsInf(n, 0) {
		return 0, numerr.New(numerr.DomainError, op, "n", "n=%g must be a non-negative integer", n)
	}
	if n > MaxFactorial {
		return 0, numerr.New(numerr.Overflow, op, "n", "n=%g exceeds %d", n, MaxFactorial)
	}

	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
	}
	return r, nil
}

// Combinations returns C(n, k). Invalid arguments (k < 0, k > n, or
// non-integers) yield 0 so that an impossible count contributes no
// probability mass.
func Combinations(n, k float64) float64 {
	if k < 0 || k > n || n != math.Trunc(n) || k != math.Trunc(k) {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n/2 {
		k = n - k
	}

	res := 1.0
	for i := 1.0; i <= k; i++ {
		res = res * (n - i + 1) / i
	}
	return res
}

// GCD returns the greatest common divisor of |a| and |b|. gcd(0, 0) is
// undefined and reports DomainError.
func GCD(a, b int) (int, error) {
	if a == 0 && b == 0 {
		return 0, numerr.New(numerr.DomainError, "descriptive.GCD", "a,b", "gcd(0, 0) is undefined")
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a, nil
}

// SimplifyRatio reduces a:b to lowest terms. 0:0 is returned unchanged.
func SimplifyRatio(a, b int) (int, int, error) {
	if a < 0 || b < 0 {
		return 0, 0, numerr.New(numerr.DomainError, "descriptive.SimplifyRatio", "a,b",
			"ratio terms must be non-negative, got %d:%d", a, b)
	}
	if a == 0 && b == 0 {
		return 0, 0, nil
	}
	g, err := GCD(a, b)
	if err != nil {
		return 0, 0, err
	}
	return a / g, b / g, nil
}
