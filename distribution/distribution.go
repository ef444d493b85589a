package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/sartorproj/numcalc/descriptive"
	"github.com/sartorproj/numcalc/numerr"
)

// Kind identifies a distribution family.
type Kind string

const (
	KindBinomial Kind = "binomial"
	KindPoisson  Kind = "poisson"
)

// Distribution is a discrete distribution with a closed-form mean and variance.
type Distribution interface {
	Kind() Kind
	PMF(x float64) (float64, error)
	Mean() float64
	Variance() float64
}

// Binomial is the number of successes in N independent trials with
// success probability P.
type Binomial struct {
	N float64
	P float64
}

// Kind implements Distribution.
func (b Binomial) Kind() Kind { return KindBinomial }

// Mean returns N·P.
func (b Binomial) Mean() float64 { return b.N * b.P }

// Variance returns N·P·(1-P).
func (b Binomial) Variance() float64 { return b.N * b.P * (1 - b.P) }

// PMF returns P(X = x).
func (b Binomial) PMF(x float64) (float64, error) {
	return BinomialPMF(b.N, b.P, x)
}

// Validate checks the parameters.
func (b Binomial) Validate() error {
	const op = "distribution.Binomial"
	if b.N < 1 || !isInteger(b.N) {
		return numerr.New(numerr.DomainError, op, "n", "n=%g must be an integer >= 1", b.N)
	}
	if math.IsNaN(b.P) || b.P < 0 || b.P > 1 {
		return numerr.New(numerr.DomainError, op, "p", "p=%g outside [0, 1]", b.P)
	}
	return nil
}

// BinomialPMF returns C(n,x)·p^x·(1-p)^(n-x), evaluated in log space.
func BinomialPMF(n, p, x float64) (float64, error) {
	if err := (Binomial{N: n, P: p}).Validate(); err != nil {
		return 0, err
	}
	if x < 0 || x > n || !isInteger(x) {
		return 0, numerr.New(numerr.DomainError, "distribution.BinomialPMF", "x",
			"x=%g must be an integer in [0, %g]", x, n)
	}
	switch p {
	case 0:
		return indicator(x == 0), nil
	case 1:
		return indicator(x == n), nil
	}
	logPMF := combin.LogGeneralizedBinomial(n, x) + x*math.Log(p) + (n-x)*math.Log1p(-p)
	return finite("distribution.BinomialPMF", math.Exp(logPMF))
}

// Poisson counts events occurring at average rate Lambda.
type Poisson struct {
	Lambda float64
}

// Kind implements Distribution.
func (p Poisson) Kind() Kind { return KindPoisson }

// Mean returns Lambda.
func (p Poisson) Mean() float64 { return p.Lambda }

// Variance returns Lambda.
func (p Poisson) Variance() float64 { return p.Lambda }

// PMF returns P(X = x).
func (p Poisson) PMF(x float64) (float64, error) {
	return PoissonPMF(p.Lambda, x)
}

// Validate checks the parameters.
func (p Poisson) Validate() error {
	if !(p.Lambda > 0) || math.IsInf(p.Lambda, 0) {
		return numerr.New(numerr.DomainError, "distribution.Poisson", "lambda",
			"lambda=%g must be positive and finite", p.Lambda)
	}
	return nil
}

// PoissonPMF returns λ^x·e^(-λ)/x!, evaluated in log space. x is limited
// to descriptive.MaxFactorial.
func PoissonPMF(lambda, x float64) (float64, error) {
	if err := (Poisson{Lambda: lambda}).Validate(); err != nil {
		return 0, err
	}
	if x < 0 || !isInteger(x) {
		return 0, numerr.New(numerr.DomainError, "distribution.PoissonPMF", "x",
			"x=%g must be a non-negative integer", x)
	}
	if x > descriptive.MaxFactorial {
		return 0, numerr.New(numerr.Overflow, "distribution.PoissonPMF", "x",
			"%g! exceeds the float64 range", x)
	}
	logPMF := x*math.Log(lambda) - lambda - logFactorial(x)
	return finite("distribution.PoissonPMF", math.Exp(logPMF))
}

func logFactorial(n float64) float64 {
	v, _ := math.Lgamma(n + 1)
	return v
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// finite rejects a pmf value that left the representable range.
func finite(op string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, numerr.New(numerr.Overflow, op, "", "probability is not finite")
	}
	return v, nil
}

func isInteger(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}
