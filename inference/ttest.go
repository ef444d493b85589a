package inference

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/numcalc/numerr"
)

// TestResult is the statistic, degrees of freedom, and p-value of a
// hypothesis test.
type TestResult struct {
	Statistic float64
	DF        float64
	PValue    float64
}

// WelchTTest compares the means of a and b without assuming equal
// variances. The p-value is two-tailed with Welch-Satterthwaite degrees of
// freedom.
func WelchTTest(a, b []float64) (*TestResult, error) {
	const op = "inference.WelchTTest"
	if err := checkSample(op, "a", a, 2); err != nil {
		return nil, err
	}
	if err := checkSample(op, "b", b, 2); err != nil {
		return nil, err
	}

	na, nb := float64(len(a)), float64(len(b))
	ma, va := stat.MeanVariance(a, nil)
	mb, vb := stat.MeanVariance(b, nil)

	sa, sb := va/na, vb/nb
	se := math.Sqrt(sa + sb)
	if se == 0 {
		return nil, numerr.New(numerr.DegenerateInput, op, "a,b", "both samples have zero variance")
	}

	t := (ma - mb) / se
	df := (sa + sb) * (sa + sb) / (sa*sa/(na-1) + sb*sb/(nb-1))

	return &TestResult{
		Statistic: t,
		DF:        df,
		PValue:    twoTailedT(t, df),
	}, nil
}

func twoTailedT(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.CDF(-math.Abs(t))
}

func checkSample(op, name string, xs []float64, min int) error {
	if len(xs) == 0 {
		return numerr.New(numerr.EmptyInput, op, name, "")
	}
	if len(xs) < min {
		return numerr.New(numerr.InsufficientData, op, name,
			"n=%d, need at least %d", len(xs), min)
	}
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return numerr.New(numerr.DomainError, op, name, "value %d is not finite", i)
		}
	}
	return nil
}
