package inference

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/numcalc/numerr"
)

// sumTolerance is the largest observed/expected total difference that is
// not flagged as a mismatch.
const sumTolerance = 1e-6

// ChiSquareResult is a goodness-of-fit test outcome.
type ChiSquareResult struct {
	TestResult
	ObservedTotal float64
	ExpectedTotal float64
	// SumMismatch is set when the totals differ; the statistic is still
	// computed but is usually not meaningful.
	SumMismatch bool
}

// ChiSquareGoodnessOfFit tests observed category counts against expected
// counts with k-1 degrees of freedom.
func ChiSquareGoodnessOfFit(observed, expected []float64) (*ChiSquareResult, error) {
	const op = "inference.ChiSquareGoodnessOfFit"
	if len(observed) != len(expected) {
		return nil, numerr.New(numerr.DomainError, op, "expected",
			"%d expected counts for %d categories", len(expected), len(observed))
	}
	if err := checkSample(op, "observed", observed, 2); err != nil {
		return nil, err
	}

	chi, obsTotal, expTotal := 0.0, 0.0, 0.0
	for i, e := range expected {
		if !(e > 0) || math.IsInf(e, 0) {
			return nil, numerr.New(numerr.DomainError, op, "expected",
				"expected[%d]=%g must be positive", i, e)
		}
		d := observed[i] - e
		chi += d * d / e
		obsTotal += observed[i]
		expTotal += e
	}

	df := float64(len(observed) - 1)
	return &ChiSquareResult{
		TestResult: TestResult{
			Statistic: chi,
			DF:        df,
			PValue:    distuv.ChiSquared{K: df}.Survival(chi),
		},
		ObservedTotal: obsTotal,
		ExpectedTotal: expTotal,
		SumMismatch:   math.Abs(obsTotal-expTotal) > sumTolerance,
	}, nil
}
