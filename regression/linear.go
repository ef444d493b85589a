package regression

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/numcalc/numerr"
)

// Result holds a fitted least-squares line y = Slope·x + Intercept.
type Result struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	N         int
}

// Predict evaluates the fitted line at x.
func (r *Result) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// Linear fits y on x by ordinary least squares.
func Linear(x, y []float64) (*Result, error) {
	const op = "regression.Linear"
	if err := checkPaired(op, x, y, 2); err != nil {
		return nil, err
	}
	if stat.PopVariance(x, nil) == 0 {
		return nil, numerr.New(numerr.DegenerateInput, op, "x", "x has zero variance")
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	// a constant y is fitted exactly by a flat line
	r2 := 1.0
	if stat.PopVariance(y, nil) > 0 {
		r2 = stat.RSquared(x, y, nil, intercept, slope)
	}

	return &Result{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  math.Max(0, math.Min(1, r2)),
		N:         len(x),
	}, nil
}

func checkPaired(op string, x, y []float64, min int) error {
	if len(x) == 0 || len(y) == 0 {
		return numerr.New(numerr.EmptyInput, op, "x,y", "")
	}
	if len(x) != len(y) {
		return numerr.New(numerr.DomainError, op, "x,y",
			"length mismatch: %d vs %d", len(x), len(y))
	}
	if len(x) < min {
		return numerr.New(numerr.InsufficientData, op, "x,y",
			"n=%d, need at least %d", len(x), min)
	}
	return nil
}
