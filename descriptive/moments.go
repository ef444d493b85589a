package descriptive

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/numcalc/numerr"
)

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, numerr.New(numerr.EmptyInput, "descriptive.Mean", "xs", "")
	}
	return stat.Mean(xs, nil), nil
}

// Median returns the middle value of xs, or the average of the two middle
// values when len(xs) is even.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, numerr.New(numerr.EmptyInput, "descriptive.Median", "xs", "")
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}
	return sorted[n/2], nil
}

// Variance returns the population variance Σ(x-μ)²/n.
func Variance(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, numerr.New(numerr.EmptyInput, "descriptive.Variance", "xs", "")
	}
	v := stat.PopVariance(xs, nil)
	if v < 0 {
		// compensated summation can leave a tiny negative residue
		v = 0
	}
	return v, nil
}

// StdDev returns the population standard deviation.
func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// SampleVariance returns the unbiased variance Σ(x-x̄)²/(n-1). It needs at
// least two observations.
func SampleVariance(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, numerr.New(numerr.EmptyInput, "descriptive.SampleVariance", "xs", "")
	}
	if len(xs) < 2 {
		return 0, numerr.New(numerr.InsufficientData, "descriptive.SampleVariance", "xs",
			"n=%d, need at least 2", len(xs))
	}
	v := stat.Variance(xs, nil)
	if v < 0 {
		v = 0
	}
	return v, nil
}

// SampleStdDev returns the square root of SampleVariance.
func SampleStdDev(xs []float64) (float64, error) {
	v, err := SampleVariance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// ExpectedValue returns Σ xᵢ·pᵢ. The probabilities must each lie in [0, 1]
// and sum to 1 within 1e-6.
func ExpectedValue(outcomes, probabilities []float64) (float64, error) {
	const op = "descriptive.ExpectedValue"
	if len(outcomes) == 0 {
		return 0, numerr.New(numerr.EmptyInput, op, "outcomes", "")
	}
	if len(outcomes) != len(probabilities) {
		return 0, numerr.New(numerr.DomainError, op, "probabilities",
			"%d probabilities for %d outcomes", len(probabilities), len(outcomes))
	}

	ev, total := 0.0, 0.0
	for i, p := range probabilities {
		if p < 0 || p > 1 {
			return 0, numerr.New(numerr.DomainError, op, "probabilities",
				"p[%d]=%g outside [0, 1]", i, p)
		}
		total += p
		ev += outcomes[i] * p
	}
	if math.Abs(total-1) > 1e-6 {
		return 0, numerr.New(numerr.DomainError, op, "probabilities",
			"probabilities sum to %g, want 1", total)
	}
	return ev, nil
}
