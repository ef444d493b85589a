package regression

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/numcalc/numerr"
)

// Pearson returns the product-moment correlation of a and b, clamped to [-1, 1].
func Pearson(a, b []float64) (float64, error) {
	const op = "regression.Pearson"
	if err := checkPaired(op, a, b, 1); err != nil {
		return 0, err
	}
	if stat.PopVariance(a, nil) == 0 || stat.PopVariance(b, nil) == 0 {
		return 0, numerr.New(numerr.DegenerateInput, op, "a,b", "a column has zero variance")
	}
	return clamp(stat.Correlation(a, b, nil)), nil
}

// SignificanceResult holds the t statistic and two-tailed p-value of a correlation.
type SignificanceResult struct {
	T      float64
	DF     float64
	PValue float64
}

// Significance tests r against zero for a sample of size n.
func Significance(r float64, n int) (*SignificanceResult, error) {
	const op = "regression.Significance"
	if n < 3 {
		return nil, numerr.New(numerr.InsufficientData, op, "n", "n=%d, need at least 3", n)
	}
	if math.IsNaN(r) || math.Abs(r) > 1 {
		return nil, numerr.New(numerr.DomainError, op, "r", "r=%g outside [-1, 1]", r)
	}

	df := float64(n - 2)
	if math.Abs(r) == 1 {
		return &SignificanceResult{T: math.Copysign(math.Inf(1), r), DF: df, PValue: 0}, nil
	}

	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return &SignificanceResult{
		T:      t,
		DF:     df,
		PValue: 2 * dist.CDF(-math.Abs(t)),
	}, nil
}

// Matrix holds pairwise correlations and their p-values for a set of columns.
type Matrix struct {
	R [][]float64
	P [][]float64
	N int
}

// Correlate computes the correlation matrix of two or more equal-length
// columns. The diagonal has r = 1 and p = 0.
func Correlate(columns [][]float64) (*Matrix, error) {
	const op = "regression.Correlate"
	k := len(columns)
	if k < 2 {
		return nil, numerr.New(numerr.InsufficientData, op, "columns",
			"%d columns, need at least 2", k)
	}
	n := len(columns[0])
	for j, col := range columns {
		if len(col) != n {
			return nil, numerr.New(numerr.DomainError, op, "columns",
				"column %d has %d values, want %d", j, len(col), n)
		}
		if n > 0 && stat.PopVariance(col, nil) == 0 {
			return nil, numerr.New(numerr.DegenerateInput, op, "columns",
				"column %d has zero variance", j)
		}
	}
	if n < 3 {
		return nil, numerr.New(numerr.InsufficientData, op, "columns", "n=%d, need at least 3", n)
	}

	data := mat.NewDense(n, k, nil)
	for j, col := range columns {
		data.SetCol(j, col)
	}
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, data, nil)

	out := &Matrix{
		R: make([][]float64, k),
		P: make([][]float64, k),
		N: n,
	}
	for i := 0; i < k; i++ {
		out.R[i] = make([]float64, k)
		out.P[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			if i == j {
				out.R[i][j] = 1
				continue
			}
			r := clamp(corr.At(i, j))
			out.R[i][j] = r
			sig, err := Significance(r, n)
			if err != nil {
				return nil, err
			}
			out.P[i][j] = sig.PValue
		}
	}
	return out, nil
}

func clamp(r float64) float64 {
	return math.Max(-1, math.Min(1, r))
}
