// Package decision ranks alternatives in a payoff matrix under the classical
// criteria for decisions under uncertainty.
//
// Rows are alternatives and columns are states of nature. Every criterion
// breaks ties in favour of the lowest row index.
package decision

import (
	"github.com/samber/lo"

	"github.com/sartorproj/numcalc/numerr"
	"github.com/sartorproj/numcalc/series"
)

// Choice is the outcome of one criterion.
type Choice struct {
	Index  int       // Chosen alternative
	Value  float64   // Criterion value of the chosen alternative
	Scores []float64 // Criterion value of every alternative
}

// Result holds the choices of every criterion for one matrix.
type Result struct {
	Maximax       Choice
	Maximin       Choice
	Laplace       Choice
	Hurwicz       Choice
	MinimaxRegret Choice

	Alpha       float64
	ColumnBests []float64     // Best payoff per state
	Regret      series.Matrix // ColumnBests[j] - payoffs[i][j]
}

// Analyze applies all criteria to payoffs. alpha is the Hurwicz optimism
// coefficient in [0, 1].
func Analyze(payoffs series.Matrix, alpha float64) (*Result, error) {
	const op = "decision.Analyze"
	if err := payoffs.Validate(op); err != nil {
		return nil, err
	}
	if !(alpha >= 0 && alpha <= 1) {
		return nil, numerr.New(numerr.DomainError, op, "alpha", "alpha=%g outside [0, 1]", alpha)
	}

	rowMax := lo.Map(payoffs, func(row []float64, _ int) float64 { return lo.Max(row) })
	rowMin := lo.Map(payoffs, func(row []float64, _ int) float64 { return lo.Min(row) })
	rowMean := lo.Map(payoffs, func(row []float64, _ int) float64 {
		return lo.Sum(row) / float64(len(row))
	})
	hurwicz := lo.Map(payoffs, func(_ []float64, i int) float64 {
		return alpha*rowMax[i] + (1-alpha)*rowMin[i]
	})

	cols := payoffs.Cols()
	bests := make([]float64, cols)
	for j := 0; j < cols; j++ {
		bests[j] = lo.Max(payoffs.Column(j))
	}
	regret := series.Matrix(lo.Map(payoffs, func(row []float64, _ int) []float64 {
		return lo.Map(row, func(v float64, j int) float64 { return bests[j] - v })
	}))
	maxRegret := lo.Map(regret, func(row []float64, _ int) float64 { return lo.Max(row) })

	return &Result{
		Maximax:       pick(rowMax, greater),
		Maximin:       pick(rowMin, greater),
		Laplace:       pick(rowMean, greater),
		Hurwicz:       pick(hurwicz, greater),
		MinimaxRegret: pick(maxRegret, less),
		Alpha:         alpha,
		ColumnBests:   bests,
		Regret:        regret,
	}, nil
}

func greater(a, b float64) bool { return a > b }
func less(a, b float64) bool    { return a < b }

// pick returns the first index whose score is strictly better than all
// earlier ones.
func pick(scores []float64, better func(a, b float64) bool) Choice {
	best := 0
	for i := 1; i < len(scores); i++ {
		if better(scores[i], scores[best]) {
			best = i
		}
	}
	return Choice{Index: best, Value: scores[best], Scores: scores}
}
