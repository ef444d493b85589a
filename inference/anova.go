package inference

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/numcalc/numerr"
)

// ANOVATable is the one-way analysis of variance of k groups.
type ANOVATable struct {
	BetweenSS float64
	WithinSS  float64
	BetweenDF float64 // k - 1
	WithinDF  float64 // N - k
	BetweenMS float64
	WithinMS  float64
	F         float64
	PValue    float64

	GrandMean  float64
	GroupMeans []float64
	GroupSizes []int
}

// OneWayANOVA tests whether the group means differ. Groups may have
// different sizes but each needs at least two observations.
func OneWayANOVA(groups [][]float64) (*ANOVATable, error) {
	const op = "inference.OneWayANOVA"
	k := len(groups)
	if k < 2 {
		return nil, numerr.New(numerr.InsufficientData, op, "groups",
			"%d groups, need at least 2", k)
	}

	table := &ANOVATable{
		GroupMeans: make([]float64, k),
		GroupSizes: make([]int, k),
	}
	total, n := 0.0, 0
	for i, g := range groups {
		if err := checkSample(op, "groups", g, 2); err != nil {
			return nil, err
		}
		table.GroupMeans[i] = stat.Mean(g, nil)
		table.GroupSizes[i] = len(g)
		for _, v := range g {
			total += v
		}
		n += len(g)
	}
	table.GrandMean = total / float64(n)

	for i, g := range groups {
		d := table.GroupMeans[i] - table.GrandMean
		table.BetweenSS += float64(len(g)) * d * d
		for _, v := range g {
			e := v - table.GroupMeans[i]
			table.WithinSS += e * e
		}
	}

	table.BetweenDF = float64(k - 1)
	table.WithinDF = float64(n - k)
	table.BetweenMS = table.BetweenSS / table.BetweenDF
	table.WithinMS = table.WithinSS / table.WithinDF
	if table.WithinMS == 0 {
		return nil, numerr.New(numerr.DegenerateInput, op, "groups",
			"within-group variance is zero")
	}

	table.F = table.BetweenMS / table.WithinMS
	table.PValue = distuv.F{D1: table.BetweenDF, D2: table.WithinDF}.Survival(table.F)
	return table, nil
}

// Comparison is one pairwise Tukey HSD test between groups I < J.
type Comparison struct {
	I, J        int
	MeanDiff    float64 // mean[I] - mean[J]
	Q           float64
	PValue      float64
	Significant bool
}

// TukeyHSD runs all pairwise comparisons after a significant ANOVA. A nil
// table is computed from groups. When the ANOVA p-value is not below alpha
// no comparisons are returned.
func TukeyHSD(groups [][]float64, table *ANOVATable, alpha float64) ([]Comparison, error) {
	const op = "inference.TukeyHSD"
	if !(alpha > 0 && alpha < 1) {
		return nil, numerr.New(numerr.DomainError, op, "alpha", "alpha=%g outside (0, 1)", alpha)
	}
	if table == nil {
		var err error
		if table, err = OneWayANOVA(groups); err != nil {
			return nil, err
		}
	}
	k := len(table.GroupMeans)
	if len(groups) != k {
		return nil, numerr.New(numerr.DomainError, op, "table",
			"table has %d groups, got %d", k, len(groups))
	}

	comparisons := []Comparison{}
	if table.PValue >= alpha {
		return comparisons, nil
	}

	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			ni, nj := float64(table.GroupSizes[i]), float64(table.GroupSizes[j])
			diff := table.GroupMeans[i] - table.GroupMeans[j]
			se := math.Sqrt(table.WithinMS / 2 * (1/ni + 1/nj))
			q := math.Abs(diff) / se

			p := 1 - StudentizedRangeCDF(q, float64(k), table.WithinDF)
			p = math.Max(0, math.Min(1, p))

			comparisons = append(comparisons, Comparison{
				I:           i,
				J:           j,
				MeanDiff:    diff,
				Q:           q,
				PValue:      p,
				Significant: p < alpha,
			})
		}
	}
	return comparisons, nil
}
