package descriptive

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/sartorproj/numcalc/numerr"
	"github.com/sartorproj/numcalc/series"
)

// Summary bundles the descriptive statistics of one series.
type Summary struct {
	Count    int
	Min      float64
	Max      float64
	Q1       float64 // First quartile (Hyndman-Fan R8)
	Median   float64
	Q3       float64 // Third quartile (Hyndman-Fan R8)
	Mean     float64
	Mode     ModeResult
	Variance float64 // Population variance
	StdDev   float64 // Population standard deviation
}

// Describe computes a Summary of xs.
func Describe(xs []float64) (*Summary, error) {
	if len(xs) == 0 {
		return nil, numerr.New(numerr.EmptyInput, "descriptive.Describe", "xs", "")
	}

	s := series.New(xs)
	sample := stats.Sample{Xs: s.Copy().Values}
	sample.Sort()

	mean, _ := Mean(xs)
	median, _ := Median(xs)
	variance, _ := Variance(xs)
	mode, err := Mode(xs)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Count:    len(xs),
		Min:      s.Min(),
		Max:      s.Max(),
		Q1:       sample.Quantile(0.25),
		Median:   median,
		Q3:       sample.Quantile(0.75),
		Mean:     mean,
		Mode:     mode,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}
