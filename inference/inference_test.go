package inference

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/numcalc/numerr"
)

func TestWelchTTest(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 4, 6, 8, 10}

	res, err := WelchTTest(a, b)
	if err != nil {
		t.Fatalf("WelchTTest failed: %v", err)
	}
	// se² = 2.5/5 + 10/5
	if math.Abs(res.Statistic-(-3/math.Sqrt(2.5))) > 1e-12 {
		t.Errorf("Unexpected t %f", res.Statistic)
	}
	if math.Abs(res.DF-6.25/1.0625) > 1e-12 {
		t.Errorf("Unexpected df %f", res.DF)
	}
	if res.PValue < 0.09 || res.PValue > 0.13 {
		t.Errorf("Expected p ≈ 0.11, got %f", res.PValue)
	}

	same, _ := WelchTTest(a, a)
	if same.Statistic != 0 || math.Abs(same.PValue-1) > 1e-12 {
		t.Errorf("Identical samples should give t=0 p=1, got %+v", same)
	}
}

func TestWelchTTestErrors(t *testing.T) {
	if _, err := WelchTTest([]float64{1}, []float64{1, 2}); !errors.Is(err, numerr.InsufficientData) {
		t.Errorf("Expected InsufficientData, got %v", err)
	}
	if _, err := WelchTTest([]float64{1, 1}, []float64{2, 2}); !errors.Is(err, numerr.DegenerateInput) {
		t.Errorf("Expected DegenerateInput, got %v", err)
	}
	if _, err := WelchTTest(nil, []float64{1, 2}); !errors.Is(err, numerr.EmptyInput) {
		t.Errorf("Expected EmptyInput, got %v", err)
	}
}

func TestChiSquareGoodnessOfFit(t *testing.T) {
	res, err := ChiSquareGoodnessOfFit([]float64{50, 30, 20}, []float64{40, 40, 20})
	if err != nil {
		t.Fatalf("ChiSquareGoodnessOfFit failed: %v", err)
	}
	if math.Abs(res.Statistic-5) > 1e-12 {
		t.Errorf("Expected χ² = 5, got %f", res.Statistic)
	}
	if res.DF != 2 {
		t.Errorf("Expected df 2, got %f", res.DF)
	}
	// with two degrees of freedom the survival function is exp(-x/2)
	if math.Abs(res.PValue-math.Exp(-2.5)) > 1e-10 {
		t.Errorf("Expected p = %f, got %f", math.Exp(-2.5), res.PValue)
	}
	if res.SumMismatch {
		t.Error("Totals match, SumMismatch should be false")
	}

	off, err := ChiSquareGoodnessOfFit([]float64{50, 30, 20}, []float64{40, 40, 30})
	if err != nil {
		t.Fatalf("ChiSquareGoodnessOfFit failed: %v", err)
	}
	if !off.SumMismatch || off.ObservedTotal != 100 || off.ExpectedTotal != 110 {
		t.Errorf("Expected a flagged mismatch 100 vs 110, got %+v", off)
	}
}

func TestChiSquareErrors(t *testing.T) {
	if _, err := ChiSquareGoodnessOfFit([]float64{1, 2}, []float64{1}); !errors.Is(err, numerr.DomainError) {
		t.Errorf("Expected DomainError for length mismatch, got %v", err)
	}
	if _, err := ChiSquareGoodnessOfFit([]float64{1}, []float64{1}); !errors.Is(err, numerr.InsufficientData) {
		t.Errorf("Expected InsufficientData for one category, got %v", err)
	}
	if _, err := ChiSquareGoodnessOfFit([]float64{1, 2}, []float64{0, 3}); !errors.Is(err, numerr.DomainError) {
		t.Errorf("Expected DomainError for zero expected count, got %v", err)
	}
}

func TestOneWayANOVAEqualMeans(t *testing.T) {
	groups := [][]float64{
		{1, 2, 3},
		{2, 1, 3},
		{3, 2, 1},
	}
	table, err := OneWayANOVA(groups)
	if err != nil {
		t.Fatalf("OneWayANOVA failed: %v", err)
	}
	if math.Abs(table.F) > 1e-12 {
		t.Errorf("Expected F ≈ 0, got %f", table.F)
	}
	if math.Abs(table.PValue-1) > 1e-9 {
		t.Errorf("Expected p ≈ 1, got %f", table.PValue)
	}
	if table.GrandMean != 2 {
		t.Errorf("Expected grand mean 2, got %f", table.GrandMean)
	}
}

func TestOneWayANOVASeparated(t *testing.T) {
	groups := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{10, 11, 12, 13, 14},
	}
	table, err := OneWayANOVA(groups)
	if err != nil {
		t.Fatalf("OneWayANOVA failed: %v", err)
	}

	if table.BetweenDF != 2 || table.WithinDF != 12 {
		t.Errorf("Unexpected df: %f, %f", table.BetweenDF, table.WithinDF)
	}
	if math.Abs(table.WithinSS-30) > 1e-9 || math.Abs(table.WithinMS-2.5) > 1e-12 {
		t.Errorf("Unexpected within SS/MS: %f, %f", table.WithinSS, table.WithinMS)
	}
	if math.Abs(table.BetweenSS+table.WithinSS-totalSS(groups)) > 1e-9 {
		t.Errorf("SSB + SSW != SST")
	}
	if table.PValue >= 0.01 {
		t.Errorf("Expected p < 0.01, got %g", table.PValue)
	}

	want := distuv.F{D1: 2, D2: 12}.Survival(table.F)
	if math.Abs(table.PValue-want) > 1e-15 {
		t.Errorf("p-value %g does not match F survival %g", table.PValue, want)
	}
}

func totalSS(groups [][]float64) float64 {
	sum, n := 0.0, 0
	for _, g := range groups {
		for _, v := range g {
			sum += v
			n++
		}
	}
	mean := sum / float64(n)
	ss := 0.0
	for _, g := range groups {
		for _, v := range g {
			ss += (v - mean) * (v - mean)
		}
	}
	return ss
}

func TestOneWayANOVAErrors(t *testing.T) {
	if _, err := OneWayANOVA([][]float64{{1, 2, 3}}); !errors.Is(err, numerr.InsufficientData) {
		t.Errorf("Expected InsufficientData for one group, got %v", err)
	}
	if _, err := OneWayANOVA([][]float64{{1, 2}, {3}}); !errors.Is(err, numerr.InsufficientData) {
		t.Errorf("Expected InsufficientData for a singleton group, got %v", err)
	}
	if _, err := OneWayANOVA([][]float64{{1, 1}, {2, 2}}); !errors.Is(err, numerr.DegenerateInput) {
		t.Errorf("Expected DegenerateInput for zero within variance, got %v", err)
	}
}

func TestTukeyHSD(t *testing.T) {
	groups := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{10, 11, 12, 13, 14},
	}
	comps, err := TukeyHSD(groups, nil, 0.05)
	if err != nil {
		t.Fatalf("TukeyHSD failed: %v", err)
	}
	if len(comps) != 3 {
		t.Fatalf("Expected 3 comparisons, got %d", len(comps))
	}

	pairs := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for i, c := range comps {
		if c.I != pairs[i][0] || c.J != pairs[i][1] {
			t.Errorf("Comparison %d is (%d,%d), want %v", i, c.I, c.J, pairs[i])
		}
	}

	// se = √(2.5/2·(1/5+1/5)) = √0.5
	if math.Abs(comps[0].Q-1/math.Sqrt(0.5)) > 1e-12 {
		t.Errorf("Unexpected q for (0,1): %f", comps[0].Q)
	}
	if comps[0].MeanDiff != -1 {
		t.Errorf("Expected mean diff -1, got %f", comps[0].MeanDiff)
	}
	if comps[0].Significant {
		t.Errorf("Groups 0 and 1 should not differ, p=%f", comps[0].PValue)
	}
	if !comps[1].Significant || !comps[2].Significant {
		t.Errorf("Group 2 should differ from both others: %+v", comps)
	}
}

func TestTukeyHSDSkipsWhenANOVANotSignificant(t *testing.T) {
	groups := [][]float64{
		{1, 2, 3},
		{2, 1, 3},
	}
	comps, err := TukeyHSD(groups, nil, 0.05)
	if err != nil {
		t.Fatalf("TukeyHSD failed: %v", err)
	}
	if comps == nil || len(comps) != 0 {
		t.Errorf("Expected an empty comparison list, got %v", comps)
	}

	if _, err := TukeyHSD(groups, nil, 1); !errors.Is(err, numerr.DomainError) {
		t.Errorf("Expected DomainError for alpha=1, got %v", err)
	}
}

func TestStudentizedRangeTwoMeans(t *testing.T) {
	// the range of two means is √2·|T|
	for _, tc := range []struct{ q, df float64 }{
		{1, 5}, {2, 30}, {2.5, 3}, {3, 10}, {4.5, 200},
	} {
		got := StudentizedRangeCDF(tc.q, 2, tc.df)
		tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: tc.df}
		want := 2*tdist.CDF(tc.q/math.Sqrt2) - 1
		if math.Abs(got-want) > 1e-7 {
			t.Errorf("q=%g df=%g: got %.10f, want %.10f", tc.q, tc.df, got, want)
		}
	}
}

func TestStudentizedRangeCriticalValues(t *testing.T) {
	// upper 5% points from published tables
	cases := []struct{ q, k, df float64 }{
		{3.773, 3, 12},
		{3.958, 4, 20},
	}
	for _, c := range cases {
		p := StudentizedRangeCDF(c.q, c.k, c.df)
		if math.Abs(p-0.95) > 1e-3 {
			t.Errorf("q=%g k=%g df=%g: got %f, want ≈0.95", c.q, c.k, c.df, p)
		}
	}
}

func TestStudentizedRangeBounds(t *testing.T) {
	if p := StudentizedRangeCDF(0, 3, 10); p != 0 {
		t.Errorf("CDF(0) = %f, want 0", p)
	}
	if p := StudentizedRangeCDF(math.Inf(1), 3, 10); p != 1 {
		t.Errorf("CDF(+Inf) = %f, want 1", p)
	}
	if p := StudentizedRangeCDF(3, 1, 10); !math.IsNaN(p) {
		t.Errorf("CDF with k=1 should be NaN, got %f", p)
	}

	// very large df reduces to the range of standard normals
	got := StudentizedRangeCDF(3, 2, 1e6)
	want := 2*distuv.UnitNormal.CDF(3/math.Sqrt2) - 1
	if math.Abs(got-want) > 1e-7 {
		t.Errorf("large df: got %.10f, want %.10f", got, want)
	}

	prev := 0.0
	for q := 0.5; q <= 8; q += 0.5 {
		p := StudentizedRangeCDF(q, 5, 15)
		if p < prev {
			t.Errorf("CDF not monotone at q=%g: %f < %f", q, p, prev)
		}
		prev = p
	}
}
