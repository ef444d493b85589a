package regression

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/numcalc/numerr"
)

func TestLinearRecoversLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2.5*v - 4
	}

	fit, err := Linear(x, y)
	if err != nil {
		t.Fatalf("Linear failed: %v", err)
	}
	if math.Abs(fit.Slope-2.5) > 1e-10 {
		t.Errorf("Expected slope 2.5, got %f", fit.Slope)
	}
	if math.Abs(fit.Intercept+4) > 1e-10 {
		t.Errorf("Expected intercept -4, got %f", fit.Intercept)
	}
	if math.Abs(fit.RSquared-1) > 1e-10 {
		t.Errorf("Expected R² 1, got %f", fit.RSquared)
	}
	if fit.N != 6 {
		t.Errorf("Expected N 6, got %d", fit.N)
	}
	if p := fit.Predict(10); math.Abs(p-21) > 1e-9 {
		t.Errorf("Predict(10) = %f, want 21", p)
	}
}

func TestLinearNoisy(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1}

	fit, err := Linear(x, y)
	if err != nil {
		t.Fatalf("Linear failed: %v", err)
	}
	// closed form: slope = Sxy/Sxx = 19.9/10
	if math.Abs(fit.Slope-1.99) > 1e-9 {
		t.Errorf("Expected slope 1.99, got %f", fit.Slope)
	}
	if math.Abs(fit.Intercept-0.05) > 1e-9 {
		t.Errorf("Expected intercept 0.05, got %f", fit.Intercept)
	}
	if fit.RSquared <= 0.99 || fit.RSquared > 1 {
		t.Errorf("Expected R² close to 1, got %f", fit.RSquared)
	}
}

func TestLinearErrors(t *testing.T) {
	_, err := Linear([]float64{5, 5, 5}, []float64{1, 2, 3})
	if !errors.Is(err, numerr.DegenerateInput) {
		t.Errorf("Expected DegenerateInput for constant x, got %v", err)
	}
	_, err = Linear([]float64{1, 2}, []float64{1})
	if !errors.Is(err, numerr.DomainError) {
		t.Errorf("Expected DomainError for length mismatch, got %v", err)
	}
	_, err = Linear([]float64{1}, []float64{1})
	if !errors.Is(err, numerr.InsufficientData) {
		t.Errorf("Expected InsufficientData for one point, got %v", err)
	}
	_, err = Linear(nil, nil)
	if !errors.Is(err, numerr.EmptyInput) {
		t.Errorf("Expected EmptyInput, got %v", err)
	}
}

func TestPearson(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	r, err := Pearson(a, []float64{2, 4, 6, 8, 10})
	if err != nil {
		t.Fatalf("Pearson failed: %v", err)
	}
	if math.Abs(r-1) > 1e-12 || r > 1 {
		t.Errorf("Expected r = 1 for a perfect line, got %.17f", r)
	}

	r, _ = Pearson(a, []float64{10, 8, 6, 4, 2})
	if math.Abs(r+1) > 1e-12 || r < -1 {
		t.Errorf("Expected r = -1, got %.17f", r)
	}

	r, _ = Pearson(a, []float64{2, 1, 4, 3, 5})
	if math.Abs(r-0.8) > 1e-12 {
		t.Errorf("Expected r = 0.8, got %f", r)
	}

	if _, err := Pearson(a, []float64{3, 3, 3, 3, 3}); !errors.Is(err, numerr.DegenerateInput) {
		t.Errorf("Expected DegenerateInput for constant column, got %v", err)
	}
}

func TestSignificance(t *testing.T) {
	sig, err := Significance(0.8, 5)
	if err != nil {
		t.Fatalf("Significance failed: %v", err)
	}
	// t = 0.8·√(3/0.36)
	if math.Abs(sig.T-0.8*math.Sqrt(3/0.36)) > 1e-12 {
		t.Errorf("Unexpected t: %f", sig.T)
	}
	if sig.DF != 3 {
		t.Errorf("Expected df 3, got %f", sig.DF)
	}
	if sig.PValue <= 0.1 || sig.PValue >= 0.11 {
		t.Errorf("Expected p ≈ 0.104, got %f", sig.PValue)
	}

	zero, _ := Significance(0, 10)
	if zero.T != 0 || math.Abs(zero.PValue-1) > 1e-12 {
		t.Errorf("Expected t=0, p=1 for r=0, got %+v", zero)
	}

	perfect, _ := Significance(-1, 10)
	if !math.IsInf(perfect.T, -1) || perfect.PValue != 0 {
		t.Errorf("Expected t=-Inf, p=0 for r=-1, got %+v", perfect)
	}

	if _, err := Significance(0.5, 2); !errors.Is(err, numerr.InsufficientData) {
		t.Errorf("Expected InsufficientData for n=2, got %v", err)
	}
	if _, err := Significance(1.2, 10); !errors.Is(err, numerr.DomainError) {
		t.Errorf("Expected DomainError for |r|>1, got %v", err)
	}
}

func TestCorrelate(t *testing.T) {
	cols := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 1, 4, 3, 5},
		{5, 3, 4, 1, 2},
	}
	m, err := Correlate(cols)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	if m.N != 5 {
		t.Errorf("Expected N 5, got %d", m.N)
	}

	for i := range cols {
		if m.R[i][i] != 1 || m.P[i][i] != 0 {
			t.Errorf("Diagonal (%d) should be r=1 p=0, got r=%f p=%f", i, m.R[i][i], m.P[i][i])
		}
		for j := range cols {
			if math.Abs(m.R[i][j]-m.R[j][i]) > 1e-12 {
				t.Errorf("R not symmetric at (%d,%d)", i, j)
			}
			if math.Abs(m.P[i][j]-m.P[j][i]) > 1e-12 {
				t.Errorf("P not symmetric at (%d,%d)", i, j)
			}
		}
	}

	want, _ := Pearson(cols[0], cols[1])
	if math.Abs(m.R[0][1]-want) > 1e-12 {
		t.Errorf("R[0][1] = %f, Pearson = %f", m.R[0][1], want)
	}
}

func TestCorrelateErrors(t *testing.T) {
	if _, err := Correlate([][]float64{{1, 2, 3}}); !errors.Is(err, numerr.InsufficientData) {
		t.Errorf("Expected InsufficientData for one column, got %v", err)
	}
	if _, err := Correlate([][]float64{{1, 2, 3}, {1, 2}}); !errors.Is(err, numerr.DomainError) {
		t.Errorf("Expected DomainError for ragged columns, got %v", err)
	}
	if _, err := Correlate([][]float64{{1, 2}, {2, 1}}); !errors.Is(err, numerr.InsufficientData) {
		t.Errorf("Expected InsufficientData for n=2, got %v", err)
	}
}
