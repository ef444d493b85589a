package decision

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/numcalc/numerr"
	"github.com/sartorproj/numcalc/series"
)

func TestAnalyze(t *testing.T) {
	payoffs := series.Matrix{
		{120, 80},
		{40, 100},
	}

	res, err := Analyze(payoffs, 0.5)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	checks := []struct {
		name  string
		got   Choice
		index int
		value float64
	}{
		{"maximax", res.Maximax, 0, 120},
		{"maximin", res.Maximin, 0, 80},
		{"laplace", res.Laplace, 0, 100},
		{"hurwicz", res.Hurwicz, 0, 100},
		{"minimax regret", res.MinimaxRegret, 0, 20},
	}
	for _, c := range checks {
		if c.got.Index != c.index {
			t.Errorf("%s: chose %d, want %d", c.name, c.got.Index, c.index)
		}
		if math.Abs(c.got.Value-c.value) > 1e-12 {
			t.Errorf("%s: value %f, want %f", c.name, c.got.Value, c.value)
		}
	}

	if res.ColumnBests[0] != 120 || res.ColumnBests[1] != 100 {
		t.Errorf("Unexpected column bests %v", res.ColumnBests)
	}
	wantRegret := [][]float64{{0, 20}, {80, 0}}
	for i := range wantRegret {
		for j := range wantRegret[i] {
			if res.Regret[i][j] != wantRegret[i][j] {
				t.Errorf("Regret[%d][%d] = %f, want %f", i, j, res.Regret[i][j], wantRegret[i][j])
			}
		}
	}
}

func TestAnalyzeTieBreak(t *testing.T) {
	// both rows score identically under every criterion
	payoffs := series.Matrix{
		{10, 50},
		{50, 10},
	}
	res, err := Analyze(payoffs, 0.3)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	for name, c := range map[string]Choice{
		"maximax":        res.Maximax,
		"maximin":        res.Maximin,
		"laplace":        res.Laplace,
		"hurwicz":        res.Hurwicz,
		"minimax regret": res.MinimaxRegret,
	} {
		if c.Index != 0 {
			t.Errorf("%s: tie should go to index 0, got %d", name, c.Index)
		}
	}
}

func TestAnalyzeCriteriaDisagree(t *testing.T) {
	payoffs := series.Matrix{
		{200, -50, 0},
		{60, 40, 30},
		{90, 20, 70},
	}
	res, err := Analyze(payoffs, 0.8)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if res.Maximax.Index != 0 {
		t.Errorf("maximax: want 0, got %d", res.Maximax.Index)
	}
	if res.Maximin.Index != 1 {
		t.Errorf("maximin: want 1, got %d", res.Maximin.Index)
	}
	// laplace means: 50, 43.33, 60
	if res.Laplace.Index != 2 {
		t.Errorf("laplace: want 2, got %d", res.Laplace.Index)
	}
	// hurwicz 0.8: 150, 54, 76
	if res.Hurwicz.Index != 0 || math.Abs(res.Hurwicz.Value-150) > 1e-9 {
		t.Errorf("hurwicz: want 0 (150), got %d (%f)", res.Hurwicz.Index, res.Hurwicz.Value)
	}
	// max regrets: 90, 140, 110
	if res.MinimaxRegret.Index != 0 || res.MinimaxRegret.Value != 90 {
		t.Errorf("minimax regret: want 0 (90), got %d (%f)", res.MinimaxRegret.Index, res.MinimaxRegret.Value)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(series.Matrix{}, 0.5); !errors.Is(err, numerr.EmptyInput) {
		t.Errorf("Expected EmptyInput, got %v", err)
	}
	if _, err := Analyze(series.Matrix{{1, 2}, {3}}, 0.5); !errors.Is(err, numerr.DomainError) {
		t.Errorf("Expected DomainError for ragged matrix, got %v", err)
	}
	if _, err := Analyze(series.Matrix{{1, 2}}, 1.5); !errors.Is(err, numerr.DomainError) {
		t.Errorf("Expected DomainError for alpha > 1, got %v", err)
	}
}
