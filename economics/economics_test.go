package economics

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/numcalc/numerr"
)

func TestEquilibrium(t *testing.T) {
	// Qd = 100 - 2P, Qs = 10 + 4P
	m, err := Equilibrium(100, 2, 10, 4)
	if err != nil {
		t.Fatalf("Equilibrium failed: %v", err)
	}
	if math.Abs(m.Price-15) > 1e-12 || math.Abs(m.Quantity-70) > 1e-12 {
		t.Errorf("Expected P*=15 Q*=70, got %+v", m)
	}
	if qs := 10 + 4*m.Price; math.Abs(qs-m.Quantity) > 1e-12 {
		t.Errorf("Supply %f != demand %f at equilibrium", qs, m.Quantity)
	}

	if _, err := Equilibrium(100, 2, 10, -2); !errors.Is(err, numerr.DegenerateInput) {
		t.Errorf("Expected DegenerateInput for parallel curves, got %v", err)
	}
}

func TestPointElasticity(t *testing.T) {
	e, err := PointElasticity(100, 2, 30)
	if err != nil {
		t.Fatalf("PointElasticity failed: %v", err)
	}
	if e.Quantity != 40 || math.Abs(e.Elasticity+1.5) > 1e-12 {
		t.Errorf("Expected Q=40 Ed=-1.5, got %+v", e)
	}
	if !e.Elastic() {
		t.Error("|Ed| = 1.5 should be elastic")
	}

	inelastic, _ := PointElasticity(100, 2, 10)
	if inelastic.Elastic() {
		t.Errorf("Ed = %f should be inelastic", inelastic.Elasticity)
	}

	if _, err := PointElasticity(100, 2, 50); !errors.Is(err, numerr.DegenerateInput) {
		t.Errorf("Expected DegenerateInput for Q=0, got %v", err)
	}
}

func TestBreakEvenUnits(t *testing.T) {
	be, err := BreakEvenUnits(10000, 15, 40)
	if err != nil {
		t.Fatalf("BreakEvenUnits failed: %v", err)
	}
	if be.Units != 400 || be.Revenue != 16000 || be.Margin != 25 {
		t.Errorf("Expected 400 units, 16000 revenue, 25 margin; got %+v", be)
	}

	if _, err := BreakEvenUnits(10000, 40, 40); !errors.Is(err, numerr.DomainError) {
		t.Errorf("Expected DomainError for zero margin, got %v", err)
	}
}

func TestEOQ(t *testing.T) {
	q, err := EOQ(1000, 10, 0.5)
	if err != nil {
		t.Fatalf("EOQ failed: %v", err)
	}
	if math.Abs(q-200) > 1e-9 {
		t.Errorf("Expected EOQ 200, got %f", q)
	}

	for _, args := range [][3]float64{{0, 10, 1}, {100, -1, 1}, {100, 10, 0}} {
		if _, err := EOQ(args[0], args[1], args[2]); !errors.Is(err, numerr.DomainError) {
			t.Errorf("EOQ%v: expected DomainError, got %v", args, err)
		}
	}
}
