package finance

import (
	"math"

	"github.com/sartorproj/numcalc/numerr"
)

// NPV discounts cashFlows at rate per period. cashFlows[0] is undiscounted.
func NPV(cashFlows []float64, rate float64) (float64, error) {
	const op = "finance.NPV"
	if len(cashFlows) == 0 {
		return 0, numerr.New(numerr.EmptyInput, op, "cashFlows", "")
	}
	if !finite(rate) || rate <= -1 {
		return 0, numerr.New(numerr.DomainError, op, "rate", "rate=%g must be > -1", rate)
	}
	npv, _ := npvAndDerivative(cashFlows, rate)
	return npv, nil
}

// npvAndDerivative returns NPV(r) and dNPV/dr = -Σ t·CFₜ/(1+r)^(t+1).
func npvAndDerivative(cashFlows []float64, r float64) (float64, float64) {
	npv, deriv := 0.0, 0.0
	for t, cf := range cashFlows {
		denom := math.Pow(1+r, float64(t))
		npv += cf / denom
		if t > 0 {
			deriv -= float64(t) * cf / (denom * (1 + r))
		}
	}
	return npv, deriv
}

// IRROptions configures the Newton-Raphson search used by IRR.
type IRROptions struct {
	Guess         float64 // Starting rate
	MaxIterations int
	Tolerance     float64 // Convergence bound on |NPV| and on the step size
	MinDerivative float64 // |dNPV/dr| below this stops the search
}

// DefaultIRROptions returns the standard search settings.
func DefaultIRROptions() *IRROptions {
	return &IRROptions{
		Guess:         0.10,
		MaxIterations: 100,
		Tolerance:     1e-7,
		MinDerivative: 1e-12,
	}
}

// IRR finds the rate at which the NPV of cashFlows is zero.
// A nil opts uses DefaultIRROptions.
func IRR(cashFlows []float64, opts *IRROptions) (float64, error) {
	const op = "finance.IRR"
	if opts == nil {
		opts = DefaultIRROptions()
	}
	if len(cashFlows) < 2 {
		return 0, numerr.New(numerr.InsufficientData, op, "cashFlows",
			"%d cash flows, need at least 2", len(cashFlows))
	}

	r := opts.Guess
	for i := 0; i < opts.MaxIterations; i++ {
		if !finite(r) || 1+r <= 0 {
			return 0, numerr.New(numerr.NotFound, op, "", "iterate r=%g left the domain r > -1", r)
		}

		npv, deriv := npvAndDerivative(cashFlows, r)
		if math.Abs(npv) < opts.Tolerance {
			return r, nil
		}
		if math.Abs(deriv) < opts.MinDerivative {
			return 0, numerr.New(numerr.NotFound, op, "", "derivative vanished at r=%g", r)
		}

		next := r - npv/deriv
		if math.Abs(next-r) < opts.Tolerance {
			return next, nil
		}
		r = next
	}
	return 0, numerr.New(numerr.NotFound, op, "",
		"no convergence after %d iterations", opts.MaxIterations)
}

// DiscountedPayback returns the fractional period at which the cumulative
// discounted cash flow turns non-negative. A project whose first flow is
// already non-negative pays back at 0.
func DiscountedPayback(cashFlows []float64, rate float64) (float64, error) {
	const op = "finance.DiscountedPayback"
	if len(cashFlows) == 0 {
		return 0, numerr.New(numerr.EmptyInput, op, "cashFlows", "")
	}
	if !finite(rate) || rate <= -1 {
		return 0, numerr.New(numerr.DomainError, op, "rate", "rate=%g must be > -1", rate)
	}

	cum := 0.0
	for t, cf := range cashFlows {
		disc := cf / math.Pow(1+rate, float64(t))
		prev := cum
		cum += disc
		if cum >= 0 {
			if t == 0 {
				return 0, nil
			}
			// prev < 0 and cum >= 0 imply disc > 0
			return float64(t-1) + -prev/disc, nil
		}
	}
	return 0, numerr.New(numerr.NotRecovered, op, "cashFlows",
		"cumulative discounted flow still %g after %d periods", cum, len(cashFlows)-1)
}

// ProfitabilityIndex returns (npv - cf0)/|cf0|, the present value of the
// future flows per unit of initial outlay. cf0 must be negative.
func ProfitabilityIndex(npv, cf0 float64) (float64, error) {
	if !(cf0 < 0) {
		return 0, numerr.New(numerr.NotApplicable, "finance.ProfitabilityIndex", "cf0",
			"initial flow %g is not an outlay", cf0)
	}
	return (npv - cf0) / math.Abs(cf0), nil
}

// Appraisal bundles the capital-budgeting metrics of one project. A nil
// metric could not be computed; the matching error explains why and the
// Failure field carries its numerr kind name for serialized reports.
type Appraisal struct {
	NPV     float64
	IRR     *float64
	PI      *float64
	Payback *float64
	Accept  bool // NPV > 0

	IRRFailure     string `json:",omitempty"`
	PIFailure      string `json:",omitempty"`
	PaybackFailure string `json:",omitempty"`

	IRRErr     error `json:"-"`
	PIErr      error `json:"-"`
	PaybackErr error `json:"-"`
}

// Appraise computes NPV, IRR, profitability index, and discounted payback
// for cashFlows at rate. Only an invalid NPV input is fatal.
func Appraise(cashFlows []float64, rate float64, opts *IRROptions) (*Appraisal, error) {
	npv, err := NPV(cashFlows, rate)
	if err != nil {
		return nil, err
	}
	a := &Appraisal{NPV: npv, Accept: npv > 0}

	if irr, err := IRR(cashFlows, opts); err != nil {
		a.IRRErr, a.IRRFailure = err, numerr.KindOf(err).String()
	} else {
		a.IRR = &irr
	}
	if pi, err := ProfitabilityIndex(npv, cashFlows[0]); err != nil {
		a.PIErr, a.PIFailure = err, numerr.KindOf(err).String()
	} else {
		a.PI = &pi
	}
	if pb, err := DiscountedPayback(cashFlows, rate); err != nil {
		a.PaybackErr, a.PaybackFailure = err, numerr.KindOf(err).String()
	} else {
		a.Payback = &pb
	}
	return a, nil
}
