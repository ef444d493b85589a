// Package economics solves textbook microeconomics models: linear market
// equilibrium, point elasticity of demand, break-even volume, and the
// economic order quantity.
package economics

import (
	"math"

	"github.com/sartorproj/numcalc/numerr"
)

// Market is the equilibrium of linear demand Qd = a - b·P and supply
// Qs = c + d·P.
type Market struct {
	Price    float64
	Quantity float64
}

// Equilibrium returns the price and quantity at which Qd = Qs.
func Equilibrium(a, b, c, d float64) (*Market, error) {
	if b+d == 0 {
		return nil, numerr.New(numerr.DegenerateInput, "economics.Equilibrium", "b,d",
			"demand and supply slopes cancel (b+d=0)")
	}
	p := (a - c) / (b + d)
	return &Market{Price: p, Quantity: a - b*p}, nil
}

// Elasticity is the point elasticity of linear demand Qd = a - b·P.
type Elasticity struct {
	Quantity   float64
	Elasticity float64 // -b·P/Q
}

// Elastic reports |Ed| > 1.
func (e *Elasticity) Elastic() bool { return math.Abs(e.Elasticity) > 1 }

// PointElasticity evaluates the demand curve at price and returns its
// elasticity there.
func PointElasticity(a, b, price float64) (*Elasticity, error) {
	q := a - b*price
	if q == 0 {
		return nil, numerr.New(numerr.DegenerateInput, "economics.PointElasticity", "price",
			"quantity demanded is zero at price %g", price)
	}
	return &Elasticity{Quantity: q, Elasticity: -b * price / q}, nil
}

// BreakEven is the volume at which revenue covers total cost.
type BreakEven struct {
	Units   float64
	Revenue float64
	Margin  float64 // Contribution per unit
}

// BreakEvenUnits returns fixed/(price-variable). The unit contribution
// margin must be positive.
func BreakEvenUnits(fixed, variable, price float64) (*BreakEven, error) {
	const op = "economics.BreakEvenUnits"
	if fixed < 0 {
		return nil, numerr.New(numerr.DomainError, op, "fixed", "fixed cost %g is negative", fixed)
	}
	margin := price - variable
	if !(margin > 0) {
		return nil, numerr.New(numerr.DomainError, op, "price",
			"price %g does not exceed variable cost %g", price, variable)
	}
	units := fixed / margin
	return &BreakEven{Units: units, Revenue: units * price, Margin: margin}, nil
}

// EOQ returns the economic order quantity √(2DS/H) for annual demand D,
// cost per order S, and holding cost per unit H.
func EOQ(demand, orderCost, holdingCost float64) (float64, error) {
	const op = "economics.EOQ"
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"demand", demand},
		{"orderCost", orderCost},
		{"holdingCost", holdingCost},
	} {
		if !(v.val > 0) || math.IsInf(v.val, 0) {
			return 0, numerr.New(numerr.DomainError, op, v.name, "%s=%g must be positive", v.name, v.val)
		}
	}
	return math.Sqrt(2 * demand * orderCost / holdingCost), nil
}
