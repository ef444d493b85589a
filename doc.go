// Package numcalc is a numeric computation library for an educational
// calculator.
//
// Every calculator validates its inputs and returns either a plain result
// struct or a *numerr.Error naming the failing operation, the offending
// parameter, and the violated condition. Nothing renders, formats, or
// persists; callers own all state.
//
// # Features
//
//   - Descriptive statistics: mean, median, mode, variance, quartiles
//   - Counting: factorial, combinations, gcd, ratio simplification
//   - Least-squares regression, Pearson correlation, correlation matrices
//   - Binomial and Poisson probability mass functions
//   - Welch t-test, chi-square goodness of fit, one-way ANOVA, Tukey HSD
//   - Time value of money, loans and amortization, NPV, IRR, payback
//   - Decision criteria for payoff matrices
//   - Market equilibrium, elasticity, break-even, EOQ
//   - Linear and quadratic equations, progressions, powers, logarithms
//
// # Quick Start
//
//	xs := series.ParseFloats("10, 20, 20, 30, 40")
//	summary, _ := descriptive.Describe(xs)
//
//	irr, err := finance.IRR([]float64{-10000, 3000, 4000, 5000, 2000}, nil)
//	if errors.Is(err, numerr.NotFound) {
//		// the Newton search did not converge
//	}
//
// Batches of calculations can be described in a YAML or TOML worksheet and
// run with the worksheet package or the demo command:
//
//	go run ./demo run demo/worksheet.yaml --out report.json
//
// # Packages
//
//   - numerr: failure kinds shared by all packages
//   - series: number parsing, CSV loading, matrices
//   - descriptive: summary statistics and counting
//   - regression: linear regression and correlation
//   - distribution: discrete probability distributions
//   - inference: hypothesis tests
//   - finance: time value of money and capital budgeting
//   - decision: decisions under uncertainty
//   - economics: microeconomics formulas
//   - algebra: equations and sequences
//   - worksheet: batch execution with structured logging
package numcalc
