// Package finance implements time-value-of-money and capital-budgeting
// calculations.
//
// Rates passed to FutureValue, PresentValue, SimpleInterest, NPV, IRR, and
// DiscountedPayback are decimal fractions (0.08 for 8%). LoanPayment and
// Amortize take the annual rate in percent, as it is usually quoted.
//
// # Compounding
//
//	fv, _ := finance.FutureValue(1000, 0.05, 12, 10) // monthly for 10 years
//	pv, _ := finance.PresentValue(fv, 0.05, 12, 10)  // back to 1000
//
// # Loans
//
// LoanPayment returns the level installment. Amortize expands it into a
// schedule in exact cents using shopspring/decimal:
//
//	sched, err := finance.Amortize(200000, 6, 30, 12)
//	last := sched.Installments[len(sched.Installments)-1]
//	// last.Balance is exactly zero
//
// # Cash Flows
//
// Cash flow series start with the initial flow at period 0, normally an
// outlay:
//
//	flows := []float64{-10000, 3000, 4000, 5000, 2000}
//	npv, _ := finance.NPV(flows, 0.10)
//	irr, err := finance.IRR(flows, nil) // Newton-Raphson, numerr.NotFound on failure
//	pb, err := finance.DiscountedPayback(flows, 0.10)
//
// Appraise runs all of them at once and reports the metrics it could not
// compute instead of failing.
//
// # IRR Search
//
// IRR iterates r ← r - NPV(r)/NPV'(r) from IRROptions.Guess. It stops when
// |NPV| or the step falls below Tolerance and gives up when the derivative
// vanishes, an iterate reaches r <= -1, or MaxIterations is exhausted.
package finance
