package finance

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/sartorproj/numcalc/numerr"
)

// FutureValue compounds pv at an annual rate (decimal fraction) n times per
// year for t years: pv·(1+rate/n)^(n·t).
func FutureValue(pv, rate, n, t float64) (float64, error) {
	const op = "finance.FutureValue"
	if err := checkCompounding(op, "pv", pv, rate, n, t); err != nil {
		return 0, err
	}
	fv := pv * math.Pow(1+rate/n, n*t)
	if math.IsInf(fv, 0) {
		return 0, numerr.New(numerr.Overflow, op, "", "future value exceeds float64 range")
	}
	return fv, nil
}

// PresentValue discounts fv with the same convention as FutureValue.
func PresentValue(fv, rate, n, t float64) (float64, error) {
	const op = "finance.PresentValue"
	if err := checkCompounding(op, "fv", fv, rate, n, t); err != nil {
		return 0, err
	}
	growth := math.Pow(1+rate/n, n*t)
	if math.IsInf(growth, 0) {
		return 0, numerr.New(numerr.Overflow, op, "", "discount factor exceeds float64 range")
	}
	return fv / growth, nil
}

func checkCompounding(op, name string, amount, rate, n, t float64) error {
	switch {
	case !finite(amount) || amount < 0:
		return numerr.New(numerr.DomainError, op, name, "%s=%g must be >= 0", name, amount)
	case !finite(rate) || rate < 0:
		return numerr.New(numerr.DomainError, op, "rate", "rate=%g must be >= 0", rate)
	case !finite(n) || n <= 0:
		return numerr.New(numerr.DomainError, op, "n", "n=%g must be > 0", n)
	case !finite(t) || t < 0:
		return numerr.New(numerr.DomainError, op, "t", "t=%g must be >= 0", t)
	}
	return nil
}

// Interest is the outcome of a simple-interest calculation.
type Interest struct {
	Interest float64
	Total    float64
}

// SimpleInterest returns principal·rate·t and the accumulated total.
func SimpleInterest(principal, rate, t float64) (*Interest, error) {
	const op = "finance.SimpleInterest"
	if err := checkCompounding(op, "principal", principal, rate, 1, t); err != nil {
		return nil, err
	}
	i := principal * rate * t
	return &Interest{Interest: i, Total: principal + i}, nil
}

// Loan is the level installment of an amortizing loan.
type Loan struct {
	Payment       float64
	TotalPayment  float64
	TotalInterest float64
	Periods       float64
	PeriodRate    float64
}

// LoanPayment computes the level payment for principal borrowed at
// annualRatePercent (e.g. 6 for 6%) over years, paid paymentsPerYear times
// a year.
func LoanPayment(principal, annualRatePercent, years, paymentsPerYear float64) (*Loan, error) {
	const op = "finance.LoanPayment"
	switch {
	case !finite(principal) || principal <= 0:
		return nil, numerr.New(numerr.DomainError, op, "principal", "principal=%g must be > 0", principal)
	case !finite(annualRatePercent) || annualRatePercent < 0:
		return nil, numerr.New(numerr.DomainError, op, "rate", "rate=%g must be >= 0", annualRatePercent)
	case !finite(years) || years <= 0:
		return nil, numerr.New(numerr.DomainError, op, "years", "years=%g must be > 0", years)
	case !finite(paymentsPerYear) || paymentsPerYear <= 0:
		return nil, numerr.New(numerr.DomainError, op, "paymentsPerYear",
			"paymentsPerYear=%g must be > 0", paymentsPerYear)
	}

	n := years * paymentsPerYear
	r := annualRatePercent / 100 / paymentsPerYear

	var payment float64
	if r == 0 {
		payment = principal / n
	} else {
		payment = principal * r / (1 - math.Pow(1+r, -n))
	}

	total := payment * n
	return &Loan{
		Payment:       payment,
		TotalPayment:  total,
		TotalInterest: total - principal,
		Periods:       n,
		PeriodRate:    r,
	}, nil
}

// Installment is one row of an amortization schedule, in cents.
type Installment struct {
	Period    int
	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal
}

// Schedule is a full amortization table.
type Schedule struct {
	Payment       decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalInterest decimal.Decimal
	Installments  []Installment
}

// Amortize expands LoanPayment into a per-period schedule rounded to cents.
// The last installment absorbs the accumulated rounding so the closing
// balance is exactly zero. years·paymentsPerYear must be integral.
func Amortize(principal, annualRatePercent, years, paymentsPerYear float64) (*Schedule, error) {
	const op = "finance.Amortize"
	loan, err := LoanPayment(principal, annualRatePercent, years, paymentsPerYear)
	if err != nil {
		return nil, err
	}
	if loan.Periods != math.Trunc(loan.Periods) {
		return nil, numerr.New(numerr.DomainError, op, "years",
			"%g periods is not a whole number", loan.Periods)
	}

	periods := int(loan.Periods)
	rate := decimal.NewFromFloat(loan.PeriodRate)
	payment := decimal.NewFromFloat(loan.Payment).Round(2)
	balance := decimal.NewFromFloat(principal).Round(2)

	sched := &Schedule{
		Payment:      payment,
		Installments: make([]Installment, 0, periods),
	}
	for p := 1; p <= periods; p++ {
		interest := balance.Mul(rate).Round(2)
		pay := payment
		princ := pay.Sub(interest)
		if p == periods || princ.GreaterThan(balance) {
			princ = balance
			pay = princ.Add(interest)
		}
		balance = balance.Sub(princ)

		sched.Installments = append(sched.Installments, Installment{
			Period:    p,
			Payment:   pay,
			Interest:  interest,
			Principal: princ,
			Balance:   balance,
		})
		sched.TotalPaid = sched.TotalPaid.Add(pay)
		sched.TotalInterest = sched.TotalInterest.Add(interest)

		if balance.IsZero() {
			break
		}
	}
	return sched, nil
}

// PercentOf returns percent% of value.
func PercentOf(percent, value float64) float64 {
	return percent / 100 * value
}

// PercentageOf returns part as a percentage of whole.
func PercentageOf(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, numerr.New(numerr.DegenerateInput, "finance.PercentageOf", "whole", "whole is zero")
	}
	return part / whole * 100, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
