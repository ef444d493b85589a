package worksheet

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/sartorproj/numcalc/algebra"
	"github.com/sartorproj/numcalc/decision"
	"github.com/sartorproj/numcalc/descriptive"
	"github.com/sartorproj/numcalc/distribution"
	"github.com/sartorproj/numcalc/economics"
	"github.com/sartorproj/numcalc/finance"
	"github.com/sartorproj/numcalc/inference"
	"github.com/sartorproj/numcalc/numerr"
	"github.com/sartorproj/numcalc/regression"
	"github.com/sartorproj/numcalc/series"
)

type handler func(ws *Worksheet, t *Task) (any, error)

var handlers = map[string]handler{
	"describe":        runDescribe,
	"moving_average":  runMovingAverage,
	"expected_value":  runExpectedValue,
	"factorial":       runFactorial,
	"combinations":    runCombinations,
	"ratio":           runRatio,
	"regression":      runRegression,
	"correlation":     runCorrelation,
	"binomial":        runBinomial,
	"poisson":         runPoisson,
	"future_value":    runFutureValue,
	"present_value":   runPresentValue,
	"loan":            runLoan,
	"amortize":        runAmortize,
	"npv":             runNPV,
	"irr":             runIRR,
	"appraise":        runAppraise,
	"decision":        runDecision,
	"ttest":           runTTest,
	"chisquare":       runChiSquare,
	"anova":           runANOVA,
	"linear_equation": runLinearEquation,
	"quadratic":       runQuadratic,
	"equilibrium":     runEquilibrium,
	"elasticity":      runElasticity,
	"breakeven":       runBreakEven,
	"eoq":             runEOQ,
}

// param returns a required numeric parameter.
func (t *Task) param(name string) (float64, error) {
	v, ok := t.Params[name]
	if !ok {
		return 0, numerr.New(numerr.DomainError, "worksheet."+t.Kind, name, "missing parameter")
	}
	return v, nil
}

func (t *Task) params(names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, err := t.param(name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// intParam returns a required parameter that must hold an integer.
func (t *Task) intParam(name string) (int, error) {
	v, err := t.param(name)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, numerr.New(numerr.DomainError, "worksheet."+t.Kind, name, "%g is not an integer", v)
	}
	return int(v), nil
}

// alpha returns the task significance level, falling back to the worksheet default.
func (t *Task) alpha(ws *Worksheet) float64 {
	if t.Alpha > 0 {
		return t.Alpha
	}
	return ws.Defaults.Alpha
}

func (t *Task) csvPath(ws *Worksheet) string {
	if !filepath.IsAbs(t.CSV) && ws.dir != "" {
		return filepath.Join(ws.dir, t.CSV)
	}
	return t.CSV
}

func (t *Task) csvOptions() (*series.CSVOptions, error) {
	opts := series.DefaultCSVOptions()
	if t.Delimiter != "" {
		runes := []rune(t.Delimiter)
		if len(runes) != 1 {
			return nil, numerr.New(numerr.DomainError, "worksheet."+t.Kind, "delimiter",
				"%q is not a single character", t.Delimiter)
		}
		opts.Delimiter = runes[0]
	}
	if t.SkipRows < 0 {
		return nil, numerr.New(numerr.DomainError, "worksheet."+t.Kind, "skip_rows",
			"skip_rows=%d is negative", t.SkipRows)
	}
	opts.SkipRows = t.SkipRows
	opts.IDColumn, opts.IDFilter = t.GroupColumn, t.Group
	if len(t.Columns) > 0 {
		opts.ValueColumn = t.Columns[0]
	}
	return opts, nil
}

// columns returns the task's column set: CSV columns when a file is named,
// otherwise Groups.
func (t *Task) columns(ws *Worksheet) ([][]float64, error) {
	if t.CSV == "" {
		return t.Groups, nil
	}
	opts, err := t.csvOptions()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(t.csvPath(ws))
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	cols, err := series.LoadColumnsFromReader(f, opts, t.Columns...)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(cols))
	for i, c := range cols {
		out[i] = c.Values
	}
	return out, nil
}

// data returns the task's single series from Values, Data, or the first CSV
// column (default "y"), in that order.
func (t *Task) data(ws *Worksheet) ([]float64, error) {
	switch {
	case t.Values != "":
		return series.ParseFloats(t.Values), nil
	case len(t.Data) > 0:
		return t.Data, nil
	case t.CSV != "":
		opts, err := t.csvOptions()
		if err != nil {
			return nil, err
		}
		s, err := series.LoadCSV(t.csvPath(ws), opts)
		if err != nil {
			return nil, err
		}
		return s.Values, nil
	}
	return nil, nil
}

func runDescribe(ws *Worksheet, t *Task) (any, error) {
	xs, err := t.data(ws)
	if err != nil {
		return nil, err
	}
	return descriptive.Describe(xs)
}

func runMovingAverage(ws *Worksheet, t *Task) (any, error) {
	xs, err := t.data(ws)
	if err != nil {
		return nil, err
	}
	window, err := t.intParam("window")
	if err != nil {
		return nil, err
	}
	ma, err := series.New(xs).MovingAverage(window)
	if err != nil {
		return nil, err
	}
	return ma.Values, nil
}

func runExpectedValue(ws *Worksheet, t *Task) (any, error) {
	xs, err := t.data(ws)
	if err != nil {
		return nil, err
	}
	return descriptive.ExpectedValue(xs, t.Probabilities)
}

func runFactorial(_ *Worksheet, t *Task) (any, error) {
	n, err := t.param("n")
	if err != nil {
		return nil, err
	}
	return descriptive.Factorial(n)
}

func runCombinations(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("n", "k")
	if err != nil {
		return nil, err
	}
	return descriptive.Combinations(p[0], p[1]), nil
}

func runRatio(_ *Worksheet, t *Task) (any, error) {
	a, err := t.intParam("a")
	if err != nil {
		return nil, err
	}
	b, err := t.intParam("b")
	if err != nil {
		return nil, err
	}
	x, y, err := descriptive.SimplifyRatio(a, b)
	if err != nil {
		return nil, err
	}
	return [2]int{x, y}, nil
}

func runRegression(ws *Worksheet, t *Task) (any, error) {
	x, y := t.X, t.Y
	if t.CSV != "" {
		cols, err := t.columns(ws)
		if err != nil {
			return nil, err
		}
		if len(cols) < 2 {
			return nil, numerr.New(numerr.InsufficientData, "worksheet.regression", "columns",
				"need x and y columns")
		}
		x, y = cols[0], cols[1]
	}
	fit, err := regression.Linear(x, y)
	if err != nil {
		return nil, err
	}
	out := struct {
		*regression.Result
		R            *float64                       `json:",omitempty"`
		Significance *regression.SignificanceResult `json:",omitempty"`
	}{Result: fit}
	r, err := regression.Pearson(x, y)
	switch {
	case errors.Is(err, numerr.DegenerateInput):
		// constant y: the line is exact but r is undefined
		return out, nil
	case err != nil:
		return nil, err
	}
	out.R = &r
	// a perfect fit has an infinite t statistic
	if len(x) >= 3 && math.Abs(r) < 1 {
		if out.Significance, err = regression.Significance(r, len(x)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func runCorrelation(ws *Worksheet, t *Task) (any, error) {
	cols, err := t.columns(ws)
	if err != nil {
		return nil, err
	}
	return regression.Correlate(cols)
}

func runBinomial(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("n", "p", "x")
	if err != nil {
		return nil, err
	}
	return pmfOutput(distribution.Binomial{N: p[0], P: p[1]}, p[2])
}

func runPoisson(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("lambda", "x")
	if err != nil {
		return nil, err
	}
	return pmfOutput(distribution.Poisson{Lambda: p[0]}, p[1])
}

func pmfOutput(d distribution.Distribution, x float64) (any, error) {
	pmf, err := d.PMF(x)
	if err != nil {
		return nil, err
	}
	return struct {
		Distribution distribution.Kind
		PMF          float64
		Mean         float64
		Variance     float64
	}{d.Kind(), pmf, d.Mean(), d.Variance()}, nil
}

func runFutureValue(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("pv", "rate", "n", "t")
	if err != nil {
		return nil, err
	}
	return finance.FutureValue(p[0], p[1], p[2], p[3])
}

func runPresentValue(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("fv", "rate", "n", "t")
	if err != nil {
		return nil, err
	}
	return finance.PresentValue(p[0], p[1], p[2], p[3])
}

func runLoan(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("principal", "rate", "years", "per_year")
	if err != nil {
		return nil, err
	}
	return finance.LoanPayment(p[0], p[1], p[2], p[3])
}

func runAmortize(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("principal", "rate", "years", "per_year")
	if err != nil {
		return nil, err
	}
	return finance.Amortize(p[0], p[1], p[2], p[3])
}

func runNPV(_ *Worksheet, t *Task) (any, error) {
	rate, err := t.param("rate")
	if err != nil {
		return nil, err
	}
	return finance.NPV(t.CashFlows, rate)
}

func irrOptions(ws *Worksheet) *finance.IRROptions {
	opts := finance.DefaultIRROptions()
	opts.Guess = ws.Defaults.IRRGuess
	return opts
}

func runIRR(ws *Worksheet, t *Task) (any, error) {
	return finance.IRR(t.CashFlows, irrOptions(ws))
}

func runAppraise(ws *Worksheet, t *Task) (any, error) {
	rate, err := t.param("rate")
	if err != nil {
		return nil, err
	}
	return finance.Appraise(t.CashFlows, rate, irrOptions(ws))
}

func runDecision(_ *Worksheet, t *Task) (any, error) {
	optimism, err := t.param("optimism")
	if err != nil {
		return nil, err
	}
	return decision.Analyze(series.Matrix(t.Matrix), optimism)
}

func runTTest(ws *Worksheet, t *Task) (any, error) {
	groups, err := t.columns(ws)
	if err != nil {
		return nil, err
	}
	if len(groups) != 2 {
		return nil, numerr.New(numerr.DomainError, "worksheet.ttest", "groups",
			"%d groups, want exactly 2", len(groups))
	}
	return inference.WelchTTest(groups[0], groups[1])
}

func runChiSquare(_ *Worksheet, t *Task) (any, error) {
	return inference.ChiSquareGoodnessOfFit(t.Observed, t.Expected)
}

func runANOVA(ws *Worksheet, t *Task) (any, error) {
	groups, err := t.columns(ws)
	if err != nil {
		return nil, err
	}
	table, err := inference.OneWayANOVA(groups)
	if err != nil {
		return nil, err
	}
	comps, err := inference.TukeyHSD(groups, table, t.alpha(ws))
	if err != nil {
		return nil, err
	}
	return struct {
		*inference.ANOVATable
		Alpha       float64
		Comparisons []inference.Comparison
	}{table, t.alpha(ws), comps}, nil
}

func runLinearEquation(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("a", "b", "c")
	if err != nil {
		return nil, err
	}
	return algebra.SolveLinear(p[0], p[1], p[2]), nil
}

func runQuadratic(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("a", "b", "c")
	if err != nil {
		return nil, err
	}
	q, err := algebra.SolveQuadratic(p[0], p[1], p[2])
	if err != nil {
		return nil, err
	}
	// encoding/json has no complex type
	type root struct{ Re, Im float64 }
	return struct {
		Discriminant float64
		Vertex       algebra.Point
		Kind         algebra.RootKind
		Roots        [2]root
		RealRoots    []float64
	}{
		Discriminant: q.Discriminant,
		Vertex:       q.Vertex,
		Kind:         q.Kind,
		Roots: [2]root{
			{real(q.Roots[0]), imag(q.Roots[0])},
			{real(q.Roots[1]), imag(q.Roots[1])},
		},
		RealRoots: q.RealRoots(),
	}, nil
}

func runEquilibrium(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("a", "b", "c", "d")
	if err != nil {
		return nil, err
	}
	return economics.Equilibrium(p[0], p[1], p[2], p[3])
}

func runElasticity(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("a", "b", "price")
	if err != nil {
		return nil, err
	}
	return economics.PointElasticity(p[0], p[1], p[2])
}

func runBreakEven(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("fixed", "variable", "price")
	if err != nil {
		return nil, err
	}
	return economics.BreakEvenUnits(p[0], p[1], p[2])
}

func runEOQ(_ *Worksheet, t *Task) (any, error) {
	p, err := t.params("demand", "order_cost", "holding_cost")
	if err != nil {
		return nil, err
	}
	return economics.EOQ(p[0], p[1], p[2])
}
