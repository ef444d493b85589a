// Package worksheet runs batches of numcalc calculations described in a
// YAML or TOML file.
//
// # File Format
//
//	title: Capital budgeting
//	defaults:
//	  alpha: 0.05
//	  irr_guess: 0.10
//	tasks:
//	  - name: project-a
//	    kind: appraise
//	    cash_flows: [-10000, 3000, 4000, 5000, 2000]
//	    params: {rate: 0.10}
//	  - name: scores
//	    kind: describe
//	    values: "10, 20, 20, 30, 40"
//
// Kinds lists every supported task kind. Numeric parameters go in params;
// series go in values, data, x/y, groups, or a csv file with columns.
// delimiter, skip_rows, and group_column/group shape how the csv is read.
// NUMCALC_ALPHA overrides defaults.alpha.
//
// # Running
//
//	ws, err := worksheet.Load("budget.yaml")
//	if err != nil {
//		return err
//	}
//	report, err := worksheet.NewRunner(logger).Run(ctx, ws)
//
// Every task produces a Result. Failures carry the numerr kind name in
// ErrorKind and do not abort the run.
package worksheet
