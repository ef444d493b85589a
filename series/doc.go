// Package series provides numeric series and matrix types and the parsing
// helpers that turn user input into them.
//
// # Parsing free text
//
// Calculator input arrives as free text. Parse splits it on commas, quotes,
// and whitespace, and silently drops anything that is not a finite number:
//
//	s := series.Parse(`10, 20 "20" 30 40 abc`)
//	// s.Values == []float64{10, 20, 20, 30, 40}
//
// Parse never fails. Callers check s.IsEmpty() before computing.
//
// # Loading from CSV
//
//	s, err := series.LoadCSV("samples.csv", nil) // column "y"
//
//	opts := series.DefaultCSVOptions()
//	opts.ValueColumn = "score"
//	opts.IDColumn, opts.IDFilter = "group", "A"
//	s, err := series.LoadCSVFromReader(r, opts)
//
//	cols, err := series.LoadColumnsFromReader(r, nil, "height", "weight")
//
// # Matrices
//
// Matrix is a row-major table used for payoff tables and correlation
// datasets. Validate rejects empty, ragged, or non-finite input:
//
//	m := series.Matrix{{120, 80}, {40, 100}}
//	if err := m.Validate("decision.Analyze"); err != nil { ... }
//
// # Moving averages
//
//	ma, err := s.MovingAverage(3)
package series
