package series

import (
	"math"

	"github.com/sartorproj/numcalc/numerr"
)

// Matrix is a rectangular table of finite values, addressed row first.
type Matrix [][]float64

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the length of the first row, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	col := make([]float64, len(m))
	for i, row := range m {
		col[i] = row[j]
	}
	return col
}

// Validate checks that m is non-empty, rectangular, and finite.
// op names the calling operation in the returned error.
func (m Matrix) Validate(op string) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return numerr.New(numerr.EmptyInput, op, "matrix", "")
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return numerr.New(numerr.DomainError, op, "matrix",
				"row %d has %d columns, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return numerr.New(numerr.DomainError, op, "matrix",
					"cell (%d,%d) is not finite", i, j)
			}
		}
	}
	return nil
}
