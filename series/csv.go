package series

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	IDColumn    string // Column name for a group ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a numeric series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads the value column of a CSV stream as a series.
// Blank, NA, NaN, null, and unparsable cells are skipped.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	cols, err := loadColumns(r, opts, []string{opts.ValueColumn})
	if err != nil {
		return nil, err
	}
	if cols[0].IsEmpty() {
		return nil, errors.New("no valid data found in CSV")
	}
	return cols[0], nil
}

// LoadColumnsFromReader loads several named columns from a CSV stream. Each
// column is parsed independently, so the returned series may differ in
// length when cells are missing. opts.ValueColumn is ignored.
func LoadColumnsFromReader(r io.Reader, opts *CSVOptions, columns ...string) ([]*Series, error) {
	if len(columns) == 0 {
		return nil, errors.New("no columns requested")
	}
	if opts == nil {
		opts = DefaultCSVOptions()
	}
	return loadColumns(r, opts, columns)
}

func loadColumns(r io.Reader, opts *CSVOptions, columns []string) ([]*Series, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Skip rows if needed
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	indices := make([]int, len(columns))
	idIdx := -1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for c := range indices {
			indices[c] = -1
		}
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			for c, name := range columns {
				if h == name {
					indices[c] = i
				}
			}
			if opts.IDColumn != "" && h == opts.IDColumn {
				idIdx = i
			}
		}
		for c, idx := range indices {
			if idx == -1 {
				if len(columns) == 1 {
					// Default to last column if the value column is not named
					indices[c] = len(header) - 1
					continue
				}
				return nil, errors.New("column " + columns[c] + " not found in CSV header")
			}
		}
	} else {
		// No header - columns are taken in order
		for c := range indices {
			indices[c] = c
		}
	}

	out := make([]*Series, len(columns))
	for c, name := range columns {
		out[c] = &Series{Values: []float64{}, Name: name}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// Filter by ID if specified
		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			id := strings.TrimSpace(strings.Trim(record[idIdx], "\""))
			if id != opts.IDFilter {
				continue
			}
		}

		for c, idx := range indices {
			if idx < 0 || idx >= len(record) {
				continue
			}
			if v, ok := parseCell(record[idx]); ok {
				out[c].Values = append(out[c].Values, v)
			}
		}
	}

	return out, nil
}

func parseCell(cell string) (float64, bool) {
	s := strings.TrimSpace(strings.Trim(cell, "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
