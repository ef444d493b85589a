package series

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/sartorproj/numcalc/numerr"
)

// Series is an ordered sequence of finite real numbers.
type Series struct {
	Values []float64
	Name   string
}

// New creates a series from values.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// Parse builds a series from free text. Tokens are separated by commas,
// quotes, or whitespace; tokens that are not finite numbers are dropped.
// An input with no numbers yields an empty series.
func Parse(text string) *Series {
	return &Series{Values: ParseFloats(text)}
}

// ParseFloats is Parse without the Series wrapper.
func ParseFloats(text string) []float64 {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '"' || r == '\'' || unicode.IsSpace(r)
	})

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	return values
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// IsEmpty reports whether the series has no values.
func (s *Series) IsEmpty() bool {
	return len(s.Values) == 0
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Values: values,
		Name:   s.Name,
	}
}

// MovingAverage calculates a simple moving average with window size.
// The result has Len()-window+1 values.
func (s *Series) MovingAverage(window int) (*Series, error) {
	if len(s.Values) == 0 {
		return nil, numerr.New(numerr.EmptyInput, "series.MovingAverage", "values", "")
	}
	if window <= 0 || window > len(s.Values) {
		return nil, numerr.New(numerr.DomainError, "series.MovingAverage", "window",
			"window=%d must be in [1, %d]", window, len(s.Values))
	}

	result := make([]float64, len(s.Values)-window+1)
	sum := 0.0

	for i := 0; i < window; i++ {
		sum += s.Values[i]
	}
	result[0] = sum / float64(window)

	for i := window; i < len(s.Values); i++ {
		sum = sum - s.Values[i-window] + s.Values[i]
		result[i-window+1] = sum / float64(window)
	}

	return &Series{
		Values: result,
		Name:   s.Name + "_ma",
	}, nil
}
