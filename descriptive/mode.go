package descriptive

import (
	"sort"

	"github.com/samber/lo"

	"github.com/sartorproj/numcalc/numerr"
)

// ModeKind tags the shape of a ModeResult.
type ModeKind int

const (
	// NoMode means every value occurs exactly once.
	NoMode ModeKind = iota
	// Unique means a single value has the highest frequency.
	Unique
	// Multimodal means two or more values share the highest frequency.
	Multimodal
)

func (k ModeKind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Multimodal:
		return "multimodal"
	default:
		return "none"
	}
}

// MarshalText encodes the kind by name.
func (k ModeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ModeResult reports the most frequent values of a series.
type ModeResult struct {
	Kind      ModeKind
	Values    []float64 // Tied values in ascending order; empty for NoMode
	Frequency int       // Occurrences of each modal value
}

// Value returns the single mode when Kind is Unique.
func (m ModeResult) Value() (float64, bool) {
	if m.Kind != Unique {
		return 0, false
	}
	return m.Values[0], true
}

// Mode counts value frequencies. All ties for the top frequency are
// reported rather than picking one arbitrarily.
func Mode(xs []float64) (ModeResult, error) {
	if len(xs) == 0 {
		return ModeResult{}, numerr.New(numerr.EmptyInput, "descriptive.Mode", "xs", "")
	}

	counts := lo.CountValues(xs)
	maxFreq := lo.Max(lo.Values(counts))
	if maxFreq == 1 {
		return ModeResult{Kind: NoMode, Frequency: 1}, nil
	}

	modes := lo.Keys(lo.PickBy(counts, func(_ float64, n int) bool {
		return n == maxFreq
	}))
	sort.Float64s(modes)

	kind := Unique
	if len(modes) > 1 {
		kind = Multimodal
	}
	return ModeResult{Kind: kind, Values: modes, Frequency: maxFreq}, nil
}
