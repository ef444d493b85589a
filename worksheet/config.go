package worksheet

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Worksheet is a titled list of calculations loaded from YAML or TOML.
type Worksheet struct {
	Title    string   `yaml:"title" toml:"title"`
	Defaults Defaults `yaml:"defaults" toml:"defaults"`
	Tasks    []Task   `yaml:"tasks" toml:"tasks"`

	// dir resolves relative CSV paths.
	dir string
}

// Defaults apply to every task that does not override them.
type Defaults struct {
	Alpha    float64 `yaml:"alpha" toml:"alpha"`         // Significance level
	IRRGuess float64 `yaml:"irr_guess" toml:"irr_guess"` // IRR starting rate
}

// Task is one calculation. Which fields are read depends on Kind.
type Task struct {
	Name string `yaml:"name" toml:"name"`
	Kind string `yaml:"kind" toml:"kind"`

	Values        string             `yaml:"values" toml:"values"` // Free-form number list
	Data          []float64          `yaml:"data" toml:"data"`
	X             []float64          `yaml:"x" toml:"x"`
	Y             []float64          `yaml:"y" toml:"y"`
	Groups        [][]float64        `yaml:"groups" toml:"groups"`
	Matrix        [][]float64        `yaml:"matrix" toml:"matrix"`
	CashFlows     []float64          `yaml:"cash_flows" toml:"cash_flows"`
	Observed      []float64          `yaml:"observed" toml:"observed"`
	Expected      []float64          `yaml:"expected" toml:"expected"`
	Probabilities []float64          `yaml:"probabilities" toml:"probabilities"`
	Params        map[string]float64 `yaml:"params" toml:"params"`
	Alpha         float64            `yaml:"alpha" toml:"alpha"`

	CSV         string   `yaml:"csv" toml:"csv"`                   // CSV file relative to the worksheet
	Columns     []string `yaml:"columns" toml:"columns"`           // Header names to load from CSV
	Delimiter   string   `yaml:"delimiter" toml:"delimiter"`       // Single-character field separator
	SkipRows    int      `yaml:"skip_rows" toml:"skip_rows"`       // Lines to drop before the header
	GroupColumn string   `yaml:"group_column" toml:"group_column"` // Keep only rows whose group_column equals group
	Group       string   `yaml:"group" toml:"group"`
}

// Format is a worksheet file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// DetectFormat picks the encoding from the file extension. Anything that is
// not .toml is read as YAML.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads a worksheet file, applies environment overrides and defaults,
// then validates it.
func Load(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	ws, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, err
	}
	ws.dir = filepath.Dir(path)
	return ws, nil
}

// Parse decodes a worksheet from memory. Relative CSV paths resolve against
// the working directory.
func Parse(data []byte, format Format) (*Worksheet, error) {
	ws := &Worksheet{}
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, ws); err != nil {
			return nil, fmt.Errorf("parse worksheet: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, ws); err != nil {
			return nil, fmt.Errorf("parse worksheet: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("NUMCALC_ALPHA"); v != "" {
		var alpha float64
		if _, err := fmt.Sscanf(v, "%f", &alpha); err == nil {
			ws.Defaults.Alpha = alpha
		}
	}

	// Defaults
	if ws.Title == "" {
		ws.Title = "worksheet"
	}
	if ws.Defaults.Alpha == 0 {
		ws.Defaults.Alpha = 0.05
	}
	if ws.Defaults.IRRGuess == 0 {
		ws.Defaults.IRRGuess = 0.10
	}

	if err := ws.Validate(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Validate checks that every task is named and of a known kind.
func (w *Worksheet) Validate() error {
	if w.Defaults.Alpha <= 0 || w.Defaults.Alpha >= 1 {
		return fmt.Errorf("defaults.alpha must be in (0, 1), got %g", w.Defaults.Alpha)
	}
	if len(w.Tasks) == 0 {
		return fmt.Errorf("worksheet %q has no tasks", w.Title)
	}
	seen := make(map[string]bool, len(w.Tasks))
	for i, t := range w.Tasks {
		if t.Name == "" {
			return fmt.Errorf("tasks[%d].name is required", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate task name %q", t.Name)
		}
		seen[t.Name] = true
		if _, ok := handlers[t.Kind]; !ok {
			return fmt.Errorf("task %q: unknown kind %q (known: %s)",
				t.Name, t.Kind, strings.Join(Kinds(), ", "))
		}
		if t.Alpha < 0 || t.Alpha >= 1 {
			return fmt.Errorf("task %q: alpha must be in (0, 1), got %g", t.Name, t.Alpha)
		}
	}
	return nil
}

// Kinds lists the task kinds a worksheet may use, sorted.
func Kinds() []string {
	kinds := lo.Keys(handlers)
	slices.Sort(kinds)
	return kinds
}
