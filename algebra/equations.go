package algebra

import (
	"errors"
	"math"

	"github.com/sartorproj/numcalc/numerr"
)

// LinearKind classifies the solution set of a·x + b = c.
type LinearKind int

const (
	UniqueSolution LinearKind = iota
	AllReals
	NoSolution
)

func (k LinearKind) String() string {
	switch k {
	case AllReals:
		return "all reals"
	case NoSolution:
		return "no solution"
	default:
		return "unique"
	}
}

// MarshalText encodes the kind by name.
func (k LinearKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Linear is the solution of a·x + b = c. X is set only for UniqueSolution.
type Linear struct {
	Kind LinearKind
	X    float64
}

// SolveLinear solves a·x + b = c.
func SolveLinear(a, b, c float64) Linear {
	if a == 0 {
		if b == c {
			return Linear{Kind: AllReals}
		}
		return Linear{Kind: NoSolution}
	}
	return Linear{Kind: UniqueSolution, X: (c - b) / a}
}

// ErrNotQuadratic is returned by SolveQuadratic when the leading coefficient
// is zero. It matches numerr.DomainError.
var ErrNotQuadratic error = numerr.New(numerr.DomainError, "algebra.SolveQuadratic", "a",
	"leading coefficient is zero")

// RootKind classifies the roots of a quadratic by its discriminant.
type RootKind int

const (
	TwoReal     RootKind = iota // Δ > 0
	Repeated                    // Δ = 0
	ComplexPair                 // Δ < 0
)

func (k RootKind) String() string {
	switch k {
	case Repeated:
		return "repeated"
	case ComplexPair:
		return "complex pair"
	default:
		return "two real"
	}
}

// MarshalText encodes the kind by name.
func (k RootKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Point is a point in the plane.
type Point struct {
	X, Y float64
}

// Quadratic describes a·x² + b·x + c = 0.
type Quadratic struct {
	Discriminant float64
	Vertex       Point
	Kind         RootKind
	// Roots holds (-b+√Δ)/2a then (-b-√Δ)/2a.
	Roots [2]complex128
}

// RealRoots returns the distinct real roots: two, one for a repeated root,
// or none for a complex pair.
func (q *Quadratic) RealRoots() []float64 {
	switch q.Kind {
	case TwoReal:
		return []float64{real(q.Roots[0]), real(q.Roots[1])}
	case Repeated:
		return []float64{real(q.Roots[0])}
	default:
		return nil
	}
}

// SolveQuadratic solves a·x² + b·x + c = 0 for a != 0.
func SolveQuadratic(a, b, c float64) (*Quadratic, error) {
	if a == 0 {
		return nil, ErrNotQuadratic
	}

	disc := b*b - 4*a*c
	vx := -b / (2 * a)
	q := &Quadratic{
		Discriminant: disc,
		Vertex:       Point{X: vx, Y: a*vx*vx + b*vx + c},
	}

	switch {
	case disc > 0:
		s := math.Sqrt(disc)
		q.Kind = TwoReal
		q.Roots = [2]complex128{
			complex((-b+s)/(2*a), 0),
			complex((-b-s)/(2*a), 0),
		}
	case disc == 0:
		q.Kind = Repeated
		q.Roots = [2]complex128{complex(vx, 0), complex(vx, 0)}
	default:
		im := math.Sqrt(-disc) / (2 * a)
		q.Kind = ComplexPair
		q.Roots = [2]complex128{complex(vx, im), complex(vx, -im)}
	}
	return q, nil
}

// IsNotQuadratic reports whether err is ErrNotQuadratic.
func IsNotQuadratic(err error) bool {
	return errors.Is(err, ErrNotQuadratic)
}
