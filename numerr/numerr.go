// Package numerr defines the failure kinds shared by every numcalc package.
package numerr

import (
	"errors"
	"fmt"
)

// Kind classifies why a computation could not produce a result.
type Kind int

const (
	// Unknown is reported by KindOf for errors that did not originate here.
	Unknown Kind = iota
	// EmptyInput means a required series has zero elements.
	EmptyInput
	// InsufficientData means a series is shorter than the statistic's minimum.
	InsufficientData
	// DomainError means a parameter violates a mathematical precondition.
	DomainError
	// DegenerateInput means the input is well formed but the formula is undefined for it.
	DegenerateInput
	// Overflow means the result exceeds the float64 range.
	Overflow
	// NotFound means an iterative search did not converge.
	NotFound
	// NotRecovered means a cumulative target was never reached.
	NotRecovered
	// NotApplicable means a derived metric is meaningless for the inputs.
	NotApplicable
)

var kindNames = map[Kind]string{
	Unknown:          "unknown",
	EmptyInput:       "empty input",
	InsufficientData: "insufficient data",
	DomainError:      "domain error",
	DegenerateInput:  "degenerate input",
	Overflow:         "overflow",
	NotFound:         "not found",
	NotRecovered:     "not recovered",
	NotApplicable:    "not applicable",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error lets a Kind be used as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// Error is a computation failure with enough context to build a message upstream.
type Error struct {
	Kind   Kind
	Op     string // Failing operation, e.g. "finance.IRR"
	Param  string // Offending parameter, empty when the failure is not tied to one
	Detail string // Violated bound or condition
}

// New creates an Error. Detail is formatted with fmt.Sprintf when args are given.
func New(kind Kind, op, param, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Kind:   kind,
		Op:     op,
		Param:  param,
		Detail: detail,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.String()
	if e.Param != "" {
		msg += " (" + e.Param + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind carried by err, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return Unknown
}
