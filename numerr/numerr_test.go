package numerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsKind(t *testing.T) {
	err := New(Overflow, "descriptive.Factorial", "n", "n=%d exceeds 170", 171)

	if !errors.Is(err, Overflow) {
		t.Error("expected errors.Is(err, Overflow)")
	}
	if errors.Is(err, DomainError) {
		t.Error("Overflow error should not match DomainError")
	}

	wrapped := fmt.Errorf("poisson: %w", err)
	if !errors.Is(wrapped, Overflow) {
		t.Error("wrapped error lost its kind")
	}
	if KindOf(wrapped) != Overflow {
		t.Errorf("KindOf = %v, want %v", KindOf(wrapped), Overflow)
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(InsufficientData, "descriptive.SampleVariance", "xs", "n=1, need at least 2")
	want := "descriptive.SampleVariance: insufficient data (xs): n=1, need at least 2"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	bare := New(NotFound, "finance.IRR", "", "")
	if bare.Error() != "finance.IRR: not found" {
		t.Errorf("unexpected message %q", bare.Error())
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(errors.New("plain")) != Unknown {
		t.Error("plain error should map to Unknown")
	}
	if KindOf(NotApplicable) != NotApplicable {
		t.Error("bare Kind should map to itself")
	}
	if KindOf(nil) != Unknown {
		t.Error("nil should map to Unknown")
	}
}

func TestKindString(t *testing.T) {
	if EmptyInput.String() != "empty input" {
		t.Errorf("got %q", EmptyInput.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("got %q", Kind(99).String())
	}
}
