package bytecode

import (
	"errors"
	"testing"

	"ember/pkg/value"
)

func TestWrapCoerce(t *testing.T) {
	_, coerceErr := value.AsInteger(value.TRUE)
	wrapped := WrapCoerce(coerceErr)

	var ite *IntoTypeError
	if !errors.As(wrapped, &ite) {
		t.Fatalf("wrapped is %T, want *IntoTypeError", wrapped)
	}
	if ite.Detail.Want != value.KindInteger || ite.Detail.Got != value.KindBoolean {
		t.Errorf("detail = %s", ite.Detail)
	}

	// the original coercion failure stays reachable through the wrapper
	var tie *value.TryIntoError
	if !errors.As(wrapped, &tie) {
		t.Error("TryIntoError not reachable through IntoTypeError")
	}
}

func TestWrapCoercePassThrough(t *testing.T) {
	if got := WrapCoerce(ErrStackEmpty); got != ErrStackEmpty {
		t.Errorf("non-coercion error changed: %v", got)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{&LocalReadError{Index: 3}, "read of unset local 3"},
		{&IndexReadError{Index: -1}, "index -1 out of range for read"},
		{&IndexWriteError{Index: 9}, "index 9 out of range for write"},
		{&BadTypeError{Expected: value.KindArray}, "expected ARRAY operand"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expected {
			t.Errorf("message = %q, want %q", got, tt.expected)
		}
	}
}
