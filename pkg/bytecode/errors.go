package bytecode

import (
	"errors"
	"fmt"

	"ember/pkg/value"
)

// ErrStackEmpty is returned by Pop when the operand stack has nothing left.
// A faulted operation may already have consumed operands, so the machine
// makes no attempt to recover from it.
var ErrStackEmpty = errors.New("pop from empty operand stack")

// LocalReadError reports a load of a local slot that was never written.
type LocalReadError struct {
	Index uint8
}

func (e *LocalReadError) Error() string {
	return fmt.Sprintf("read of unset local %d", e.Index)
}

// IndexReadError reports a failed indexed read inside an operand.
type IndexReadError struct {
	Index int64
}

func (e *IndexReadError) Error() string {
	return fmt.Sprintf("index %d out of range for read", e.Index)
}

// IndexWriteError reports a failed indexed write inside an operand.
type IndexWriteError struct {
	Index int64
}

func (e *IndexWriteError) Error() string {
	return fmt.Sprintf("index %d out of range for write", e.Index)
}

// IntoTypeError reports a failed value coercion inside an operation.
type IntoTypeError struct {
	Detail *value.TryIntoError
}

func (e *IntoTypeError) Error() string {
	return "coercion failed: " + e.Detail.Error()
}

func (e *IntoTypeError) Unwrap() error { return e.Detail }

// BadTypeError reports an operand whose kind the operation cannot accept.
type BadTypeError struct {
	Expected value.Kind
}

func (e *BadTypeError) Error() string {
	return fmt.Sprintf("expected %s operand", e.Expected)
}

// WrapCoerce lifts a value coercion failure into an IntoTypeError. Other
// errors pass through unchanged.
func WrapCoerce(err error) error {
	var t *value.TryIntoError
	if errors.As(err, &t) {
		return &IntoTypeError{Detail: t}
	}
	return err
}
