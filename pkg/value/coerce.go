package value

import "fmt"

// TryIntoError reports a failed coercion between value kinds.
type TryIntoError struct {
	Want Kind
	Got  Kind
}

func (e *TryIntoError) Error() string {
	return fmt.Sprintf("cannot convert %s into %s", e.Got, e.Want)
}

func AsBoolean(v Value) (*Boolean, error) {
	if b, ok := v.(*Boolean); ok {
		return b, nil
	}
	return nil, &TryIntoError{Want: KindBoolean, Got: v.Kind()}
}

func AsInteger(v Value) (*Integer, error) {
	if i, ok := v.(*Integer); ok {
		return i, nil
	}
	return nil, &TryIntoError{Want: KindInteger, Got: v.Kind()}
}

// AsFloat accepts both floats and integers, widening the latter.
func AsFloat(v Value) (*Float, error) {
	switch n := v.(type) {
	case *Float:
		return n, nil
	case *Integer:
		return &Float{Value: float64(n.Value)}, nil
	}
	return nil, &TryIntoError{Want: KindFloat, Got: v.Kind()}
}

func AsString(v Value) (*String, error) {
	if s, ok := v.(*String); ok {
		return s, nil
	}
	return nil, &TryIntoError{Want: KindString, Got: v.Kind()}
}

func AsArray(v Value) (*Array, error) {
	if a, ok := v.(*Array); ok {
		return a, nil
	}
	return nil, &TryIntoError{Want: KindArray, Got: v.Kind()}
}

func AsMap(v Value) (*Map, error) {
	if m, ok := v.(*Map); ok {
		return m, nil
	}
	return nil, &TryIntoError{Want: KindMap, Got: v.Kind()}
}

func AsModule(v Value) (*Module, error) {
	if m, ok := v.(*Module); ok {
		return m, nil
	}
	return nil, &TryIntoError{Want: KindModule, Got: v.Kind()}
}

func AsNative(v Value) (*Native, error) {
	if n, ok := v.(*Native); ok {
		return n, nil
	}
	return nil, &TryIntoError{Want: KindNative, Got: v.Kind()}
}
