package value

import (
	"fmt"
	"sort"
	"strings"
)

// Value is the interface that all operand and local values implement.
// Values are either immutable or reference-shared, so duplicating one is a
// plain interface copy.
type Value interface {
	Kind() Kind
	Inspect() string
}

// Shared singletons. NONE is the empty value: it fills freshly grown local
// slots and is the result of a function that falls off its end.
var (
	NONE  = &None{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

type None struct{}

func (n *None) Kind() Kind      { return KindNone }
func (n *None) Inspect() string { return "none" }

type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() Kind      { return KindBoolean }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

type Integer struct {
	Value int64
}

func (i *Integer) Kind() Kind      { return KindInteger }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

type Float struct {
	Value float64
}

func (f *Float) Kind() Kind      { return KindFloat }
func (f *Float) Inspect() string { return fmt.Sprintf("%g", f.Value) }

type String struct {
	Value string
}

func (s *String) Kind() Kind      { return KindString }
func (s *String) Inspect() string { return s.Value }

type Array struct {
	Elements []Value
}

func (a *Array) Kind() Kind { return KindArray }
func (a *Array) Inspect() string {
	var out []string
	for _, e := range a.Elements {
		out = append(out, e.Inspect())
	}
	return "[" + strings.Join(out, ", ") + "]"
}

// At returns the element at index i. The second result is false when i is
// out of range.
func (a *Array) At(i int64) (Value, bool) {
	if i < 0 || i >= int64(len(a.Elements)) {
		return nil, false
	}
	return a.Elements[i], true
}

// SetAt replaces the element at index i in place. It reports false when i
// is out of range; elements are never added this way.
func (a *Array) SetAt(i int64, v Value) bool {
	if i < 0 || i >= int64(len(a.Elements)) {
		return false
	}
	a.Elements[i] = v
	return true
}

// Map is a string-keyed collection of values.
type Map struct {
	Pairs map[string]Value
}

func (m *Map) Kind() Kind { return KindMap }
func (m *Map) Inspect() string {
	keys := make([]string, 0, len(m.Pairs))
	for k := range m.Pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []string
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s: %s", k, m.Pairs[k].Inspect()))
	}
	return "{" + strings.Join(out, ", ") + "}"
}

func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.Pairs[key]
	return v, ok
}

func (m *Map) Set(key string, v Value) {
	if m.Pairs == nil {
		m.Pairs = make(map[string]Value)
	}
	m.Pairs[key] = v
}

// Module is a named collection of values. Every call frame keeps its
// function's module in local slot 0.
type Module struct {
	Name    string
	Members map[string]Value
}

func (m *Module) Kind() Kind      { return KindModule }
func (m *Module) Inspect() string { return "module " + m.Name }

// Lookup resolves a member by name.
func (m *Module) Lookup(name string) (Value, bool) {
	v, ok := m.Members[name]
	return v, ok
}

// Error is a failure carried as a value. Host functions have no error
// return channel, so they report failures this way.
type Error struct {
	Message string
}

func (e *Error) Kind() Kind      { return KindError }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// Errorf builds an error value from a format string.
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Native wraps an opaque host object (a connection, a store handle) so it
// can travel through stacks and locals.
type Native struct {
	Value any
}

func (n *Native) Kind() Kind      { return KindNative }
func (n *Native) Inspect() string { return fmt.Sprintf("<native %T>", n.Value) }

// Truthy reports how a value behaves in a boolean position: NONE and FALSE
// are falsy, everything else is truthy.
func Truthy(v Value) bool {
	switch v {
	case NONE:
		return false
	case TRUE:
		return true
	case FALSE:
		return false
	}
	if b, ok := v.(*Boolean); ok {
		return b.Value
	}
	if _, ok := v.(*None); ok {
		return false
	}
	return true
}

// Bool returns the shared singleton for b.
func Bool(b bool) *Boolean {
	if b {
		return TRUE
	}
	return FALSE
}
