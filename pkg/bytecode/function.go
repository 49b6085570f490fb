package bytecode

import "ember/pkg/value"

// Function is an executable unit: an ordered sequence of operations plus
// the module it belongs to. The module lands in local slot 0 of every frame
// created for the function.
type Function struct {
	Ops    []Operation
	Module value.Value
}

func (f *Function) Kind() value.Kind { return value.KindFunction }
func (f *Function) Inspect() string  { return "function" }
