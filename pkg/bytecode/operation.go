// Package bytecode defines the contract between instructions and the
// machine that drives them: the Operation interface, the actions an
// operation may request, the per-frame CallStack it works against, and the
// errors it may fail with. The concrete instruction set lives outside this
// module; anything implementing Operation can be executed.
package bytecode

import "ember/pkg/value"

// Operation is the sole extension point for instruction sets. Exec may
// push, pop and touch locals on the supplied stack; every other effect
// (moving the cursor, calling, returning) is requested through the returned
// Action and applied by the machine. Exec must be deterministic for a given
// stack, and makes no atomicity promise if it fails partway through.
type Operation interface {
	Exec(stack *CallStack) (Action, error)
}

// NativeFn is a host function invoked synchronously, without a frame of its
// own. It has no error channel: failures are encoded into the returned
// value, conventionally as *value.Error.
type NativeFn func(args []value.Value) value.Value

func (NativeFn) Kind() value.Kind { return value.KindNative }
func (NativeFn) Inspect() string  { return "native function" }

// Action is what an operation asks the machine to do next.
type Action interface {
	action()
}

// None requests no control-flow effect.
type None struct{}

// Jump displaces the current frame's cursor. The cursor has already moved
// past the jump instruction when the offset is applied, so an offset of d
// lands on the instruction d positions after the following one.
type Jump struct {
	Offset int32
}

// Call invokes a function in a fresh frame. Args are pushed onto the new
// frame's stack in the order given; the calling convention is that the call
// site supplies them in reverse, so the callee pops them left to right.
type Call struct {
	Fn   *Function
	Args []value.Value
}

// CallNative invokes a host function synchronously; its result is pushed
// onto the current frame's stack.
type CallNative struct {
	Fn   NativeFn
	Args []value.Value
}

// Return unwinds the current frame, delivering Value to the caller.
type Return struct {
	Value value.Value
}

func (None) action()       {}
func (Jump) action()       {}
func (Call) action()       {}
func (CallNative) action() {}
func (Return) action()     {}
