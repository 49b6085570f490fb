// Package vm drives bytecode operations through a trampoline: one
// instruction executes at a time, and every control-flow effect it requests
// is applied to an explicit chain of call frames. Nothing here recurses, so
// call depth is limited by memory instead of the host stack.
package vm

import (
	"errors"
	"fmt"

	"ember/pkg/bytecode"
	"ember/pkg/value"
)

// ErrExited is returned by Step and Process after the machine has reached
// its terminal state.
var ErrExited = errors.New("virtual machine has exited")

// State is the machine's condition after processing an action.
type State interface {
	state()
}

// Running means the machine holds a current frame and can keep stepping.
type Running struct{}

// Exited is terminal: the outermost frame returned Value and the frame
// chain is gone.
type Exited struct {
	Value value.Value
}

func (Running) state() {}
func (Exited) state()  {}

// VirtualMachine owns exactly one current frame; the whole call chain is
// reachable only through it. A machine is single-owner: one execution
// context drives Step/Process/RunUntilExited at a time, and no locking is
// provided or needed.
type VirtualMachine struct {
	frame *CallFrame
}

// New creates a machine whose outermost frame executes fn.
func New(fn *bytecode.Function) *VirtualMachine {
	return &VirtualMachine{frame: NewCallFrame(fn)}
}

// Step executes the current frame's next instruction and returns the
// action it requested. Only that frame's own cursor, stack and locals can
// have changed.
func (vm *VirtualMachine) Step() (bytecode.Action, error) {
	if vm.frame == nil {
		return nil, ErrExited
	}
	return vm.frame.Execute()
}

// Process applies an action to the frame chain. Call hands ownership of
// the current frame to the callee; Return hands it back, or ends the run
// when there is no caller left.
func (vm *VirtualMachine) Process(action bytecode.Action) (State, error) {
	if vm.frame == nil {
		return nil, ErrExited
	}
	switch a := action.(type) {
	case bytecode.None:

	case bytecode.Jump:
		vm.frame.JumpBy(a.Offset)

	case bytecode.Call:
		callee := NewCallFrame(a.Fn)
		// Args arrive reversed from the call site, so pushing in the
		// given order lets the callee pop them left to right.
		for _, arg := range a.Args {
			callee.Push(arg)
		}
		callee.parent = vm.frame
		vm.frame = callee

	case bytecode.CallNative:
		vm.frame.Push(a.Fn(a.Args))

	case bytecode.Return:
		parent := vm.frame.parent
		vm.frame.parent = nil
		if parent == nil {
			vm.frame = nil
			return Exited{Value: a.Value}, nil
		}
		parent.Push(a.Value)
		vm.frame = parent

	default:
		return nil, fmt.Errorf("unknown action %T", action)
	}
	return Running{}, nil
}

// RunUntilExited steps and processes until the outermost frame returns,
// yielding its value. The first error from either phase aborts the run
// immediately; the machine is not resumable afterwards, since a faulted
// operation may have consumed operands it never replaced.
func (vm *VirtualMachine) RunUntilExited() (value.Value, error) {
	for {
		action, err := vm.Step()
		if err != nil {
			return nil, err
		}
		state, err := vm.Process(action)
		if err != nil {
			return nil, err
		}
		if exited, ok := state.(Exited); ok {
			return exited.Value, nil
		}
	}
}
