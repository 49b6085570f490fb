package vm

import (
	"ember/pkg/bytecode"
	"ember/pkg/value"
)

// CallFrame is one activation record: the executing function, an
// instruction cursor, and the frame's own CallStack. While a frame is
// active it also owns its caller through parent; ownership moves back to
// the machine when the frame returns. Depth of the parent chain equals the
// current call depth and is bounded only by memory.
type CallFrame struct {
	parent *CallFrame
	fn     *bytecode.Function
	cursor int
	stack  bytecode.CallStack
}

// NewCallFrame creates a frame for fn with a fresh stack, cursor 0, and the
// function's module stored in local slot 0.
func NewCallFrame(fn *bytecode.Function) *CallFrame {
	f := &CallFrame{fn: fn}
	f.stack.Store(0, fn.Module)
	return f
}

// Push places v on the frame's operand stack.
func (f *CallFrame) Push(v value.Value) {
	f.stack.Push(v)
}

// Stack exposes the frame's CallStack.
func (f *CallFrame) Stack() *bytecode.CallStack {
	return &f.stack
}

// Cursor reports the index of the next operation to execute.
func (f *CallFrame) Cursor() int {
	return f.cursor
}

// JumpBy displaces the cursor by offset. No bounds check happens here: a
// cursor that lands outside the function resolves on the next Execute as
// end-of-function fallthrough.
func (f *CallFrame) JumpBy(offset int32) {
	f.cursor += int(offset)
}

// Execute runs the operation under the cursor against the frame's stack.
// The cursor advances before the operation runs, so relative jumps count
// from the following position. A cursor past the last operation yields an
// implicit Return of NONE rather than an error.
func (f *CallFrame) Execute() (bytecode.Action, error) {
	if f.cursor < 0 || f.cursor >= len(f.fn.Ops) {
		return bytecode.Return{Value: value.NONE}, nil
	}
	op := f.fn.Ops[f.cursor]
	f.cursor++
	return op.Exec(&f.stack)
}
