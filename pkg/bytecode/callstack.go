package bytecode

import "ember/pkg/value"

// CallStack is the working storage of one frame: a LIFO operand stack and
// flat index-addressed locals. Locals grow on demand so the instruction set
// can allocate slots lazily, without pre-declared frame sizes.
type CallStack struct {
	stack  []value.Value
	locals []value.Value
}

// Push places v on top of the operand stack.
func (cs *CallStack) Push(v value.Value) {
	cs.stack = append(cs.stack, v)
}

// Pop removes and returns the top of the operand stack. It fails with
// ErrStackEmpty when there is nothing to pop; it never yields a default.
func (cs *CallStack) Pop() (value.Value, error) {
	if len(cs.stack) == 0 {
		return nil, ErrStackEmpty
	}
	v := cs.stack[len(cs.stack)-1]
	cs.stack[len(cs.stack)-1] = nil
	cs.stack = cs.stack[:len(cs.stack)-1]
	return v, nil
}

// Depth reports how many operands are currently on the stack.
func (cs *CallStack) Depth() int {
	return len(cs.stack)
}

// Load returns the local at index. Reading past the locals ever written
// fails with LocalReadError; slots filled in by growth read as NONE.
func (cs *CallStack) Load(index uint8) (value.Value, error) {
	if int(index) >= len(cs.locals) {
		return nil, &LocalReadError{Index: index}
	}
	return cs.locals[index], nil
}

// Store writes v to the local at index, growing the locals as needed and
// filling any newly created intermediate slots with NONE.
func (cs *CallStack) Store(index uint8, v value.Value) {
	cs.grow(index)
	cs.locals[index] = v
}

// Swap exchanges the local at index with *v in place, growing as Store
// does. The caller gets the previous slot contents back without copies.
func (cs *CallStack) Swap(index uint8, v *value.Value) {
	cs.grow(index)
	cs.locals[index], *v = *v, cs.locals[index]
}

func (cs *CallStack) grow(index uint8) {
	for len(cs.locals) <= int(index) {
		cs.locals = append(cs.locals, value.NONE)
	}
}
