package intcode

import (
	"errors"
	"fmt"
	"io"
)

// State is the machine's execution state.
type State int

const (
	Running State = iota
	Halted
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Machine executes one IntCode program. It owns its Memory for the whole
// run; a Machine is not safe for concurrent use.
type Machine struct {
	mem   *Memory
	ip    int64
	state State
	err   error
	steps int

	in  Input
	out Output

	// Tracer, if set, is called with each instruction before it executes.
	Tracer func(inst Instruction)
}

// NewMachine creates a machine that takes ownership of mem. A nil in behaves
// as an empty input; a nil out collects into a private SliceOutput.
func NewMachine(mem *Memory, in Input, out Output) *Machine {
	if in == nil {
		in = NewSliceInput()
	}
	if out == nil {
		out = &SliceOutput{}
	}
	return &Machine{mem: mem, in: in, out: out}
}

// Execute runs a copy of cells with the given input values and returns the
// final memory and the outputs. On a fault both reflect the machine at the
// point of failure.
func Execute(cells []int64, inputs ...int64) (mem []int64, outputs []int64, err error) {
	out := &SliceOutput{}
	m := NewMachine(NewMemory(cells), NewSliceInput(inputs...), out)
	err = m.Run()
	return m.mem.Snapshot(), out.Values, err
}

// State returns the current execution state.
func (m *Machine) State() State { return m.state }

// IP returns the instruction pointer.
func (m *Machine) IP() int64 { return m.ip }

// Steps returns the number of instructions executed, including HALT.
func (m *Machine) Steps() int { return m.steps }

// Err returns the fault that stopped the machine, or nil.
func (m *Machine) Err() error { return m.err }

// Snapshot returns a copy of memory.
func (m *Machine) Snapshot() []int64 { return m.mem.Snapshot() }

// Run executes until HALT or the first fault. It returns nil on HALT.
func (m *Machine) Run() error {
	for m.state == Running {
		m.Step()
	}
	return m.err
}

// Step executes a single instruction. On a stopped machine it does nothing
// and returns the stored fault, if any.
func (m *Machine) Step() error {
	if m.state != Running {
		return m.err
	}

	inst, err := Decode(m.mem, m.ip)
	if err != nil {
		return m.fault(err)
	}
	if m.Tracer != nil {
		m.Tracer(inst)
	}
	m.steps++

	next, err := m.exec(inst)
	if err != nil {
		return m.fault(err)
	}
	if m.state == Running && (next < 0 || next >= int64(m.mem.Len())) {
		return m.fault(&Error{Kind: OutOfBounds, IP: m.ip, Addr: next})
	}
	m.ip = next
	return nil
}

// exec applies inst and returns the next instruction pointer.
func (m *Machine) exec(inst Instruction) (int64, error) {
	if inst.Opcode.IsJump() {
		return m.jump(inst)
	}

	p := inst.Params
	next := m.ip + inst.Len()

	switch inst.Opcode {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		a, err := Resolve(m.mem, p[0])
		if err != nil {
			return 0, err
		}
		b, err := Resolve(m.mem, p[1])
		if err != nil {
			return 0, err
		}
		var v int64
		switch inst.Opcode {
		case OpAdd:
			v = a + b
		case OpMultiply:
			v = a * b
		case OpLessThan:
			v = boolCell(a < b)
		case OpEquals:
			v = boolCell(a == b)
		}
		return next, m.mem.Write(p[2].Value, v)

	case OpInput:
		v, err := m.in.Read()
		if errors.Is(err, io.EOF) {
			return 0, &Error{Kind: InputExhausted, IP: m.ip}
		}
		if err != nil {
			return 0, &Error{Kind: IOFailure, IP: m.ip, Err: err}
		}
		return next, m.mem.Write(p[0].Value, v)

	case OpOutput:
		v, err := Resolve(m.mem, p[0])
		if err != nil {
			return 0, err
		}
		if err := m.out.Write(v); err != nil {
			return 0, &Error{Kind: IOFailure, IP: m.ip, Err: err}
		}
		return next, nil

	case OpHalt:
		m.state = Halted
		return m.ip, nil
	}

	// Decode only produces opcodes from the table.
	return 0, &Error{Kind: UnknownOpcode, IP: m.ip, Value: int64(inst.Opcode)}
}

// jump evaluates a conditional jump. An untaken jump falls through to the
// next instruction.
func (m *Machine) jump(inst Instruction) (int64, error) {
	cond, err := Resolve(m.mem, inst.Params[0])
	if err != nil {
		return 0, err
	}
	if (cond != 0) != (inst.Opcode == OpJumpIfTrue) {
		return m.ip + inst.Len(), nil
	}
	return Resolve(m.mem, inst.Params[1])
}

// fault moves the machine to Faulted, stamping the error with the current
// instruction pointer.
func (m *Machine) fault(err error) error {
	var e *Error
	if errors.As(err, &e) && e.IP < 0 {
		e.IP = m.ip
	}
	m.state = Faulted
	m.err = err
	return err
}

func boolCell(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
