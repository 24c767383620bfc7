// Package intcode implements a small virtual machine for IntCode programs.
//
// An IntCode program is a flat array of signed integers. The same array is
// both the code and the data: instructions are decoded from it and results
// are written back into it.
//
// # Architecture Overview
//
//   - Memory: a fixed-length, bounds-checked array of int64 cells created
//     from comma-separated program text.
//
//   - Opcodes: nine instructions (ADD, MUL, IN, OUT, JT, JF, LT, EQ, HALT)
//     each with a fixed parameter count. See opcodes.go.
//
//   - Decoder: Decode reads the cell at an address, splits it into an opcode
//     (low two digits) and one mode digit per parameter, and reads the raw
//     parameters that follow.
//
//   - Machine: the fetch-decode-execute loop. It owns Memory and the
//     instruction pointer and moves between Running, Halted and Faulted.
//     While Running the instruction pointer always addresses a cell; a step
//     that would move it outside Memory faults instead.
//
//   - Input/Output: the machine reads and writes scalar values through the
//     Input and Output interfaces. Slice, channel and line-oriented
//     implementations are provided.
//
// # Addressing
//
// A parameter in Position mode (0) is an address; the operand is the value
// stored there. A parameter in Immediate mode (1) is the operand itself.
// Parameters that name a destination (the last parameter of ADD, MUL, LT and
// EQ, and the parameter of IN) are always addresses, whatever their mode
// digit says.
//
// # Errors
//
// Every failure is fatal to the run and surfaces as an *Error whose Kind can
// be matched with errors.Is:
//
//	if errors.Is(err, intcode.OutOfBounds) { ... }
//
// The package never logs. Hosts that want an execution trace set
// Machine.Tracer.
package intcode
