package intcode

import "fmt"

// Opcode is the operation selector held in the low two digits of an
// instruction cell.
type Opcode int64

const (
	OpAdd         Opcode = 1  // dst = a + b
	OpMultiply    Opcode = 2  // dst = a * b
	OpInput       Opcode = 3  // dst = next input value
	OpOutput      Opcode = 4  // emit a
	OpJumpIfTrue  Opcode = 5  // if cond != 0: ip = target
	OpJumpIfFalse Opcode = 6  // if cond == 0: ip = target
	OpLessThan    Opcode = 7  // dst = a < b ? 1 : 0
	OpEquals      Opcode = 8  // dst = a == b ? 1 : 0
	OpHalt        Opcode = 99 // stop
)

// OpcodeInfo provides metadata about each opcode for decoding and listings.
type OpcodeInfo struct {
	Name      string // Mnemonic
	NumParams int    // Parameters following the instruction cell
	Writes    bool   // Last parameter is a destination address
	Jump      bool   // Sets the instruction pointer itself
}

var opcodeInfoTable = map[Opcode]OpcodeInfo{
	OpAdd:         {"ADD", 3, true, false},
	OpMultiply:    {"MUL", 3, true, false},
	OpInput:       {"IN", 1, true, false},
	OpOutput:      {"OUT", 1, false, false},
	OpJumpIfTrue:  {"JT", 2, false, true},
	OpJumpIfFalse: {"JF", 2, false, true},
	OpLessThan:    {"LT", 3, true, false},
	OpEquals:      {"EQ", 3, true, false},
	OpHalt:        {"HALT", 0, false, false},
}

// LookupOpcode maps an opcode value to its Opcode.
// Values outside the instruction set fail with UnknownOpcode.
func LookupOpcode(v int64) (Opcode, error) {
	op := Opcode(v)
	if _, ok := opcodeInfoTable[op]; !ok {
		return 0, &Error{Kind: UnknownOpcode, IP: -1, Value: v}
	}
	return op, nil
}

// GetOpcodeInfo returns metadata for an opcode.
// Returns a zero OpcodeInfo with name "UNKNOWN(n)" if the opcode is not recognized.
func GetOpcodeInfo(op Opcode) OpcodeInfo {
	if info, ok := opcodeInfoTable[op]; ok {
		return info
	}
	return OpcodeInfo{Name: fmt.Sprintf("UNKNOWN(%d)", int64(op))}
}

func (op Opcode) String() string {
	return GetOpcodeInfo(op).Name
}

// NumParams returns the number of parameters the opcode takes.
func (op Opcode) NumParams() int {
	return GetOpcodeInfo(op).NumParams
}

// InstructionLen returns the number of cells the instruction occupies.
func (op Opcode) InstructionLen() int {
	return 1 + op.NumParams()
}

// IsJump reports whether the opcode sets the instruction pointer explicitly.
func (op Opcode) IsJump() bool {
	return GetOpcodeInfo(op).Jump
}

// WritesMemory reports whether the last parameter is a destination address.
func (op Opcode) WritesMemory() bool {
	return GetOpcodeInfo(op).Writes
}

// AllOpcodes returns every defined opcode in numeric order.
func AllOpcodes() []Opcode {
	return []Opcode{
		OpAdd, OpMultiply, OpInput, OpOutput,
		OpJumpIfTrue, OpJumpIfFalse, OpLessThan, OpEquals,
		OpHalt,
	}
}

// ParamMode selects how a parameter's raw value is interpreted.
type ParamMode int64

const (
	Position  ParamMode = 0 // raw value is an address
	Immediate ParamMode = 1 // raw value is the operand
)

func (m ParamMode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	default:
		return fmt.Sprintf("ParamMode(%d)", int64(m))
	}
}

// LookupParamMode maps a mode digit to a ParamMode.
func LookupParamMode(d int64) (ParamMode, error) {
	switch ParamMode(d) {
	case Position, Immediate:
		return ParamMode(d), nil
	}
	return 0, &Error{Kind: UnknownParameterMode, IP: -1, Value: d}
}
