package intcode

// Parameter is a raw operand and its addressing mode.
type Parameter struct {
	Value int64
	Mode  ParamMode
}

// Instruction is one decoded instruction. It is only meaningful for the
// cycle that decoded it.
type Instruction struct {
	Addr   int64 // address of the instruction cell
	Opcode Opcode
	Params []Parameter
}

// Len returns the number of cells the instruction occupies.
func (in Instruction) Len() int64 {
	return int64(in.Opcode.InstructionLen())
}

// Decode reads the instruction at ip. It never modifies mem.
func Decode(mem *Memory, ip int64) (Instruction, error) {
	cell, err := mem.Read(ip)
	if err != nil {
		return Instruction{}, err
	}

	op, err := LookupOpcode(cell % 100)
	if err != nil {
		return Instruction{}, err
	}

	n := op.NumParams()
	inst := Instruction{Addr: ip, Opcode: op, Params: make([]Parameter, n)}
	modes := cell / 100
	for i := 0; i < n; i++ {
		mode, err := LookupParamMode(modes % 10)
		if err != nil {
			return Instruction{}, err
		}
		modes /= 10

		raw, err := mem.Read(ip + 1 + int64(i))
		if err != nil {
			return Instruction{}, err
		}
		inst.Params[i] = Parameter{Value: raw, Mode: mode}
	}
	return inst, nil
}

// Resolve returns the operand value of a read parameter.
// Destination parameters are addresses and never go through Resolve.
func Resolve(mem *Memory, p Parameter) (int64, error) {
	if p.Mode == Immediate {
		return p.Value, nil
	}
	return mem.Read(p.Value)
}
