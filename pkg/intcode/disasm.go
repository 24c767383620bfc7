package intcode

import (
	"fmt"
	"strings"
)

// Disassemble returns a linear listing of cells. Cells that do not decode
// as an instruction are listed as DATA and the walk resumes at the next
// cell, so a listing of self-modifying code or trailing data is a best
// effort.
func Disassemble(cells []int64) string {
	return DisassembleWithName(cells, "")
}

// DisassembleWithName returns a listing with a name header.
func DisassembleWithName(cells []int64, name string) string {
	var sb strings.Builder

	if name != "" {
		sb.WriteString(fmt.Sprintf("; === %s ===\n", name))
	}
	sb.WriteString(fmt.Sprintf("; IntCode program, %d cells\n\n", len(cells)))

	mem := &Memory{cells: cells}
	addr := int64(0)
	for addr < int64(len(cells)) {
		line, n := disassembleInstruction(mem, addr)
		sb.WriteString(fmt.Sprintf("%04d  %s\n", addr, line))
		addr += n
	}
	return sb.String()
}

// DisassembleInstruction formats a decoded instruction, e.g.
// "ADD [9] #3 -> [0]". Position operands are shown in brackets and
// immediates with a leading '#'.
func DisassembleInstruction(inst Instruction) string {
	var sb strings.Builder
	sb.WriteString(inst.Opcode.String())
	last := len(inst.Params) - 1
	for i, p := range inst.Params {
		if i == last && inst.Opcode.WritesMemory() {
			sb.WriteString(fmt.Sprintf(" -> [%d]", p.Value))
			continue
		}
		sb.WriteString(" " + formatParam(p))
	}
	return sb.String()
}

func disassembleInstruction(mem *Memory, addr int64) (string, int64) {
	inst, err := Decode(mem, addr)
	if err != nil {
		cell, _ := mem.Read(addr)
		return fmt.Sprintf("DATA %d", cell), 1
	}
	return DisassembleInstruction(inst), inst.Len()
}

func formatParam(p Parameter) string {
	if p.Mode == Immediate {
		return fmt.Sprintf("#%d", p.Value)
	}
	return fmt.Sprintf("[%d]", p.Value)
}
