package intcode

import (
	"strings"
	"testing"
)

func TestDisassembleEmpty(t *testing.T) {
	output := Disassemble(nil)
	if !strings.Contains(output, "IntCode program, 0 cells") {
		t.Errorf("missing header: %q", output)
	}
}

func TestDisassembleSimple(t *testing.T) {
	output := Disassemble([]int64{1002, 4, 3, 4, 33, 99})

	for _, want := range []string{
		"0000  MUL [4] #3 -> [4]",
		"0004  DATA 33",
		"0005  HALT",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("listing missing %q:\n%s", want, output)
		}
	}
}

func TestDisassembleWithName(t *testing.T) {
	output := DisassembleWithName([]int64{99}, "day5")
	if !strings.HasPrefix(output, "; === day5 ===\n") {
		t.Errorf("missing name header: %q", output)
	}
}

func TestDisassembleTruncatedInstruction(t *testing.T) {
	// ADD needs three parameters; only one follows.
	output := Disassemble([]int64{1, 5})
	if !strings.Contains(output, "0000  DATA 1") || !strings.Contains(output, "0001  DATA 5") {
		t.Errorf("truncated instruction not listed as data:\n%s", output)
	}
}

func TestDisassembleInstruction(t *testing.T) {
	tests := []struct {
		inst Instruction
		want string
	}{
		{Instruction{Opcode: OpHalt}, "HALT"},
		{Instruction{Opcode: OpInput, Params: []Parameter{{7, Position}}}, "IN -> [7]"},
		{Instruction{Opcode: OpOutput, Params: []Parameter{{7, Immediate}}}, "OUT #7"},
		{Instruction{Opcode: OpJumpIfFalse, Params: []Parameter{{0, Position}, {-1, Immediate}}}, "JF [0] #-1"},
		{Instruction{Opcode: OpEquals, Params: []Parameter{{1, Immediate}, {2, Position}, {3, Immediate}}}, "EQ #1 [2] -> [3]"},
	}

	for _, tt := range tests {
		if got := DisassembleInstruction(tt.inst); got != tt.want {
			t.Errorf("DisassembleInstruction(%s) = %q, want %q", tt.inst.Opcode, got, tt.want)
		}
	}
}
