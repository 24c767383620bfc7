package intcode

import (
	"strconv"
	"strings"
)

// Memory is the program's address space. Its length is fixed at creation.
type Memory struct {
	cells []int64
}

// NewMemory creates a memory holding a copy of cells.
func NewMemory(cells []int64) *Memory {
	m := &Memory{cells: make([]int64, len(cells))}
	copy(m.cells, cells)
	return m
}

// Parse converts comma-separated program text into cells.
// Surrounding whitespace, and whitespace around each token, is ignored.
func Parse(text string) ([]int64, error) {
	tokens := strings.Split(strings.TrimSpace(text), ",")
	cells := make([]int64, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, &Error{Kind: MalformedProgramText, IP: -1, Addr: int64(i), Token: tok, Err: err}
		}
		cells[i] = v
	}
	return cells, nil
}

// Load parses program text into a new Memory.
func Load(text string) (*Memory, error) {
	cells, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return &Memory{cells: cells}, nil
}

// Len returns the number of cells.
func (m *Memory) Len() int {
	return len(m.cells)
}

// Read returns the cell at addr.
func (m *Memory) Read(addr int64) (int64, error) {
	if addr < 0 || addr >= int64(len(m.cells)) {
		return 0, boundsError(addr)
	}
	return m.cells[addr], nil
}

// Write stores v at addr.
func (m *Memory) Write(addr, v int64) error {
	if addr < 0 || addr >= int64(len(m.cells)) {
		return boundsError(addr)
	}
	m.cells[addr] = v
	return nil
}

// Snapshot returns a copy of all cells.
func (m *Memory) Snapshot() []int64 {
	out := make([]int64, len(m.cells))
	copy(out, m.cells)
	return out
}

// String renders the cells in program text form.
func (m *Memory) String() string {
	return Format(m.cells)
}

// Format renders cells as comma-separated program text.
func Format(cells []int64) string {
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(c, 10))
	}
	return sb.String()
}
