// Package snapshot records the outcome of an IntCode run in a compact CBOR
// form that can be written to disk and inspected later.
package snapshot

import (
	"fmt"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/chazu/intcode/pkg/intcode"
)

// Version is the snapshot format version.
const Version = 1

// Snapshot is the record of one finished run.
type Snapshot struct {
	Version    uint8   `cbor:"1,keyasint"`
	RunID      string  `cbor:"2,keyasint"`
	ProgramLen int     `cbor:"3,keyasint"`
	Memory     []int64 `cbor:"4,keyasint"`
	Outputs    []int64 `cbor:"5,keyasint,omitempty"`
	State      string  `cbor:"6,keyasint"`
	Steps      int     `cbor:"7,keyasint"`
	IP         int64   `cbor:"8,keyasint"`
	Error      string  `cbor:"9,keyasint,omitempty"`
	ErrorKind  string  `cbor:"10,keyasint,omitempty"`
}

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Capture records a stopped machine. outputs are the values the run
// produced; the machine itself does not keep them.
func Capture(m *intcode.Machine, programLen int, outputs []int64) *Snapshot {
	s := &Snapshot{
		Version:    Version,
		RunID:      uuid.New().String(),
		ProgramLen: programLen,
		Memory:     m.Snapshot(),
		Outputs:    outputs,
		State:      m.State().String(),
		Steps:      m.Steps(),
		IP:         m.IP(),
	}
	if err := m.Err(); err != nil {
		s.Error = err.Error()
		if kind, ok := intcode.KindOf(err); ok {
			s.ErrorKind = kind.Error()
		}
	}
	return s
}

// Marshal serializes a Snapshot to CBOR bytes.
func Marshal(s *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// Unmarshal deserializes a Snapshot from CBOR bytes.
func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal: %w", err)
	}
	if s.Version > Version {
		return nil, fmt.Errorf("snapshot: version %d is newer than supported version %d", s.Version, Version)
	}
	return &s, nil
}

// WriteFile writes the CBOR encoding of s to path.
func WriteFile(path string, s *Snapshot) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("snapshot: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a snapshot written by WriteFile.
func ReadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// String renders the snapshot for display.
func (s *Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run:     %s\n", s.RunID)
	fmt.Fprintf(&sb, "state:   %s after %d steps (ip=%d)\n", s.State, s.Steps, s.IP)
	if s.Error != "" {
		fmt.Fprintf(&sb, "error:   %s\n", s.Error)
	}
	fmt.Fprintf(&sb, "outputs: %s\n", intcode.Format(s.Outputs))
	fmt.Fprintf(&sb, "memory:  %s\n", intcode.Format(s.Memory))
	return sb.String()
}
