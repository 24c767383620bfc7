package intcode

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int64
	}{
		{"single", "99", []int64{99}},
		{"simple", "1,9,10,3,2,3,11,0,99,30,40,50", []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"negative", "1101,100,-1,4,0", []int64{1101, 100, -1, 4, 0}},
		{"trailing newline", "1,0,0,0,99\n", []int64{1, 0, 0, 0, 99}},
		{"spaces around tokens", "  1, 0 ,0,\t0 ,99  ", []int64{1, 0, 0, 0, 99}},
		{"explicit plus", "+5,-5", []int64{5, -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.text, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		text      string
		wantIndex int64
		wantToken string
	}{
		{"", 0, ""},
		{"1,2,", 2, ""},
		{"1,,2", 1, ""},
		{"1,x,2", 1, "x"},
		{"1;2", 0, "1;2"},
		{"1.5", 0, "1.5"},
		{"0x10", 0, "0x10"},
		{"1,99999999999999999999", 1, "99999999999999999999"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.text)
		if !errors.Is(err, MalformedProgramText) {
			t.Errorf("Parse(%q) error = %v, want MalformedProgramText", tt.text, err)
			continue
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("Parse(%q) error is %T, want *Error", tt.text, err)
		}
		if e.Addr != tt.wantIndex || e.Token != tt.wantToken {
			t.Errorf("Parse(%q) token = %d %q, want %d %q", tt.text, e.Addr, e.Token, tt.wantIndex, tt.wantToken)
		}
	}
}

func TestMemoryReadWrite(t *testing.T) {
	m := NewMemory([]int64{10, 20, 30})

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	v, err := m.Read(1)
	if err != nil || v != 20 {
		t.Errorf("Read(1) = %d, %v, want 20, nil", v, err)
	}
	if err := m.Write(2, -7); err != nil {
		t.Fatalf("Write(2) failed: %v", err)
	}
	v, _ = m.Read(2)
	if v != -7 {
		t.Errorf("Read(2) after write = %d, want -7", v)
	}
}

func TestMemoryOutOfBounds(t *testing.T) {
	m := NewMemory([]int64{1, 2, 3})

	for _, addr := range []int64{-1, 3, 100, -1 << 40} {
		if _, err := m.Read(addr); !errors.Is(err, OutOfBounds) {
			t.Errorf("Read(%d) error = %v, want OutOfBounds", addr, err)
		}
		if err := m.Write(addr, 0); !errors.Is(err, OutOfBounds) {
			t.Errorf("Write(%d) error = %v, want OutOfBounds", addr, err)
		}
	}
	if m.Len() != 3 {
		t.Errorf("Len() after failed writes = %d, want 3", m.Len())
	}
	if got := m.Snapshot(); !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Errorf("memory changed by failed writes: %v", got)
	}
}

func TestNewMemoryCopies(t *testing.T) {
	cells := []int64{1, 2, 3}
	m := NewMemory(cells)
	cells[0] = 99
	if v, _ := m.Read(0); v != 1 {
		t.Errorf("NewMemory shares caller slice: Read(0) = %d", v)
	}

	snap := m.Snapshot()
	snap[1] = 99
	if v, _ := m.Read(1); v != 2 {
		t.Errorf("Snapshot shares backing slice: Read(1) = %d", v)
	}
}

func TestLoadAndFormat(t *testing.T) {
	m, err := Load(" 1,0,0,0,99\n")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := m.String(); got != "1,0,0,0,99" {
		t.Errorf("String() = %q, want 1,0,0,0,99", got)
	}
	if got := Format([]int64{-1, 0, 1}); got != "-1,0,1" {
		t.Errorf("Format = %q, want -1,0,1", got)
	}
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
