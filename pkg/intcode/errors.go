package intcode

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a fatal run error.
type ErrorKind int

const (
	UnknownOpcode ErrorKind = iota + 1
	UnknownParameterMode
	OutOfBounds
	MalformedProgramText
	InputExhausted
	IOFailure
)

var kindNames = map[ErrorKind]string{
	UnknownOpcode:        "unknown opcode",
	UnknownParameterMode: "unknown parameter mode",
	OutOfBounds:          "address out of bounds",
	MalformedProgramText: "malformed program text",
	InputExhausted:       "input exhausted",
	IOFailure:            "I/O failure",
}

// Error returns the kind's description. ErrorKind implements error so it
// can be used as an errors.Is target.
func (k ErrorKind) Error() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error describes a fatal failure and where it happened.
type Error struct {
	Kind  ErrorKind
	IP    int64 // address of the instruction being executed, -1 when not running
	Addr  int64 // offending address for OutOfBounds
	Value int64 // offending cell, opcode or mode digit
	Token string
	Err   error // underlying cause for IOFailure and MalformedProgramText
}

func (e *Error) Error() string {
	msg := "intcode: " + e.Kind.Error()
	switch e.Kind {
	case UnknownOpcode, UnknownParameterMode:
		msg += fmt.Sprintf(" %d", e.Value)
	case OutOfBounds:
		msg += fmt.Sprintf(" %d", e.Addr)
	case MalformedProgramText:
		msg += fmt.Sprintf(": token %d %q", e.Addr, e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.IP >= 0 {
		msg += fmt.Sprintf(" at %d", e.IP)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// KindOf returns the kind of an intcode error anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func boundsError(addr int64) *Error {
	return &Error{Kind: OutOfBounds, IP: -1, Addr: addr}
}
