package intcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Input supplies values to IN instructions. Read blocks until a value is
// available and returns io.EOF once the input is exhausted.
type Input interface {
	Read() (int64, error)
}

// Output receives values from OUT instructions in execution order.
type Output interface {
	Write(v int64) error
}

// ---------------------------------------------------------------------------
// In-memory
// ---------------------------------------------------------------------------

// SliceInput is an in-memory input queue consumed front to back.
type SliceInput struct {
	values []int64
	pos    int
}

// NewSliceInput creates an input that yields values in order.
func NewSliceInput(values ...int64) *SliceInput {
	return &SliceInput{values: values}
}

func (s *SliceInput) Read() (int64, error) {
	if s.pos >= len(s.values) {
		return 0, io.EOF
	}
	v := s.values[s.pos]
	s.pos++
	return v, nil
}

// Remaining returns the number of unread values.
func (s *SliceInput) Remaining() int {
	return len(s.values) - s.pos
}

// SliceOutput collects output values.
type SliceOutput struct {
	Values []int64
}

func (s *SliceOutput) Write(v int64) error {
	s.Values = append(s.Values, v)
	return nil
}

// ---------------------------------------------------------------------------
// Channels
// ---------------------------------------------------------------------------

// ChanInput reads from a Go channel. A closed channel is an exhausted input.
type ChanInput <-chan int64

func (c ChanInput) Read() (int64, error) {
	v, ok := <-c
	if !ok {
		return 0, io.EOF
	}
	return v, nil
}

// ChanOutput sends each value on a Go channel. Write blocks until the value
// is received (or buffered).
type ChanOutput chan<- int64

func (c ChanOutput) Write(v int64) error {
	c <- v
	return nil
}

// ---------------------------------------------------------------------------
// Line-oriented text
// ---------------------------------------------------------------------------

// LineInput reads one integer per line. Blank lines are skipped.
type LineInput struct {
	sc   *bufio.Scanner
	line int
}

// NewLineInput creates a LineInput over r.
func NewLineInput(r io.Reader) *LineInput {
	return &LineInput{sc: bufio.NewScanner(r)}
}

func (l *LineInput) Read() (int64, error) {
	for l.sc.Scan() {
		l.line++
		text := strings.TrimSpace(l.sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("input line %d: %w", l.line, err)
		}
		return v, nil
	}
	if err := l.sc.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// LineOutput writes one integer per line.
type LineOutput struct {
	w io.Writer
}

// NewLineOutput creates a LineOutput over w.
func NewLineOutput(w io.Writer) *LineOutput {
	return &LineOutput{w: w}
}

func (l *LineOutput) Write(v int64) error {
	_, err := fmt.Fprintln(l.w, v)
	return err
}

// MultiInput reads from each input in turn, moving to the next when one is
// exhausted.
func MultiInput(inputs ...Input) Input {
	return &multiInput{inputs: inputs}
}

type multiInput struct {
	inputs []Input
}

func (m *multiInput) Read() (int64, error) {
	for len(m.inputs) > 0 {
		v, err := m.inputs[0].Read()
		if errors.Is(err, io.EOF) {
			m.inputs = m.inputs[1:]
			continue
		}
		return v, err
	}
	return 0, io.EOF
}

// MultiOutput duplicates each value to all outputs, stopping at the first error.
func MultiOutput(outputs ...Output) Output {
	return multiOutput(outputs)
}

type multiOutput []Output

func (m multiOutput) Write(v int64) error {
	for _, o := range m {
		if err := o.Write(v); err != nil {
			return err
		}
	}
	return nil
}
