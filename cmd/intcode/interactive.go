package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

// promptInput reads input values from the terminal, one per line, with
// line editing and history. Lines that are not integers are rejected and
// the prompt repeats. Ctrl-C or Ctrl-D ends the input.
type promptInput struct {
	ln     *liner.State
	prompt string
}

func newPromptInput(prompt string) *promptInput {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &promptInput{ln: ln, prompt: prompt}
}

func (p *promptInput) Read() (int64, error) {
	for {
		line, err := p.ln.Prompt(p.prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "not an integer: %q\n", line)
			continue
		}
		p.ln.AppendHistory(line)
		return v, nil
	}
}

func (p *promptInput) Close() {
	p.ln.Close()
}
