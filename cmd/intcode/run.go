package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chazu/intcode/manifest"
	"github.com/chazu/intcode/pkg/intcode"
	"github.com/chazu/intcode/pkg/snapshot"
)

// options holds the raw command-line flags.
type options struct {
	configDir    string
	source       string
	programPath  string
	inputs       string
	stdin        bool
	interactive  bool
	patches      string
	disasm       bool
	trace        bool
	dump         bool
	snapshotPath string
	save         bool
	verbosity    int // -1 when not given
}

// runConfig is the effective configuration after merging intcode.toml and flags.
type runConfig struct {
	name         string
	path         string // program file, empty for inline source
	text         string
	inputs       []int64
	stdin        bool
	interactive  bool
	patches      []manifest.Patch
	disasm       bool
	trace        bool
	dump         bool
	snapshotPath string
	verbosity    int
	logFile      string
}

// result is the outcome of one run. err is the machine's fault, if any.
type result struct {
	machine *intcode.Machine
	outputs []int64
	err     error
}

// usageError is a mistake on the command line, as opposed to a failure
// reading the program or the manifest.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// exitCode returns the process status for an error that stopped the CLI
// before the run: 2 for usage errors, 1 otherwise.
func exitCode(err error) int {
	var u *usageError
	if errors.As(err, &u) {
		return 2
	}
	return 1
}

// resolveConfig merges the nearest intcode.toml with the flags. Flags win.
func resolveConfig(opts options) (*runConfig, error) {
	m, err := manifest.FindAndLoad(opts.configDir)
	if err != nil {
		return nil, err
	}

	cfg := &runConfig{
		stdin:       opts.stdin,
		interactive: opts.interactive,
		disasm:      opts.disasm,
		trace:       opts.trace,
		dump:        opts.dump,
	}
	if m != nil {
		cfg.inputs = m.Input.Values
		cfg.interactive = cfg.interactive || m.Input.Interactive
		cfg.patches = m.Patches
		cfg.dump = cfg.dump || m.Output.DumpMemory
		cfg.snapshotPath = m.SnapshotPath()
		cfg.verbosity = m.Log.Verbosity
		cfg.logFile = m.LogFilePath()
	}

	switch {
	case opts.source != "":
		cfg.name = "<inline>"
		cfg.text = opts.source
	case opts.programPath != "":
		data, err := os.ReadFile(opts.programPath)
		if err != nil {
			return nil, fmt.Errorf("cannot read program %s: %w", opts.programPath, err)
		}
		cfg.name = opts.programPath
		cfg.path = opts.programPath
		cfg.text = string(data)
	case m != nil:
		text, err := m.ProgramText()
		if err != nil {
			return nil, err
		}
		cfg.name = m.Resolve(m.Program.Path)
		cfg.path = cfg.name
		if m.Program.Source != "" {
			cfg.name = m.Resolve(manifest.FileName)
			cfg.path = ""
		}
		cfg.text = text
	default:
		return nil, usagef("no program: give a program file, -e, or an intcode.toml")
	}

	if opts.inputs != "" {
		if cfg.inputs, err = parseValues(opts.inputs); err != nil {
			return nil, usagef("-in: %v", err)
		}
	}
	if opts.patches != "" {
		if cfg.patches, err = parsePatches(opts.patches); err != nil {
			return nil, usagef("-patch: %v", err)
		}
	}
	if opts.snapshotPath != "" {
		cfg.snapshotPath = opts.snapshotPath
	}
	if opts.verbosity >= 0 {
		cfg.verbosity = opts.verbosity
	}
	if cfg.trace && cfg.verbosity < 2 {
		cfg.verbosity = 2
	}
	if cfg.stdin && cfg.interactive {
		return nil, usagef("-stdin and -i cannot be combined")
	}
	return cfg, nil
}

// saveManifest writes cfg to an intcode.toml in dir so that a later run
// from dir needs no flags. It returns the written path.
func saveManifest(dir string, cfg *runConfig) (string, error) {
	m := &manifest.Manifest{
		Input:   manifest.Input{Values: cfg.inputs, Interactive: cfg.interactive},
		Patches: cfg.patches,
		Output:  manifest.Output{Snapshot: cfg.snapshotPath, DumpMemory: cfg.dump},
		Log:     manifest.Log{Verbosity: cfg.verbosity, File: cfg.logFile},
	}
	if cfg.path != "" {
		abs, err := filepath.Abs(cfg.path)
		if err != nil {
			return "", err
		}
		m.Program.Path = abs
	} else {
		m.Program.Source = strings.TrimSpace(cfg.text)
	}

	path := filepath.Join(dir, manifest.FileName)
	if err := manifest.Write(path, m); err != nil {
		return "", err
	}
	return path, nil
}

// parseValues parses "1,-2,3" into input values.
func parseValues(s string) ([]int64, error) {
	var values []int64
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input value %q", tok)
		}
		values = append(values, v)
	}
	return values, nil
}

// parsePatches parses "1=12,2=2" into memory patches.
func parsePatches(s string) ([]manifest.Patch, error) {
	var patches []manifest.Patch
	for _, tok := range strings.Split(s, ",") {
		addr, value, ok := strings.Cut(strings.TrimSpace(tok), "=")
		if !ok {
			return nil, fmt.Errorf("invalid patch %q: want addr=value", tok)
		}
		a, err := strconv.ParseInt(strings.TrimSpace(addr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid patch address %q", addr)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid patch value %q", value)
		}
		patches = append(patches, manifest.Patch{Addr: a, Value: v})
	}
	return patches, nil
}

// openInput builds the machine's input: configured values first, then
// stdin lines or the interactive prompt. The returned func releases the
// terminal.
func openInput(cfg *runConfig, stdin io.Reader) (intcode.Input, func(), error) {
	values := intcode.NewSliceInput(cfg.inputs...)
	switch {
	case cfg.interactive:
		p := newPromptInput("input> ")
		return intcode.MultiInput(values, p), p.Close, nil
	case cfg.stdin:
		return intcode.MultiInput(values, intcode.NewLineInput(stdin)), func() {}, nil
	}
	return values, func() {}, nil
}

// execute loads and patches the program, runs it, and writes the requested
// artifacts. A returned error is a host failure; a machine fault is reported
// in result.err.
func execute(cfg *runConfig, in intcode.Input, stdout io.Writer) (*result, error) {
	mem, err := intcode.Load(cfg.text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.name, err)
	}
	programLen := mem.Len()

	for _, p := range cfg.patches {
		if err := mem.Write(p.Addr, p.Value); err != nil {
			return nil, fmt.Errorf("patch %d=%d: %w", p.Addr, p.Value, err)
		}
		log.Debugf("patched [%d] = %d", p.Addr, p.Value)
	}

	collected := &intcode.SliceOutput{}
	m := intcode.NewMachine(mem, in, intcode.MultiOutput(intcode.NewLineOutput(stdout), collected))
	if cfg.trace {
		m.Tracer = func(inst intcode.Instruction) {
			log.Debugf("%04d  %s", inst.Addr, intcode.DisassembleInstruction(inst))
		}
	}

	log.Infof("running %s (%d cells)", cfg.name, programLen)
	runErr := m.Run()
	if runErr != nil {
		log.Errorf("%s faulted after %d steps: %v", cfg.name, m.Steps(), runErr)
	} else {
		log.Infof("%s halted after %d steps, %d outputs", cfg.name, m.Steps(), len(collected.Values))
	}

	if cfg.dump {
		fmt.Fprintln(stdout, intcode.Format(m.Snapshot()))
	}

	if cfg.snapshotPath != "" {
		s := snapshot.Capture(m, programLen, collected.Values)
		if err := snapshot.WriteFile(cfg.snapshotPath, s); err != nil {
			if runErr != nil {
				return nil, fmt.Errorf("%w (after run fault: %w)", err, runErr)
			}
			return nil, err
		}
		log.Infof("wrote snapshot %s (run %s)", cfg.snapshotPath, s.RunID)
	}

	return &result{machine: m, outputs: collected.Values, err: runErr}, nil
}
