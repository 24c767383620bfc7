// Package manifest handles intcode.toml run configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest file looked up by Load and FindAndLoad.
const FileName = "intcode.toml"

// Manifest represents an intcode.toml run configuration.
type Manifest struct {
	Program Program `toml:"program"`
	Input   Input   `toml:"input"`
	Patches []Patch `toml:"patch"`
	Output  Output  `toml:"output"`
	Log     Log     `toml:"log"`

	// Dir is the directory containing the intcode.toml file (set at load time).
	Dir string `toml:"-"`
}

// Program locates the program text. Source takes precedence over Path.
type Program struct {
	Path   string `toml:"path"`
	Source string `toml:"source"`
}

// Input configures the values fed to IN instructions.
type Input struct {
	Values      []int64 `toml:"values"`
	Interactive bool    `toml:"interactive"`
}

// Patch overwrites one memory cell before the run starts.
type Patch struct {
	Addr  int64 `toml:"addr"`
	Value int64 `toml:"value"`
}

// Output configures what is written after the run.
type Output struct {
	Snapshot   string `toml:"snapshot"`
	DumpMemory bool   `toml:"dump-memory"`
}

// Log configures logging verbosity and destination.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Load reads FileName from dir. A manifest that names neither a path nor
// inline source runs input.txt next to it.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if m.Program.Path == "" && m.Program.Source == "" {
		m.Program.Path = "input.txt"
	}

	return &m, nil
}

// FindAndLoad loads the FileName closest to startDir, checking startDir
// and then each parent. It returns nil, nil when none exists.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// Resolve returns p made absolute against the manifest directory.
// Empty and absolute paths are returned unchanged.
func (m *Manifest) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Dir, p)
}

// ProgramText returns the configured program text, reading the program
// file when no inline source is set.
func (m *Manifest) ProgramText() (string, error) {
	if m.Program.Source != "" {
		return m.Program.Source, nil
	}
	path := m.Resolve(m.Program.Path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read program %s: %w", path, err)
	}
	return string(data), nil
}

// LogFilePath returns the absolute log file path, or "" for stderr.
func (m *Manifest) LogFilePath() string {
	return m.Resolve(m.Log.File)
}

// SnapshotPath returns the absolute snapshot path, or "" if none is configured.
func (m *Manifest) SnapshotPath() string {
	return m.Resolve(m.Output.Snapshot)
}

// Write encodes m as TOML to path. The CLI's -save flag uses it to record
// the settings of a run.
func Write(path string, m *Manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}
