// intcode CLI - runs, traces and disassembles IntCode programs
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	"github.com/chazu/intcode/pkg/intcode"
	"github.com/chazu/intcode/pkg/snapshot"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("intcode")

func main() {
	var opts options
	flag.StringVar(&opts.configDir, "c", ".", "Directory to start searching for intcode.toml")
	flag.StringVar(&opts.source, "e", "", "Program text to run instead of a file")
	flag.StringVar(&opts.inputs, "in", "", "Comma-separated input values")
	flag.BoolVar(&opts.stdin, "stdin", false, "Read input values from stdin, one per line")
	flag.BoolVar(&opts.interactive, "i", false, "Prompt for each input value")
	flag.StringVar(&opts.patches, "patch", "", "Memory patches applied before the run (e.g. '1=12,2=2')")
	flag.BoolVar(&opts.disasm, "disasm", false, "Print a disassembly instead of running")
	flag.BoolVar(&opts.trace, "trace", false, "Log every instruction before it executes (raises verbosity to 2)")
	flag.BoolVar(&opts.dump, "dump", false, "Print final memory after the run")
	flag.StringVar(&opts.snapshotPath, "snapshot", "", "Write a CBOR snapshot of the run to this file")
	flag.BoolVar(&opts.save, "save", false, "Write the effective settings to intcode.toml in the -c directory and exit")
	inspect := flag.String("inspect", "", "Print a snapshot written by -snapshot and exit")
	flag.IntVar(&opts.verbosity, "v", -1, "Log verbosity (0-2); overrides intcode.toml")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: intcode [options] [program-file]\n\n")
		fmt.Fprintf(os.Stderr, "Runs an IntCode program. Settings not given on the command line are\n")
		fmt.Fprintf(os.Stderr, "taken from the nearest intcode.toml.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  intcode input.txt -in 1             # Run with input 1\n")
		fmt.Fprintf(os.Stderr, "  intcode input.txt -i                # Prompt for inputs\n")
		fmt.Fprintf(os.Stderr, "  intcode -e 1,0,0,0,99 -dump         # Run inline program, print memory\n")
		fmt.Fprintf(os.Stderr, "  intcode input.txt -patch 1=12,2=2   # Patch addresses 1 and 2 first\n")
		fmt.Fprintf(os.Stderr, "  intcode input.txt -disasm           # Print a listing\n")
		fmt.Fprintf(os.Stderr, "  intcode -inspect run.cbor           # Show a saved snapshot\n")
		fmt.Fprintf(os.Stderr, "  intcode input.txt -in 5 -save       # Remember these settings\n")
	}
	flag.Parse()

	if *inspect != "" {
		s, err := snapshot.ReadFile(*inspect)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(s.String())
		os.Exit(0)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.programPath = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}

	var logFile *string
	if cfg.logFile != "" {
		logFile = &cfg.logFile
	}
	commonlog.Configure(cfg.verbosity, logFile)

	if opts.save {
		path, err := saveManifest(opts.configDir, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		os.Exit(0)
	}

	if cfg.disasm {
		cells, err := intcode.Parse(cfg.text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(intcode.DisassembleWithName(cells, cfg.name))
		os.Exit(0)
	}

	in, closeInput, err := openInput(cfg, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	res, err := execute(cfg, in, os.Stdout)
	closeInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if res.err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", res.err)
		os.Exit(1)
	}
}
