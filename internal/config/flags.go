package config

// This file implements CLI flag parsing on top of go-arg. The root path is
// intentionally absent: every run targets DefaultRootPath.

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

// flagArgs is the go-arg destination. Color flags are captured as bools and
// applied after parsing so DefaultConfig's ColorAuto holds unless one is set.
type flagArgs struct {
	DryRun  bool   `arg:"-d,--dry-run" help:"preview renames; do not touch the filesystem"`
	Verbose bool   `arg:"-v,--verbose" help:"verbose output"`
	Color   bool   `arg:"--color" help:"force colored logs"`
	NoColor bool   `arg:"--no-color" help:"disable colored logs"`
	LogFile string `arg:"-l,--log" placeholder:"PATH" help:"append logs to file"`
	Report  string `arg:"-r,--report" placeholder:"PATH" help:"write a YAML manifest of rename records"`

	version string
}

// Version implements go-arg's Versioned interface.
func (a flagArgs) Version() string { return "assetseq v" + a.version }

// Description implements go-arg's Described interface.
func (flagArgs) Description() string {
	return "Renumbers the files of every directory under " + DefaultRootPath +
		" to 1.<ext>, 2.<ext>, ... in sorted name order."
}

// ParseFlags parses argv (without the program name) into cfg. On --help or
// --version it prints and exits.
func ParseFlags(cfg *Config, argv []string, version string) error {
	p, a, err := parse(argv, version)
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(os.Stdout, a.Version())
		os.Exit(0)
	case err != nil:
		return err
	}
	apply(cfg, a)
	return nil
}

func parse(argv []string, version string) (*arg.Parser, *flagArgs, error) {
	a := &flagArgs{version: version}
	p, err := arg.NewParser(arg.Config{Program: "assetseq", IgnoreEnv: true}, a)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build flag parser")
	}
	if err := p.Parse(argv); err != nil {
		return p, a, err
	}
	if a.Color && a.NoColor {
		return p, a, errors.New("--color and --no-color are mutually exclusive")
	}
	return p, a, nil
}

// apply copies parsed flag values into cfg.
func apply(cfg *Config, a *flagArgs) {
	cfg.DryRun = a.DryRun
	cfg.Verbose = a.Verbose
	cfg.LogFile = a.LogFile
	cfg.ReportFile = a.Report
	if a.NoColor {
		cfg.ColorMode = ColorNever
	} else if a.Color {
		cfg.ColorMode = ColorAlways
	}
}
