// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. The root directory is fixed at [DefaultRootPath]; flags only
// control how a run is displayed and recorded.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DefaultRootPath is the asset subtree normalized by every run, relative to
// the working directory.
const DefaultRootPath = "public/images/new-collection"

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// mutated by [ParseFlags], and then passed by pointer to the renamer, the
// logger and the report writer.
type Config struct {
	// RootPath is the subtree to renumber. Not exposed as a flag.
	RootPath string

	// Behavior.
	DryRun bool // Plan and log renames without touching the filesystem.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path (appended).
	ReportFile string    // Optional YAML manifest of rename records.
}

// DefaultConfig returns a Config targeting [DefaultRootPath] with colors in
// auto mode and no file sinks.
func DefaultConfig() Config {
	return Config{
		RootPath:  DefaultRootPath,
		DryRun:    false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the color mode and that a root path is set. RootPath is
// normalized in place.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	c.RootPath = NormalizeDirArg(strings.TrimSpace(c.RootPath))
	if c.RootPath == "" {
		return errors.New("root path must not be empty")
	}
	return nil
}

// ValidateRoot checks that path exists and is a directory.
func ValidateRoot(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "root not found")
	}
	if !fi.IsDir() {
		return errors.Errorf("root is not a directory: %s", path)
	}
	return nil
}

// ValidateOutputs ensures the log and report files do not live inside the
// root, where the run would renumber them along with the assets. rootAbs must
// be an absolute, symlink-resolved path.
func (c *Config) ValidateOutputs(rootAbs string) error {
	for _, p := range []struct{ flag, path string }{
		{"log", c.LogFile},
		{"report", c.ReportFile},
	} {
		if p.path == "" {
			continue
		}
		abs, err := filepath.Abs(p.path)
		if err != nil {
			return errors.Wrapf(err, "resolve %s path", p.flag)
		}
		if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
			abs = filepath.Join(dir, filepath.Base(abs))
		}
		if isWithin(rootAbs, abs) {
			return errors.Errorf("%s file must not be inside the root directory: %s", p.flag, p.path)
		}
	}
	return nil
}

// isWithin reports whether path equals dir or lies beneath it.
func isWithin(dir, path string) bool {
	sep := string(filepath.Separator)
	return path == dir || strings.HasPrefix(path, dir+sep)
}
