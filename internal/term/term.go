// Package term provides color-mode resolution and the shared lipgloss styles.
//
// Styles are package-level because logging and display both render with
// them. [Configure] selects the color profile once during startup; with colors
// disabled every style renders its input unchanged.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/backmassage/assetseq/internal/config"
)

// Styles used across packages.
var (
	Red     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	Green   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	Yellow  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	Blue    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	Cyan    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	Magenta = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)

// Configure resolves the color mode and sets the lipgloss color profile.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	if resolve(mode) {
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
