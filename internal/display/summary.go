// Package display formats the banner and the end-of-run summary.
package display

import (
	"fmt"

	"github.com/backmassage/assetseq/internal/renamer"
)

// Plural returns "1 file" / "2 files".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Summary returns the end-of-run lines for s, in logging order.
func Summary(s renamer.RunStats, dryRun bool) []string {
	verb := "Renamed"
	if dryRun {
		verb = "Would rename"
	}
	lines := []string{
		fmt.Sprintf("Directories: %d", s.Directories),
		fmt.Sprintf("%s: %s (%d already numbered)", verb, Plural(s.Renamed, "file"), s.Unchanged),
		fmt.Sprintf("Hidden skipped: %d", s.Hidden),
	}
	if s.Collisions > 0 {
		lines = append(lines, fmt.Sprintf("Collisions: %d (targets overwritten)", s.Collisions))
	}
	return lines
}
