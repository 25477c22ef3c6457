package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/backmassage/assetseq/internal/config"
	"github.com/backmassage/assetseq/internal/report"
)

// workspace chdirs into a fresh temp dir and creates the default root in it.
func workspace(t *testing.T) (dir, root string) {
	t.Helper()
	dir = t.TempDir()
	chdir(t, dir)
	root = filepath.Join(dir, config.DefaultRootPath)
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	return dir, root
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
		t.Fatal(err)
	}
}

func names(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func TestRun_RenamesAndWritesReport(t *testing.T) {
	dir, root := workspace(t)
	touch(t, root, "b.png")
	touch(t, root, "a.jpg")
	touch(t, root, ".hidden.txt")
	reportPath := filepath.Join(dir, "out", "report.yaml")

	if code := run([]string{"--no-color", "--report", reportPath}); code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	if got, want := strings.Join(names(t, root), ","), ".hidden.txt,1.jpg,2.png"; got != want {
		t.Errorf("root = %s, want %s", got, want)
	}

	rep, err := report.Load(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Error != "" {
		t.Errorf("report error = %q, want none", rep.Error)
	}
	if len(rep.Records) != 2 || rep.Stats.Renamed != 2 {
		t.Errorf("report records = %d, renamed = %d, want 2 and 2", len(rep.Records), rep.Stats.Renamed)
	}
}

func TestRun_DryRunLeavesTree(t *testing.T) {
	_, root := workspace(t)
	touch(t, root, "z.jpg")

	if code := run([]string{"--no-color", "--dry-run"}); code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	if got := strings.Join(names(t, root), ","); got != "z.jpg" {
		t.Errorf("root = %s, want z.jpg untouched", got)
	}
}

func TestRun_OutputInsideRootRejectedBeforeCreate(t *testing.T) {
	tests := []struct {
		name string
		flag string
	}{
		{"log", "--log"},
		{"report", "--report"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, root := workspace(t)

			code := run([]string{"--no-color", tt.flag, filepath.Join(root, "run.out")})
			if code != 1 {
				t.Errorf("exit = %d, want 1", code)
			}
			if got := names(t, root); len(got) != 0 {
				t.Errorf("root entries after rejected run = %v, want none", got)
			}
		})
	}
}

func TestRun_MissingRoot(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	logPath := filepath.Join(dir, "run.log")

	if code := run([]string{"--no-color", "--log", logPath}); code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("log file should not be created when the root is missing (stat err = %v)", err)
	}
}

func TestRun_BadFlag(t *testing.T) {
	workspace(t)
	if code := run([]string{"--color", "--no-color"}); code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if code := run([]string{"some/dir"}); code != 1 {
		t.Errorf("positional root: exit = %d, want 1", code)
	}
}

func TestRun_FailureStillWritesReport(t *testing.T) {
	dir, root := workspace(t)
	touch(t, root, "a.jpg")
	touch(t, root, "b.jpg")
	if err := os.Mkdir(filepath.Join(root, "1.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(root, "1.jpg"), "keep.txt")
	reportPath := filepath.Join(dir, "report.yaml")

	if code := run([]string{"--no-color", "--report", reportPath}); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}

	rep, err := report.Load(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rep.Error, "apply rename") {
		t.Errorf("report error = %q, want the rename failure", rep.Error)
	}
	if len(rep.Records) != 1 || rep.Stats.Renamed != 0 {
		t.Errorf("report records = %d, renamed = %d, want 1 and 0", len(rep.Records), rep.Stats.Renamed)
	}
	if got := strings.Join(names(t, root), ","); got != "1.jpg,a.jpg,b.jpg" {
		t.Errorf("root = %s, want the tree untouched", got)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
