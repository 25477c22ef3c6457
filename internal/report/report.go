// Package report writes the rename manifest: one YAML document per run
// listing every attempted rename, for review or for tooling that consumes a
// dry run.
package report

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/assetseq/internal/config"
	"github.com/backmassage/assetseq/internal/renamer"
)

// Report models the manifest file.
type Report struct {
	RunID      string           `yaml:"run_id"`
	Root       string           `yaml:"root"`
	DryRun     bool             `yaml:"dry_run"`
	StartedAt  time.Time        `yaml:"started_at"`
	FinishedAt time.Time        `yaml:"finished_at"`
	Error      string           `yaml:"error,omitempty"`
	Stats      renamer.RunStats `yaml:"stats"`
	Records    []renamer.Record `yaml:"records"`
}

// New starts a report for a run over cfg.RootPath.
func New(cfg *config.Config) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Root:      cfg.RootPath,
		DryRun:    cfg.DryRun,
		StartedAt: time.Now().UTC(),
	}
}

// Finish copies the run result in. A failed run still reports the records it
// got through, with err recorded alongside.
func (r *Report) Finish(res renamer.Result, err error) {
	r.FinishedAt = time.Now().UTC()
	r.Stats = res.Stats
	r.Records = res.Records
	if r.Records == nil {
		r.Records = []renamer.Record{}
	}
	if err != nil {
		r.Error = err.Error()
	}
}

// Write marshals the report to path, creating parent directories.
func (r *Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "report: marshal")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "report: ensure dir")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "report: write")
	}
	return nil
}

// Load reads a report written by Write.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "report: read")
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrapf(err, "report: parse %s", path)
	}
	return &r, nil
}
