package renamer

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/backmassage/assetseq/internal/config"
	"github.com/backmassage/assetseq/internal/logging"
)

// Result is everything a run produced. Records holds every attempted rename,
// including a final one that failed; Stats counts only completed ones.
type Result struct {
	Records []Record
	Stats   RunStats
}

// Run walks cfg.RootPath and renumbers the files of each directory it visits.
// It stops at the first filesystem error or when ctx is cancelled between
// renames; renames already done stay done.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (Result, error) {
	var res Result
	err := filepath.WalkDir(cfg.RootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "walk %s", path)
		}
		if !d.IsDir() {
			return nil
		}
		return processDir(ctx, cfg, log, path, &res)
	})
	return res, err
}

// processDir lists, plans and applies one directory. WalkDir reads the
// directory's entries only after this returns, so it descends into the
// post-rename tree.
func processDir(ctx context.Context, cfg *config.Config, log *logging.Logger, dir string, res *Result) error {
	listing, err := ListDir(dir)
	if err != nil {
		return err
	}
	res.Stats.Directories++
	res.Stats.Hidden += len(listing.Hidden)

	log.Debug(cfg.Verbose, "Directory %s: %d file(s), %d hidden", dir, len(listing.Eligible), len(listing.Hidden))
	for _, name := range listing.Hidden {
		log.Debug(cfg.Verbose, "  Skip hidden: %s", name)
	}

	for _, rec := range PlanDir(listing) {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "interrupted")
		}
		rec.DryRun = cfg.DryRun
		res.Records = append(res.Records, rec)

		if rec.Collision {
			log.Warn("Target exists, renaming anyway: %s", rec.NewPath)
		}
		if cfg.DryRun {
			log.Info("[DRY] Renaming %s to %s", rec.OldPath, rec.NewPath)
		} else {
			log.Info("Renaming %s to %s", rec.OldPath, rec.NewPath)
			if err := Apply(rec); err != nil {
				return err
			}
		}
		res.Stats.add(rec)
	}
	return nil
}

// Apply performs one rename. Existing targets are replaced where the
// platform's rename allows it.
func Apply(rec Record) error {
	if err := os.Rename(rec.OldPath, rec.NewPath); err != nil {
		return errors.Wrap(err, "apply rename")
	}
	return nil
}
