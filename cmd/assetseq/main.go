// Command assetseq renumbers the image files under public/images/new-collection
// so each directory holds 1.<ext>, 2.<ext>, ... in sorted name order.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/assetseq/internal/config"
	"github.com/backmassage/assetseq/internal/display"
	"github.com/backmassage/assetseq/internal/logging"
	"github.com/backmassage/assetseq/internal/renamer"
	"github.com/backmassage/assetseq/internal/report"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// Phase 1: Bootstrap. No logger yet, so errors go straight to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, argv, version); err != nil {
		fmt.Fprintf(os.Stderr, "assetseq: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "assetseq: %v\n", err)
		return 1
	}

	// The log file is created by NewLogger, so its location is checked first.
	if err := config.ValidateRoot(cfg.RootPath); err != nil {
		fmt.Fprintf(os.Stderr, "assetseq: %v\n", err)
		return 1
	}
	rootAbs, err := absPath(cfg.RootPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "assetseq: cannot resolve root path: %s\n", cfg.RootPath)
		return 1
	}
	if err := cfg.ValidateOutputs(rootAbs); err != nil {
		fmt.Fprintf(os.Stderr, "assetseq: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "assetseq: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner(os.Stdout)

	log.Info("=== assetseq v%s (%s) ===", version, commit)
	log.Info("Root: %s", cfg.RootPath)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}
	log.Info("")

	// Phase 3: Signal handling. Cancel between renames on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping after the current rename")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Walk and rename.
	rep := report.New(&cfg)
	res, runErr := renamer.Run(ctx, &cfg, log)
	rep.Finish(res, runErr)

	log.Info("")
	for _, line := range display.Summary(res.Stats, cfg.DryRun) {
		log.Info("%s", line)
	}

	if cfg.ReportFile != "" {
		if err := rep.Write(cfg.ReportFile); err != nil {
			log.Error("%v", err)
			return 1
		}
		log.Info("Report: %s", cfg.ReportFile)
	}

	if runErr != nil {
		log.Error("%v", runErr)
		if !cfg.DryRun {
			log.Error("Run aborted; %s already renamed stay renamed", display.Plural(res.Stats.Renamed, "file"))
		}
		return 1
	}
	log.Success("Done")
	return 0
}

// absPath returns the absolute, symlink-resolved path so the root can be
// compared against the log and report locations.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
