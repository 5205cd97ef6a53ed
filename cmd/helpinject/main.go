package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"

	"helpinject/internal/application"
	"helpinject/internal/config"
	"helpinject/internal/domain/entities"
	"helpinject/internal/infrastructure/filesystem"
	"helpinject/internal/infrastructure/i18n"
	"helpinject/internal/infrastructure/logging"
	"helpinject/internal/infrastructure/tables"
)

var (
	version = "unversioned"
	commit  string
)

func main() {
	var o config.Overrides

	flaggy.SetName("helpinject")
	flaggy.SetDescription("Adds the help menu translations to the frontend language files")
	flaggy.String(&o.Root, "r", "root", "Repository root the job's base_dir is resolved against")
	flaggy.String(&o.JobFile, "j", "job", "Job file (TOML) replacing the built-in run list")
	flaggy.String(&o.TablesDir, "t", "tables", "Directory of help.<code>.toml tables replacing the built-in ones")
	flaggy.String(&o.Locale, "l", "locale", "Language of console messages (en, hu)")
	flaggy.Bool(&o.DryRun, "n", "dry-run", "Report what would change without writing")
	flaggy.Bool(&o.ShowDiff, "d", "diff", "Print a unified diff of every change")
	flaggy.SetVersion(fmt.Sprintf("%s\nCommit: %s\nOS: %s\nArch: %s", version, commit, runtime.GOOS, runtime.GOARCH))
	flaggy.Parse()

	cfg, err := config.Load(o)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Debug: cfg.Debug})
	translator := i18n.NewTranslator(logger, cfg.Locale)

	catalog, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatalf("❌ %v", err)
	}
	job, err := loadJob(cfg)
	if err != nil {
		logger.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := application.RunOptions{Root: cfg.Root, Locale: cfg.Locale, DryRun: cfg.DryRun}
	if cfg.ShowDiff {
		opts.Diff = os.Stdout
	}
	run := application.NewRunService(catalog, filesystem.NewStore(), translator, logger, opts)

	summary, err := run.Run(ctx, job)
	if err != nil {
		logger.WithError(err).Error("❌ run aborted")
		logger.Debug(errors.Wrap(err, 0).ErrorStack())
		stop()
		os.Exit(1)
	}
	// Per-file failures are reported above; they do not change the exit status.
	logger.Debugf("done: %d applied, %d skipped, %d failed", summary.Succeeded(), summary.Skipped(), summary.Failed())
}

func loadCatalog(cfg *config.Config) (*entities.Catalog, error) {
	if cfg.TablesDir == "" {
		return tables.DefaultCatalog()
	}
	return tables.LoadCatalog(os.DirFS(cfg.TablesDir))
}

func loadJob(cfg *config.Config) (entities.Job, error) {
	if cfg.JobFile == "" {
		return tables.DefaultJob()
	}
	return tables.LoadJobFile(cfg.JobFile)
}
