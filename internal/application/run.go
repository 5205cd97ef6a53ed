package application

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"helpinject/internal/domain"
	"helpinject/internal/domain/entities"
	"helpinject/internal/ports/input"
	"helpinject/internal/ports/output"
)

var _ input.RunUseCase = (*RunService)(nil)

// RunOptions are the per-invocation switches of a run.
type RunOptions struct {
	// Root is the directory job.BaseDir is resolved against.
	Root   string
	Locale string
	DryRun bool
	Diff   io.Writer
}

type RunService struct {
	catalog    output.Catalog
	files      output.FileStore
	translator output.T
	log        *logrus.Entry
	opts       RunOptions
}

func NewRunService(
	catalog output.Catalog,
	files output.FileStore,
	translator output.T,
	log *logrus.Entry,
	opts RunOptions,
) *RunService {
	return &RunService{
		catalog:    catalog,
		files:      files,
		translator: translator,
		log:        log,
		opts:       opts,
	}
}

// Run processes the job's records in order. A file's failure is recorded in
// the summary and never stops the remaining files; only a missing languages
// directory or a cancelled context end the run early.
func (s *RunService) Run(ctx context.Context, job entities.Job) (entities.Summary, error) {
	var summary entities.Summary

	dir := filepath.Join(s.opts.Root, job.BaseDir)
	isDir, err := s.files.IsDir(ctx, dir)
	if err != nil {
		return summary, fmt.Errorf("stat languages directory: %w", err)
	}
	if !isDir {
		s.log.Error(s.msg("run.dir_missing", map[string]any{"Dir": dir}))
		return summary, fmt.Errorf("languages directory %s: %w", dir, domain.ErrFileNotFound)
	}

	injector := NewInjectorService(s.catalog, s.files, s.translator, s.log, InjectSettings{
		AnchorKey: job.AnchorKey,
		MarkerKey: job.MarkerKey,
		Comment:   job.Comment,
		Locale:    s.opts.Locale,
		DryRun:    s.opts.DryRun,
		Diff:      s.opts.Diff,
	})

	for _, rec := range job.Records {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Results = append(summary.Results, s.process(ctx, injector, dir, rec))
	}

	key := "run.summary"
	if s.opts.DryRun {
		key = "run.summary_dry_run"
	}
	s.log.Info(s.msg(key, map[string]any{"Count": summary.Succeeded()}))

	s.noteUncovered(ctx, dir, job)
	return summary, nil
}

func (s *RunService) process(ctx context.Context, injector input.InjectorUseCase, dir string, rec entities.InjectionRecord) entities.Result {
	res := entities.Result{File: rec.File, Language: rec.Language}
	path := filepath.Join(dir, rec.File)

	exists, err := s.files.Exists(ctx, path)
	switch {
	case err != nil:
		s.log.WithField("file", rec.File).Error(s.msg("inject.failed", map[string]any{"File": rec.File, "Error": err.Error()}))
		res.Outcome, res.Err = domain.OutcomeFailed, err
	case !exists:
		s.log.WithField("file", rec.File).Warn(s.msg("run.file_missing", map[string]any{"File": rec.File}))
		res.Outcome, res.Err = domain.OutcomeMissingFile, fmt.Errorf("%s: %w", rec.File, domain.ErrFileNotFound)
	default:
		res.Outcome, res.Err = injector.Inject(ctx, path, rec.Language)
	}
	return res
}

// noteUncovered reports language files on disk that no record targets.
func (s *RunService) noteUncovered(ctx context.Context, dir string, job entities.Job) {
	matches, err := s.files.Glob(ctx, filepath.Join(dir, job.FileGlob))
	if err != nil {
		s.log.WithError(err).Debug("glob language files")
		return
	}
	targeted := lo.Map(job.Records, func(r entities.InjectionRecord, _ int) string { return r.File })
	uncovered := lo.Filter(lo.Map(matches, func(m string, _ int) string { return filepath.Base(m) }),
		func(name string, _ int) bool { return !lo.Contains(targeted, name) })
	if len(uncovered) == 0 {
		return
	}
	s.log.Warn(s.msg("run.uncovered", map[string]any{"Files": strings.Join(uncovered, ", ")}))
}

func (s *RunService) msg(key string, data map[string]any) string {
	return s.translator.T(s.opts.Locale, key, data)
}
