package application

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"helpinject/internal/domain"
	"helpinject/internal/domain/entities"
	"helpinject/internal/ports/input"
	"helpinject/internal/ports/output"
	"helpinject/pkg/textpatch"
)

var _ input.InjectorUseCase = (*InjectorService)(nil)

// InjectSettings tells the injector where to splice and how to report.
type InjectSettings struct {
	AnchorKey string
	MarkerKey string
	Comment   string
	Locale    string
	DryRun    bool
	// Diff receives a unified diff of every planned change when set.
	Diff io.Writer
}

type InjectorService struct {
	catalog    output.Catalog
	files      output.FileStore
	translator output.T
	log        *logrus.Entry
	settings   InjectSettings
	anchor     *textpatch.Anchor
}

func NewInjectorService(
	catalog output.Catalog,
	files output.FileStore,
	translator output.T,
	log *logrus.Entry,
	settings InjectSettings,
) *InjectorService {
	return &InjectorService{
		catalog:    catalog,
		files:      files,
		translator: translator,
		log:        log,
		settings:   settings,
		anchor:     textpatch.NewAnchor(settings.AnchorKey),
	}
}

// Inject adds the table of code to the language file at path. The file is
// written at most once, and only after the new content has been fully built
// and verified. Skips return the matching domain error next to their outcome.
func (s *InjectorService) Inject(ctx context.Context, path string, code entities.LanguageCode) (domain.Outcome, error) {
	name := filepath.Base(path)
	log := s.log.WithFields(logrus.Fields{"file": name, "language": code})

	table, ok := s.catalog.Lookup(code)
	if !ok || len(table.Entries) == 0 {
		log.Warn(s.msg("inject.no_translations", map[string]any{"Language": code}))
		return domain.OutcomeNoTranslations, fmt.Errorf("%s: %w", code, domain.ErrNoTranslations)
	}

	content, err := s.files.ReadFile(ctx, path)
	if err != nil {
		return s.fail(log, name, err)
	}

	if textpatch.HasMarker(content, s.settings.MarkerKey) {
		log.Info(s.msg("inject.already_applied", map[string]any{"File": name}))
		return domain.OutcomeAlreadyDone, fmt.Errorf("%s: %w", name, domain.ErrAlreadyApplied)
	}

	match, ok := s.anchor.Find(content)
	if !ok {
		log.Error(s.msg("inject.no_anchor", map[string]any{"File": name}))
		return domain.OutcomeNoAnchor, fmt.Errorf("%s: %w", name, domain.ErrAnchorNotFound)
	}

	lines := lo.Map(table.Entries, func(e entities.Entry, _ int) textpatch.Line {
		return textpatch.Line{Key: e.Key, Value: e.Value}
	})
	updated := textpatch.Splice(content, match, textpatch.Payload(s.settings.Comment, lines))

	if err := s.verify(updated[match.AnchorEnd:], table); err != nil {
		return s.fail(log, name, err)
	}

	if s.settings.Diff != nil {
		if err := writeDiff(s.settings.Diff, name, content, updated); err != nil {
			log.WithError(err).Warn("diff: write failed")
		}
	}

	if s.settings.DryRun {
		log.Info(s.msg("inject.would_apply", map[string]any{"File": name, "Count": len(lines)}))
		return domain.OutcomeWouldApply, nil
	}

	if err := s.files.WriteFile(ctx, path, updated); err != nil {
		return s.fail(log, name, err)
	}

	log.Info(s.msg("inject.applied", map[string]any{"File": name}))
	return domain.OutcomeDone, nil
}

// verify checks the inserted block: it must carry the marker, so the next
// run skips the file, and every value must read back unchanged.
func (s *InjectorService) verify(inserted string, table entities.Table) error {
	if !textpatch.HasMarker(inserted, s.settings.MarkerKey) {
		return fmt.Errorf("marker %q missing from %s table: %w", s.settings.MarkerKey, table.Language, domain.ErrVerifyFailed)
	}
	for _, e := range table.Entries {
		got, ok := textpatch.ExtractValue(inserted, e.Key)
		if !ok || got != e.Value {
			return fmt.Errorf("value of %q does not round-trip: %w", e.Key, domain.ErrVerifyFailed)
		}
	}
	return nil
}

func (s *InjectorService) fail(log *logrus.Entry, name string, err error) (domain.Outcome, error) {
	log.Error(s.msg("inject.failed", map[string]any{"File": name, "Error": err.Error()}))
	var stackErr *errors.Error
	if errors.As(err, &stackErr) {
		log.Debug(stackErr.ErrorStack())
	}
	return domain.OutcomeFailed, fmt.Errorf("inject %s: %w", name, err)
}

func (s *InjectorService) msg(key string, data map[string]any) string {
	return s.translator.T(s.settings.Locale, key, data)
}

func writeDiff(w io.Writer, name, before, after string) error {
	return difflib.WriteUnifiedDiff(w, difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name,
		ToFile:   name + " (patched)",
		Context:  3,
	})
}
