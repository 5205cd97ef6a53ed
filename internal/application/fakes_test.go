package application

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"helpinject/internal/ports/output"
)

var _ output.FileStore = (*memStore)(nil)

// memStore is an in-memory FileStore that counts accesses.
type memStore struct {
	files    map[string]string
	dirs     map[string]bool
	reads    int
	writes   int
	readErr  error
	writeErr error
}

func newMemStore(dirs ...string) *memStore {
	s := &memStore{files: map[string]string{}, dirs: map[string]bool{}}
	for _, d := range dirs {
		s.dirs[filepath.Clean(d)] = true
	}
	return s
}

func (s *memStore) ReadFile(ctx context.Context, path string) (string, error) {
	s.reads++
	if s.readErr != nil {
		return "", s.readErr
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	content, ok := s.files[filepath.Clean(path)]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return content, nil
}

func (s *memStore) WriteFile(_ context.Context, path, content string) error {
	s.writes++
	if s.writeErr != nil {
		return s.writeErr
	}
	s.files[filepath.Clean(path)] = content
	return nil
}

func (s *memStore) Exists(_ context.Context, path string) (bool, error) {
	_, ok := s.files[filepath.Clean(path)]
	return ok, nil
}

func (s *memStore) IsDir(_ context.Context, path string) (bool, error) {
	return s.dirs[filepath.Clean(path)], nil
}

func (s *memStore) Glob(_ context.Context, pattern string) ([]string, error) {
	var out []string
	for p := range s.files {
		if ok, _ := filepath.Match(pattern, p); ok {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

// keyTranslator renders "key k=v ..." so tests can match on message ids.
type keyTranslator struct{}

func (keyTranslator) T(_ string, key string, data map[string]any) string {
	parts := []string{key}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return strings.Join(parts, " ")
}

func newTestLogger() (*logrus.Entry, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(log), hook
}

type testHook struct {
	*test.Hook
}

func (h *testHook) messages(lvl logrus.Level) []string {
	return messages(h.Hook, lvl)
}

// messages returns the logged messages at lvl.
func messages(hook *test.Hook, lvl logrus.Level) []string {
	var out []string
	for _, e := range hook.AllEntries() {
		if e.Level == lvl {
			out = append(out, e.Message)
		}
	}
	return out
}
