package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"

	"helpinject/internal/ports/output"
)

var _ output.FileStore = (*Store)(nil)

// Store is the os-backed FileStore. Errors carry a stack trace.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, 0)
	}
	return string(raw), nil
}

// WriteFile writes through a temporary sibling and renames it over path, so
// readers never see a half-written file.
func (s *Store) WriteFile(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, 0)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return errors.Wrap(err, 0)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return errors.Wrap(err, 0)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, 0)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, 0)
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	info, err := s.stat(ctx, path)
	if err != nil || info == nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func (s *Store) IsDir(ctx context.Context, path string) (bool, error) {
	info, err := s.stat(ctx, path)
	if err != nil || info == nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (s *Store) Glob(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return matches, nil
}

// stat returns a nil FileInfo and no error when path does not exist.
func (s *Store) stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return info, nil
}
