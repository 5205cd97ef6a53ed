package output

import "context"

// FileStore reads and writes the language resource files.
type FileStore interface {
	ReadFile(ctx context.Context, path string) (string, error)
	// WriteFile replaces the file content, keeping its permissions.
	WriteFile(ctx context.Context, path, content string) error
	Exists(ctx context.Context, path string) (bool, error)
	IsDir(ctx context.Context, path string) (bool, error)
	Glob(ctx context.Context, pattern string) ([]string, error)
}
