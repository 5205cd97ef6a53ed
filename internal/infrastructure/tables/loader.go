package tables

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"helpinject/internal/domain/entities"
)

//go:embed help.*.toml job.toml
var tablesFS embed.FS

const (
	tablePattern   = "help.*.toml"
	defaultJobFile = "job.toml"
	defaultComment = "Help Menu"
	defaultGlob    = "language_*.ts"
)

type tableFile struct {
	Language string           `toml:"language"`
	Entries  []entities.Entry `toml:"entry"`
}

// DefaultCatalog loads the tables embedded in the binary.
func DefaultCatalog() (*entities.Catalog, error) {
	return LoadCatalog(tablesFS)
}

// LoadCatalog decodes every help.<code>.toml file in fsys. Entry order is
// the order of the [[entry]] blocks.
func LoadCatalog(fsys fs.FS) (*entities.Catalog, error) {
	names, err := fs.Glob(fsys, tablePattern)
	if err != nil {
		return nil, fmt.Errorf("glob tables: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no %s files found", tablePattern)
	}

	tables := make([]entities.Table, 0, len(names))
	for _, name := range names {
		t, err := loadTable(fsys, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return entities.NewCatalog(tables...)
}

func loadTable(fsys fs.FS, name string) (entities.Table, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return entities.Table{}, fmt.Errorf("read table %s: %w", name, err)
	}
	var tf tableFile
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tf); err != nil {
		return entities.Table{}, fmt.Errorf("decode table %s: %w", name, err)
	}

	declared := strings.TrimSuffix(strings.TrimPrefix(name, "help."), ".toml")
	if tf.Language == "" {
		tf.Language = declared
	}
	code, err := entities.ParseLanguage(tf.Language)
	if err != nil {
		return entities.Table{}, fmt.Errorf("table %s: %w", name, err)
	}
	if string(code) != declared {
		return entities.Table{}, fmt.Errorf("table %s declares language %q", name, tf.Language)
	}
	for i, e := range tf.Entries {
		if strings.TrimSpace(e.Key) == "" {
			return entities.Table{}, fmt.Errorf("table %s: entry %d has an empty key", name, i+1)
		}
	}
	return entities.Table{Language: code, Entries: tf.Entries}, nil
}

// DefaultJob returns the run configuration embedded in the binary.
func DefaultJob() (entities.Job, error) {
	return LoadJob(tablesFS, defaultJobFile)
}

// LoadJobFile reads a job from a TOML file on disk.
func LoadJobFile(path string) (entities.Job, error) {
	return LoadJob(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadJob decodes and normalizes a job file.
func LoadJob(fsys fs.FS, name string) (entities.Job, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return entities.Job{}, fmt.Errorf("read job %s: %w", name, err)
	}
	var job entities.Job
	if err := toml.Unmarshal(raw, &job); err != nil {
		return entities.Job{}, fmt.Errorf("decode job %s: %w", name, err)
	}
	if err := normalizeJob(&job); err != nil {
		return entities.Job{}, fmt.Errorf("job %s: %w", name, err)
	}
	return job, nil
}

func normalizeJob(job *entities.Job) error {
	if strings.TrimSpace(job.BaseDir) == "" {
		return fmt.Errorf("base_dir is required")
	}
	if strings.TrimSpace(job.AnchorKey) == "" {
		return fmt.Errorf("anchor_key is required")
	}
	if strings.TrimSpace(job.MarkerKey) == "" {
		return fmt.Errorf("marker_key is required")
	}
	if job.Comment == "" {
		job.Comment = defaultComment
	}
	if job.FileGlob == "" {
		job.FileGlob = defaultGlob
	}
	for i, r := range job.Records {
		if strings.TrimSpace(r.File) == "" {
			return fmt.Errorf("record %d: file is required", i+1)
		}
		// Unknown codes stay as written; the injector reports them per file.
		if code, err := entities.ParseLanguage(string(r.Language)); err == nil {
			job.Records[i].Language = code
		}
	}
	return nil
}
