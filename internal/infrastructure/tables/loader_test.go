package tables

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpinject/internal/domain"
	"helpinject/internal/domain/entities"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	assert.ElementsMatch(t, []entities.LanguageCode{entities.English, entities.German}, catalog.Languages())

	en, ok := catalog.Lookup(entities.English)
	require.True(t, ok)
	require.NotEmpty(t, en.Entries)
	assert.Equal(t, entities.Entry{Key: "help.title", Value: "Help"}, en.Entries[0])
	assert.Equal(t, "help.shortcuts.overview.description", en.Entries[len(en.Entries)-1].Key)

	de, ok := catalog.Lookup(entities.German)
	require.True(t, ok)
	assert.Equal(t, en.Keys(), de.Keys())
	assert.Equal(t, "Hilfe", de.Entries[0].Value)

	_, ok = catalog.Lookup(entities.Hungarian)
	assert.False(t, ok)
}

func TestLoadCatalogKeyMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"help.en.toml": {Data: []byte("language = \"en\"\n[[entry]]\nkey = \"a\"\nvalue = \"A\"\n[[entry]]\nkey = \"b\"\nvalue = \"B\"\n")},
		"help.de.toml": {Data: []byte("language = \"de\"\n[[entry]]\nkey = \"a\"\nvalue = \"A\"\n")},
	}

	_, err := LoadCatalog(fsys)
	assert.ErrorIs(t, err, domain.ErrInconsistentKeys)
}

func TestLoadCatalogDuplicateKey(t *testing.T) {
	fsys := fstest.MapFS{
		"help.en.toml": {Data: []byte("[[entry]]\nkey = \"a\"\nvalue = \"A\"\n[[entry]]\nkey = \"a\"\nvalue = \"B\"\n")},
	}

	_, err := LoadCatalog(fsys)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestLoadCatalogPreservesOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"help.en.toml": {Data: []byte("language = \"en\"\n[[entry]]\nkey = \"z\"\nvalue = \"1\"\n[[entry]]\nkey = \"a\"\nvalue = \"2\"\n[[entry]]\nkey = \"m\"\nvalue = \"3\"\n")},
	}

	catalog, err := LoadCatalog(fsys)
	require.NoError(t, err)
	en, ok := catalog.Lookup(entities.English)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, en.Keys())
}

func TestLoadCatalogErrors(t *testing.T) {
	type scenario struct {
		name string
		fsys fstest.MapFS
	}

	scenarios := []scenario{
		{"no tables", fstest.MapFS{}},
		{"language mismatch", fstest.MapFS{"help.en.toml": {Data: []byte("language = \"de\"\n")}}},
		{"unsupported language", fstest.MapFS{"help.xx.toml": {Data: []byte("")}}},
		{"unknown field", fstest.MapFS{"help.en.toml": {Data: []byte("[[entry]]\nkey = \"a\"\ntext = \"A\"\n")}}},
		{"empty key", fstest.MapFS{"help.en.toml": {Data: []byte("[[entry]]\nkey = \" \"\nvalue = \"A\"\n")}}},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			_, err := LoadCatalog(s.fsys)
			assert.Error(t, err)
		})
	}
}

func TestDefaultJob(t *testing.T) {
	job, err := DefaultJob()
	require.NoError(t, err)

	assert.Equal(t, "frontend/src/utils/languages", job.BaseDir)
	assert.Equal(t, "welcome.issue.section.actual", job.AnchorKey)
	assert.Equal(t, "help.title", job.MarkerKey)
	assert.Equal(t, "Help Menu", job.Comment)
	assert.Equal(t, []entities.InjectionRecord{
		{File: "language_en.ts", Language: entities.English},
		{File: "language_de.ts", Language: entities.German},
	}, job.Records)
}

func TestLoadJobFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.toml")
	content := "base_dir = \"langs\"\nanchor_key = \"last\"\nmarker_key = \"help.title\"\n\n[[record]]\nfile = \"language_en.ts\"\nlanguage = \"EN\"\n\n[[record]]\nfile = \"language_fr.ts\"\nlanguage = \"fr\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	job, err := LoadJobFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Help Menu", job.Comment)
	assert.Equal(t, "language_*.ts", job.FileGlob)
	assert.Equal(t, entities.English, job.Records[0].Language)
	assert.Equal(t, entities.LanguageCode("fr"), job.Records[1].Language)
}

func TestLoadJobMissingFields(t *testing.T) {
	fsys := fstest.MapFS{
		"no_anchor.toml": {Data: []byte("base_dir = \"x\"\nmarker_key = \"m\"\n")},
		"no_file.toml":   {Data: []byte("base_dir = \"x\"\nanchor_key = \"a\"\nmarker_key = \"m\"\n[[record]]\nlanguage = \"en\"\n")},
	}

	_, err := LoadJob(fsys, "no_anchor.toml")
	assert.Error(t, err)
	_, err = LoadJob(fsys, "no_file.toml")
	assert.Error(t, err)
	_, err = LoadJob(fsys, "missing.toml")
	assert.Error(t, err)
}
