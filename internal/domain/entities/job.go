package entities

// InjectionRecord pairs a language file with the table applied to it.
type InjectionRecord struct {
	File     string       `toml:"file"`
	Language LanguageCode `toml:"language"`
}

// Job describes one run: where the language files live, how to find the
// insertion point and which files to patch.
type Job struct {
	BaseDir   string            `toml:"base_dir"`
	AnchorKey string            `toml:"anchor_key"`
	MarkerKey string            `toml:"marker_key"`
	Comment   string            `toml:"comment"`
	FileGlob  string            `toml:"file_glob"`
	Records   []InjectionRecord `toml:"record"`
}
