package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Root      string
	JobFile   string
	TablesDir string
	Locale    string
	LogLevel  string
	Debug     bool
	DryRun    bool
	ShowDiff  bool
}

// Overrides carries command-line values; empty fields keep the environment value.
type Overrides struct {
	Root      string
	JobFile   string
	TablesDir string
	Locale    string
	DryRun    bool
	ShowDiff  bool
}

// Load reads configuration from the environment (and an optional .env file),
// applies the command-line overrides and validates the result.
func Load(o Overrides) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment (CI, shell, etc.).
	}

	cfg := &Config{
		Root:      os.Getenv("HELPINJECT_ROOT"),
		JobFile:   os.Getenv("HELPINJECT_JOB"),
		TablesDir: os.Getenv("HELPINJECT_TABLES"),
		Locale:    os.Getenv("HELPINJECT_LOCALE"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		Debug:     strings.EqualFold(os.Getenv("DEBUG"), "TRUE"),
	}
	cfg.apply(o)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) apply(o Overrides) {
	if o.Root != "" {
		c.Root = o.Root
	}
	if o.JobFile != "" {
		c.JobFile = o.JobFile
	}
	if o.TablesDir != "" {
		c.TablesDir = o.TablesDir
	}
	if o.Locale != "" {
		c.Locale = o.Locale
	}
	c.DryRun = c.DryRun || o.DryRun
	c.ShowDiff = c.ShowDiff || o.ShowDiff
}

// validate normalizes paths and checks the console locale.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Root) == "" {
		c.Root = "."
	}
	c.Root = filepath.Clean(c.Root)

	if c.JobFile != "" {
		c.JobFile = filepath.Clean(c.JobFile)
	}
	if c.TablesDir != "" {
		c.TablesDir = filepath.Clean(c.TablesDir)
	}

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("config: HELPINJECT_LOCALE invalid (%q): %w", c.Locale, err)
	}
	c.Locale = tag.String()

	return nil
}
