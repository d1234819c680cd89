package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the fetch binary's settings. The renderers take plain
// flags and only ever see the canonical file. Defaults match the
// published DISA source; a TOML file can override any subset and flags
// win over both.
type Config struct {
	SourceURL      string
	TimeoutSeconds int
	OutputDir      string
	CanonicalFile  string
}

// fileConfig maps config.toml keys onto Config fields.
type fileConfig struct {
	SourceURL      string `toml:"source_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	OutputDir      string `toml:"output_dir"`
	CanonicalFile  string `toml:"canonical_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SourceURL:      "https://dl.dod.cyber.mil/wp-content/uploads/stigs/zip/U_CCI_List.xml",
		TimeoutSeconds: 30,
		OutputDir:      ".",
		CanonicalFile:  "controls_rev4.csv",
	}
}

// Load overlays the TOML file at path onto the defaults. Only keys present
// in the file replace defaults; absent keys keep their built-in values.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("source_url") {
		cfg.SourceURL = strings.TrimSpace(raw.SourceURL)
	}
	if meta.IsDefined("timeout_seconds") {
		cfg.TimeoutSeconds = raw.TimeoutSeconds
	}
	if meta.IsDefined("output_dir") {
		cfg.OutputDir = strings.TrimSpace(raw.OutputDir)
	}
	if meta.IsDefined("canonical_file") {
		cfg.CanonicalFile = strings.TrimSpace(raw.CanonicalFile)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.SourceURL == "" {
		return fmt.Errorf("config: source_url must not be empty")
	}
	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: timeout_seconds must be positive, got %d", cfg.TimeoutSeconds)
	}
	if cfg.CanonicalFile == "" {
		return fmt.Errorf("config: canonical_file must not be empty")
	}
	return nil
}
