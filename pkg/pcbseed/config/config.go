// Package config provides configuration loading for the seed generator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/fetch"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/sources"
)

// Config holds all configuration for a generation run.
type Config struct {
	Debug                 bool           `yaml:"debug"`
	ReferenceTime         string         `yaml:"reference_time"`
	ContinueOnSourceError bool           `yaml:"continue_on_source_error"`
	Output                OutputConfig   `yaml:"output"`
	Fetch                 FetchConfig    `yaml:"fetch"`
	Sources               []SourceConfig `yaml:"sources"`
}

// OutputConfig holds output destinations.
type OutputConfig struct {
	JSONPath   string `yaml:"json_path"`
	Pretty     *bool  `yaml:"pretty"`
	SQLitePath string `yaml:"sqlite_path"`
}

// PrettyOrDefault returns whether to indent JSON; defaults to true when unset.
func (o *OutputConfig) PrettyOrDefault() bool {
	if o.Pretty != nil {
		return *o.Pretty
	}
	return true
}

// FetchConfig holds download settings.
type FetchConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// SourceConfig locates one workbook and describes its sheets.
type SourceConfig struct {
	Path           string `yaml:"path"`
	URL            string `yaml:"url"`
	DriveID        string `yaml:"drive_id"`
	sources.Schema `yaml:",inline"`
}

// Location returns where the fetcher should look for the workbook.
func (s SourceConfig) Location() fetch.Location {
	loc := fetch.Location{Path: s.Path, URL: s.URL}
	if loc.URL == "" && s.DriveID != "" {
		loc.URL = fetch.DriveURL(s.DriveID)
	}
	return loc
}

// Load reads and parses the config file at path, applies defaults and
// environment overrides (a .env file in the working directory is honored).
// Relative source and output paths are resolved against the config directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	configDir := filepath.Dir(path)
	for i := range cfg.Sources {
		cfg.Sources[i].Path = expandPath(cfg.Sources[i].Path, configDir)
	}
	cfg.Output.JSONPath = expandPath(cfg.Output.JSONPath, configDir)
	cfg.Output.SQLitePath = expandPath(cfg.Output.SQLitePath, configDir)

	ApplyDefaults(&cfg)
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Reference parses ReferenceTime. The zero time means "now".
func (c *Config) Reference() (time.Time, error) {
	if c.ReferenceTime == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, c.ReferenceTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference_time %q: %w", c.ReferenceTime, err)
	}
	return t.UTC(), nil
}

// Validate checks sources and the reference time.
func (c *Config) Validate() error {
	if _, err := c.Reference(); err != nil {
		return err
	}
	if len(c.Sources) == 0 {
		return fmt.Errorf("no sources configured")
	}
	seen := make(map[string]bool, len(c.Sources))
	for _, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("source name is required")
		}
		if seen[src.Name] {
			return fmt.Errorf("duplicate source %q", src.Name)
		}
		seen[src.Name] = true
		if src.Path == "" && src.URL == "" && src.DriveID == "" {
			return fmt.Errorf("source %q: one of path, url or drive_id is required", src.Name)
		}
		if src.IsZero() {
			return fmt.Errorf("source %q: no sheets configured", src.Name)
		}
		if err := src.Schema.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// applyEnv overlays PCBSEED_* environment variables.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PCBSEED_REFERENCE_TIME"); v != "" {
		cfg.ReferenceTime = v
	}
	if v := os.Getenv("PCBSEED_OUTPUT"); v != "" {
		cfg.Output.JSONPath = v
	}
	if v := os.Getenv("PCBSEED_SQLITE"); v != "" {
		cfg.Output.SQLitePath = v
	}
}

// expandPath makes a relative path absolute against configDir.
func expandPath(path, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}
