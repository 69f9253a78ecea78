// Package config loads the optional project config file, ".jsonls.yaml",
// that sets default diagnostic severities and format-dialect toggles
// for the CLI.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// FileName is the conventional name of the project config file,
// resolved relative to the current working directory.
const FileName = ".jsonls.yaml"

// Config holds project-level defaults that are not expressible in a
// JSON Schema document itself.
type Config struct {
	// DefaultSeverity overrides the severity schema violations are
	// reported at ("warning" by default, following the host UI
	// convention every schema diagnostic already uses).
	DefaultSeverity string `yaml:"defaultSeverity"`

	// Formats toggles which of the four honored "format" keywords are
	// enforced; an entry set to false downgrades a format mismatch from
	// a diagnostic to a no-op, without touching the schema document
	// itself.
	Formats map[string]bool `yaml:"formats"`

	// CollectComments mirrors ParseOptions.CollectComments as a project
	// default, so the CLI does not need the flag repeated on every
	// invocation.
	CollectComments bool `yaml:"collectComments"`
}

// Default returns the configuration used when no config file is
// present.
func Default() *Config {
	return &Config{DefaultSeverity: "warning"}
}

// Load reads and decodes the config file at path. A missing file is
// not an error — it returns Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FormatEnabled reports whether the named format keyword should be
// enforced under cfg.
func (c *Config) FormatEnabled(name string) bool {
	if c == nil || c.Formats == nil {
		return true
	}
	enabled, set := c.Formats[name]
	if !set {
		return true
	}
	return enabled
}
