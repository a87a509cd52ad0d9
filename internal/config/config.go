// Package config loads the optional grouplist.yaml defaults file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultColumns is the grid width used by the view command.
const DefaultColumns = 4

// Config holds defaults for grouplist flags. All values are optional.
// CLI flags always override config values.
type Config struct {
	Columns  int      `yaml:"columns"`
	LogLevel string   `yaml:"log_level"`
	Format   string   `yaml:"format"`
	Groups   []string `yaml:"groups"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Columns: DefaultColumns, Format: "table"}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}

		return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", c.Columns)
	}

	switch c.Format {
	case "table", "yaml":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	return nil
}
