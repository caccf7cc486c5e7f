// Package config loads the advent CLI configuration from advent.yaml,
// falling back to defaults. Environment variables override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all advent configuration.
type Config struct {
	// Directory holding dayN.txt input files.
	InputDir string `yaml:"input_dir"`

	// Path of the sqlite run ledger.
	LedgerPath string `yaml:"ledger_path"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputDir:   "inputs",
		LedgerPath: "advent.db",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path, applying defaults for anything unset
// and environment overrides on top. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets ADVENT_* variables win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ADVENT_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("ADVENT_LEDGER_PATH"); v != "" {
		c.LedgerPath = v
	}
	if v := os.Getenv("ADVENT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
