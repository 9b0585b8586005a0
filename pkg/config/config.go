// Package config loads the optional rolodex configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/rolodex/pkg/book"
)

// Config holds the user-tunable settings. Command-line flags override file
// values.
type Config struct {
	// SnapshotPath is the address book snapshot file. Empty means the
	// store's default location.
	SnapshotPath string `yaml:"snapshot_path"`

	// BirthdayWindowDays is the default lookahead for the birthdays
	// command.
	BirthdayWindowDays int `yaml:"birthday_window_days"`

	// Plain skips the full-screen interface and runs the line-oriented
	// loop instead.
	Plain bool `yaml:"plain"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BirthdayWindowDays: book.DefaultWindowDays,
	}
}

// DefaultPath returns the default config file location,
// ~/.rolodex/config.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".rolodex", "config.yaml"), nil
}

// Load reads the configuration file at path. An empty path means the
// default location, where a missing file simply yields defaults; an
// explicitly given path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	defaulted := path == ""
	if defaulted {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if defaulted && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.BirthdayWindowDays < 0 {
		return fmt.Errorf("config: birthday_window_days must not be negative")
	}
	return nil
}
