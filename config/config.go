// Package config loads the derkit shell configuration
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the shell settings
type Config struct {
	Prompt  string  `yaml:"prompt"`
	Color   bool    `yaml:"color"`
	Logging Logging `yaml:"logging"`
	Integer Integer `yaml:"integer"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Integer holds the defaults for the int commands
type Integer struct {
	Width    int  `yaml:"width"`
	Unsigned bool `yaml:"unsigned"`
}

// Widths supported by the integer codec
var Widths = []int{8, 16, 32, 64, 128}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Prompt: "der> ",
		Color:  true,
		Logging: Logging{
			Level: "info",
		},
		Integer: Integer{
			Width: 64,
		},
	}
}

// Validate checks the configuration for values the shell cannot use
func (c *Config) Validate() error {
	for _, w := range Widths {
		if c.Integer.Width == w {
			return nil
		}
	}
	return errors.Errorf("unsupported integer width %d", c.Integer.Width)
}

// Load reads configuration from path, filling unset fields from the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return config, nil
}

// LoadOrDefault behaves like Load, but returns the defaults if path does not
// exist
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes the configuration to path
func Save(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	return errors.Wrap(os.WriteFile(path, data, 0600), "writing config file")
}

// DefaultPath returns the per-user configuration path
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "derkit.yaml"
	}
	return filepath.Join(dir, "derkit", "config.yaml")
}
