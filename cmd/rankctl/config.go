// SPDX-License-Identifier: MIT
// rankctl: configuration file.
//
// The file is optional YAML; flags given on the command line override it.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk rankctl configuration.
type Config struct {
	Log     LogConfig `yaml:"log"`
	Workers int       `yaml:"workers"` // default worker count for chunk and sample
	Limit   int       `yaml:"limit"`   // default element cap for list; 0 means no cap
	Seed    int64     `yaml:"seed"`    // default sampling seed
	Max     int64     `yaml:"max"`     // largest universe chunk will enumerate
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log:     LogConfig{Level: "info", Format: "console"},
		Workers: 4,
		Limit:   1000,
		Seed:    1,
		Max:     50_000_000,
	}
}

// LoadConfig reads path over DefaultConfig. Keys missing from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values no command can run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be ≥ 1, got %d", c.Workers)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be ≥ 0, got %d", c.Limit)
	}
	if c.Max < 0 {
		return fmt.Errorf("max must be ≥ 0, got %d", c.Max)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log format must be console or json, got %q", c.Log.Format)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}
