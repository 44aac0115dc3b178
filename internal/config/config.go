// Package config loads the YAML engine roster used by the command line
// tool: which engines to launch, default analysis parameters and log
// settings.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// EngineConfig describes one engine to register at startup.
type EngineConfig struct {
	Name    string            `yaml:"name" validate:"required"`
	Path    string            `yaml:"path" validate:"required"`
	Args    []string          `yaml:"args,omitempty"`
	Options map[string]string `yaml:"options,omitempty"`
}

// AnalysisConfig holds default search parameters applied when a command
// line flag does not override them. All fields are optional; an engine
// started without any limit searches until stopped.
type AnalysisConfig struct {
	Depth      *int `yaml:"depth,omitempty" validate:"omitempty,min=1"`
	MoveTimeMs *int `yaml:"movetime_ms,omitempty" validate:"omitempty,min=1"`
	Nodes      *int `yaml:"nodes,omitempty" validate:"omitempty,min=1"`
	MultiPV    *int `yaml:"multipv,omitempty" validate:"omitempty,min=1,max=256"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level      string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty" validate:"omitempty,min=1"`
	MaxBackups int    `yaml:"max_backups,omitempty" validate:"omitempty,min=0"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty" validate:"omitempty,min=0"`
}

// Config is the root of the roster file.
type Config struct {
	Engines  []EngineConfig `yaml:"engines" validate:"required,min=1,dive"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
}

// Load reads and validates a roster file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates roster YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks structural constraints and rejects duplicate engine
// names, which would otherwise be silently collapsed by the manager's
// idempotent registration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Engines))
	for _, e := range c.Engines {
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("invalid config: duplicate engine name %q", e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}
