// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for firelight.
//
// Configuration is loaded from a single file specified by:
//   - the --config flag passed to a command, or
//   - the FIRELIGHT_CONFIG environment variable.
//
// There are no fallbacks or automatic discovery. Commands run with
// built-in defaults when neither is set; a path that is set but
// unreadable is an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable naming the config file.
const EnvConfigPath = "FIRELIGHT_CONFIG"

// Config holds the tool defaults. Command-line flags override these
// per invocation.
type Config struct {
	// Indent configures the formatter.
	Indent IndentConfig `yaml:"indent"`

	// Theme is the path to a JSONC theme file for highlight output.
	// Empty means the built-in theme.
	Theme string `yaml:"theme,omitempty"`

	// Color controls ANSI output: "auto" (color when stdout is a
	// terminal), "always", or "never".
	Color string `yaml:"color"`
}

// IndentConfig configures the formatter defaults.
type IndentConfig struct {
	// Width is the number of spaces per indentation unit.
	Width int `yaml:"width"`

	// Tabs emits tabs instead of spaces.
	Tabs bool `yaml:"tabs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Indent: IndentConfig{Width: 2},
		Color:  "auto",
	}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve returns the configuration for a command invocation:
// flagPath if given, else the FIRELIGHT_CONFIG environment variable,
// else the built-in defaults.
func Resolve(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", c.Color)
	}
	if c.Indent.Width < 0 {
		return fmt.Errorf("invalid indent width %d", c.Indent.Width)
	}
	return nil
}
