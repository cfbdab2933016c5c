// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads markctl's optional TOML configuration file:
// per-rule citation overrides and the default CLI output format,
// following the load-then-validate shape of the teacher's
// internal/config.Load/Config.Validate.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// OutputConfig controls how markctl renders results.
type OutputConfig struct {
	Format string `toml:"format"` // "text" or "json"
}

// Config is markctl's on-disk configuration.
type Config struct {
	Citations map[string]string `toml:"citations"` // rule paragraph -> override text
	Output    OutputConfig      `toml:"output"`
}

// Default returns the configuration markctl uses when no config file is
// present.
func Default() *Config {
	return &Config{
		Citations: map[string]string{},
		Output:    OutputConfig{Format: "text"},
	}
}

// ValidationError is a single configuration field violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every ValidationError from a single Validate call.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msg := ""
	for i, err := range e {
		if i > 0 {
			msg += "; "
		}
		msg += err.Error()
	}
	return msg
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch c.Output.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("invalid format %q, must be one of: text, json", c.Output.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DefaultPath returns ~/.config/markctl/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "markctl", "config.toml"), nil
}

// Load reads the config file at path, falling back to Default() when the
// file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}
	if cfg.Citations == nil {
		cfg.Citations = map[string]string{}
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// CitationOverride returns the configured override text for paragraph,
// if any, falling back to the original DoD paragraph citation.
func (c *Config) CitationOverride(paragraph string) string {
	if override, ok := c.Citations[paragraph]; ok && override != "" {
		return override
	}
	return paragraph
}
