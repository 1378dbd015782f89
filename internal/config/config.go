// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the session configuration: the prompt suffix, the
// history file and the hard caps on tokens per command and clauses per
// parallel group. Configuration is read from an optional YAML file; an
// absent file simply means defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/mshell-dev/msh/internal/parse"
)

// DefaultFileName is the configuration file looked up in the user's home
// directory when no --config flag is given.
const DefaultFileName = ".msh.yaml"

var (
	// ErrReadConfig is returned when the configuration file exists but
	// cannot be read.
	ErrReadConfig = errors.New("failed to read configuration file")
	// ErrParseConfig is returned when the configuration file is not
	// valid YAML.
	ErrParseConfig = errors.New("failed to parse configuration file")
	// ErrInvalidConfig is returned when the configuration fails
	// validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config is the session configuration.
type Config struct {
	// PromptSuffix is appended to the working directory in the prompt.
	PromptSuffix string `yaml:"prompt_suffix" json:"prompt_suffix" validate:"required"`
	// HistoryFile is where interactive line history is persisted.
	// Empty disables history persistence.
	HistoryFile string `yaml:"history_file" json:"history_file"`
	// MaxArgs caps the tokens per command. Zero means unbounded.
	MaxArgs int `yaml:"max_args" json:"max_args" validate:"gte=0"`
	// MaxProcs caps the clauses per parallel group. Zero means
	// unbounded.
	MaxProcs int `yaml:"max_procs" json:"max_procs" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".msh_history")
	}

	return &Config{
		PromptSuffix: "$ ",
		HistoryFile:  historyFile,
		MaxArgs:      10,
		MaxProcs:     8,
	}
}

// Load reads the configuration file at path from fsys, applying it on top
// of the defaults. An empty path means DefaultFileName in the user's home
// directory, and in that case a missing file is not an error.
func Load(fsys afero.Fs, path string) (*Config, error) {
	optional := false

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}

		path = filepath.Join(home, DefaultFileName)
		optional = true
	}

	cfg := Default()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, errors.Join(ErrReadConfig, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Join(ErrParseConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	if err := validate.Struct(c); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}

// Limits returns the parser limits derived from the configuration.
func (c *Config) Limits() parse.Limits {
	return parse.Limits{
		MaxArgs:    c.MaxArgs,
		MaxClauses: c.MaxProcs,
	}
}
