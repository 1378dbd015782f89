// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "$ ", cfg.PromptSuffix)
	assert.Equal(t, 10, cfg.MaxArgs)
	assert.Equal(t, 8, cfg.MaxProcs)
	require.NoError(t, cfg.Validate())
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/etc/msh.yaml", []byte(
		"prompt_suffix: \"> \"\nmax_procs: 4\n",
	), 0o644))

	cfg, err := Load(fsys, "/etc/msh.yaml")
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.PromptSuffix)
	assert.Equal(t, 4, cfg.MaxProcs)
	// Unset keys keep their defaults.
	assert.Equal(t, 10, cfg.MaxArgs)
}

func TestLoadExplicitMissingFileIsError(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope.yaml")
	require.ErrorIs(t, err, ErrReadConfig)
}

func TestLoadMalformedYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bad.yaml", []byte("prompt_suffix: [unclosed"), 0o644))

	_, err := Load(fsys, "/bad.yaml")
	require.ErrorIs(t, err, ErrParseConfig)
}

func TestValidateRejectsNegativeCaps(t *testing.T) {
	cfg := Default()
	cfg.MaxArgs = -1
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidateRejectsEmptyPromptSuffix(t *testing.T) {
	cfg := Default()
	cfg.PromptSuffix = ""
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestLimits(t *testing.T) {
	cfg := Default()
	lim := cfg.Limits()
	assert.Equal(t, 10, lim.MaxArgs)
	assert.Equal(t, 8, lim.MaxClauses)
}
