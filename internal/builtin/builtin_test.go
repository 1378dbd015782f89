// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package builtin

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the process into a temp dir for the duration of the
// test; the working directory is process-global state.
func chdirTemp(t *testing.T) string {
	t.Helper()

	orig, err := os.Getwd()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	// Resolve symlinks (macOS /tmp) so comparisons are stable.
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	return resolved
}

func TestCdChangesWorkingDirectory(t *testing.T) {
	base := chdirTemp(t)

	sub := filepath.Join(base, "subdir")
	require.NoError(t, os.Mkdir(sub, 0o755))

	require.NoError(t, Cd(context.Background(), []string{"cd", sub}))

	wd, err := os.Getwd()
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, sub, resolved)
}

func TestCdMissingTarget(t *testing.T) {
	err := Cd(context.Background(), []string{"cd"})
	assert.ErrorIs(t, err, ErrCdMissingTarget)
}

func TestCdBadPathLeavesDirectoryUnchanged(t *testing.T) {
	base := chdirTemp(t)

	err := Cd(context.Background(), []string{"cd", filepath.Join(base, "does-not-exist")})
	require.ErrorIs(t, err, ErrChdirFailed)

	wd, err := os.Getwd()
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, base, resolved)
}

func TestHandleExit(t *testing.T) {
	action, err := Handle(context.Background(), []string{"exit"})
	require.NoError(t, err)
	assert.Equal(t, ActionExit, action)
}

func TestHandleCd(t *testing.T) {
	base := chdirTemp(t)

	sub := filepath.Join(base, "next")
	require.NoError(t, os.Mkdir(sub, 0o755))

	action, err := Handle(context.Background(), []string{"cd", sub})
	require.NoError(t, err)
	assert.Equal(t, ActionContinue, action)
}

func TestHandleCdFailureStillContinues(t *testing.T) {
	action, err := Handle(context.Background(), []string{"cd"})
	assert.Equal(t, ActionContinue, action)
	assert.ErrorIs(t, err, ErrCdMissingTarget)
}

func TestHandleNonBuiltin(t *testing.T) {
	action, err := Handle(context.Background(), []string{"ls", "-la"})
	require.NoError(t, err)
	assert.Equal(t, ActionNone, action)
}

func TestHandleEmptyTokens(t *testing.T) {
	action, err := Handle(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, ActionNone, action)
}

func TestIsExit(t *testing.T) {
	assert.True(t, IsExit([]string{"exit"}))
	assert.True(t, IsExit([]string{"exit", "&&", "ls"}))
	assert.False(t, IsExit([]string{"exits"}))
	assert.False(t, IsExit(nil))
}

func TestIsCd(t *testing.T) {
	assert.True(t, IsCd([]string{"cd", "/tmp"}))
	assert.False(t, IsCd([]string{"cdx"}))
	assert.False(t, IsCd(nil))
}
