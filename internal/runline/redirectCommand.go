// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runline

import (
	"context"
	"errors"
	"os"

	"github.com/mshell-dev/msh/internal/ctxlog"
)

var _ Launcher = (*RedirectCommand)(nil)

// ErrRedirectTarget is returned when the redirection target file cannot
// be opened for writing.
var ErrRedirectTarget = errors.New("could not open redirection target")

// redirectFileMode is the permission mode for created target files.
const redirectFileMode = 0o644

// RedirectCommand runs one external command with its stdout bound to a
// file. The target is opened write-only before the child is created,
// creating it if absent and truncating it if present; the session's own
// stdout is never touched. Only the child holds the descriptor once the
// process has started.
type RedirectCommand struct {
	ExecCommand

	Target string // redirection target filename
}

// Start opens the target and creates the child process with its stdout
// bound to it. The parent's copy of the descriptor is closed before
// returning; a failed open spawns nothing.
func (c *RedirectCommand) Start(ctx context.Context) (*Handle, error) {
	if len(c.Argv) == 0 {
		return nil, nil
	}

	f, err := os.OpenFile(c.Target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, redirectFileMode)
	if err != nil {
		return nil, errors.Join(ErrRedirectTarget, err)
	}
	// The child duplicates the descriptor at creation; the parent's copy
	// is closed regardless of whether the start succeeded.
	defer f.Close() //nolint:errcheck

	ctxlog.Debug(ctx, "stdout redirected", "label", c.GetLabel(), "target", c.Target)

	c.stdout = f

	return c.ExecCommand.Start(ctx)
}

// Run implements the Runnable interface: start the redirected child and
// block until it terminates.
func (c *RedirectCommand) Run(ctx context.Context) Results {
	h, err := c.Start(ctx)
	if err != nil {
		return Results{&Result{Label: c.GetLabel(), ExitCode: -1, Error: err}}
	}

	if h == nil {
		return Results{&Result{Label: c.GetLabel()}}
	}

	return Results{h.Wait(ctx)}
}
