// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runline

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/mshell-dev/msh/internal/ctxlog"
)

var _ Launcher = (*ExecCommand)(nil)

var (
	// ErrCommandNotFound is returned when the executable cannot be
	// resolved on PATH or is not runnable.
	ErrCommandNotFound = errors.New("executable not found or not runnable")
	// ErrCouldNotStartProcess is returned when the OS refuses to create
	// the child process.
	ErrCouldNotStartProcess = errors.New("could not start process")
)

// ExecCommand runs one external command as a child process. The child
// inherits the session's stdin, stdout and stderr and, having been
// exec'd, starts with default signal dispositions regardless of the
// session's own signal policy.
type ExecCommand struct {
	Label string   // Label for results and logs, usually the executable name
	Argv  []string // Full argument vector; Argv[0] names the executable

	stdout *os.File // optional stdout override, set by RedirectCommand
}

// GetLabel returns the label of the command.
func (c *ExecCommand) GetLabel() string {
	if c.Label == "" && len(c.Argv) > 0 {
		return c.Argv[0]
	}

	return c.Label
}

// Start creates the child process without waiting for it. An empty
// argument vector is a no-op and returns a nil handle.
func (c *ExecCommand) Start(ctx context.Context) (*Handle, error) {
	if len(c.Argv) == 0 {
		return nil, nil
	}

	path, err := exec.LookPath(c.Argv[0])
	if err != nil {
		return nil, errors.Join(ErrCommandNotFound, err)
	}

	stdout := os.Stdout
	if c.stdout != nil {
		stdout = c.stdout
	}

	ps, err := os.StartProcess(path, c.Argv, &os.ProcAttr{
		Files: []*os.File{os.Stdin, stdout, os.Stderr},
	})
	if err != nil {
		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	ctxlog.Debug(ctx, "process started", "label", c.GetLabel(), "path", path, "pid", ps.Pid)

	return &Handle{label: c.GetLabel(), proc: ps}, nil
}

// Run implements the Runnable interface: start the child and block until
// it terminates. The exit status is recorded but not acted upon.
func (c *ExecCommand) Run(ctx context.Context) Results {
	h, err := c.Start(ctx)
	if err != nil {
		return Results{&Result{Label: c.GetLabel(), ExitCode: -1, Error: err}}
	}

	if h == nil {
		return Results{&Result{Label: c.GetLabel()}}
	}

	return Results{h.Wait(ctx)}
}
