// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runline

import (
	"context"
)

// Runnable is anything that can be run as part of a line: a command, a
// builtin wrapper or a nested group.
type Runnable interface {
	// Run executes the command or group to completion and returns the
	// results. It must never panic on a bad command; failures are
	// reported through the Result error.
	Run(context.Context) Results
	// GetLabel returns the label of the command or group, used in
	// results and debug logs.
	GetLabel() string
}

// Launcher is a Runnable whose process creation can be separated from the
// wait, so that a parallel group can fire off every child before blocking
// on any of them.
type Launcher interface {
	Runnable
	// Start creates the child process without waiting for it. It
	// returns a nil Handle when there is nothing to run.
	Start(context.Context) (*Handle, error)
}
