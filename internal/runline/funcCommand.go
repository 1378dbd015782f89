// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runline

import (
	"context"

	"github.com/mshell-dev/msh/internal/ctxlog"
)

var _ Runnable = (*FuncCommand)(nil)

// FuncCommand runs a function in the session process itself. It exists
// for the builtins that cannot be delegated to a child, such as changing
// the working directory in the middle of a sequential chain.
type FuncCommand struct {
	Label string
	Fn    func(context.Context) error
}

// GetLabel returns the label of the command.
func (c *FuncCommand) GetLabel() string {
	return c.Label
}

// Run implements the Runnable interface for FuncCommand.
func (c *FuncCommand) Run(ctx context.Context) Results {
	if c.Fn == nil {
		return Results{&Result{Label: c.Label}}
	}

	if err := c.Fn(ctx); err != nil {
		ctxlog.Debug(ctx, "builtin failed", "label", c.Label, "error", err)

		return Results{&Result{Label: c.Label, ExitCode: -1, Error: err}}
	}

	return Results{&Result{Label: c.Label}}
}
