// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runline

import (
	"context"
	"errors"

	"github.com/mshell-dev/msh/internal/ctxlog"
)

var _ Runnable = (*ParallelGroup)(nil)

// ParallelGroup launches every command as a child process before waiting
// on any of them, so the clauses execute concurrently and the group takes
// roughly as long as its slowest member. The parent itself stays
// single-threaded: one launch burst, then one blocking wait per handle in
// dispatch order.
type ParallelGroup struct {
	Label    string
	Commands []Launcher
}

// GetLabel returns the label of the group.
func (g *ParallelGroup) GetLabel() string {
	if g.Label == "" {
		return "parallel"
	}

	return g.Label
}

// Run implements the Runnable interface for ParallelGroup. A missing
// executable fails only its own clause and the burst continues, like a
// child whose exec failed. Failure to create the process itself aborts
// the launch of the remaining commands; either way every child already
// in the pool is drained so no process is left behind.
func (g *ParallelGroup) Run(ctx context.Context) Results {
	pool := NewPool(len(g.Commands))

	var (
		aborted  *Result
		failures Results
	)

	for _, cmd := range g.Commands {
		h, err := cmd.Start(ctx)
		if err != nil {
			if errors.Is(err, ErrCommandNotFound) {
				failures = append(failures, &Result{Label: cmd.GetLabel(), ExitCode: -1, Error: err})

				ctxlog.Debug(ctx, "parallel clause failed", "label", cmd.GetLabel(), "error", err)

				continue
			}

			aborted = &Result{Label: cmd.GetLabel(), ExitCode: -1, Error: err}

			ctxlog.Debug(ctx, "parallel launch aborted", "label", cmd.GetLabel(), "error", err)

			break
		}

		pool.Add(h)
	}

	ctxlog.Debug(ctx, "parallel launch burst complete", "launched", pool.Len())

	children := pool.Drain(ctx)
	children = append(children, failures...)

	if aborted != nil {
		children = append(children, aborted)
	}

	res := &Result{Label: g.GetLabel(), Children: children}
	// Only commands that could not run make the group fail; non-zero
	// child exits are reported through the child results alone.
	if children.Err() != nil {
		res.ExitCode = -1
		res.Error = ErrGroupHasFailures
	}

	return Results{res}
}
