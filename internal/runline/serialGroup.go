// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runline

import (
	"context"
)

var _ Runnable = (*SerialGroup)(nil)

// SerialGroup runs its commands strictly one after another: each command
// is started and waited for before the next one begins. A failing command
// is reported but does not abort the remaining commands.
type SerialGroup struct {
	Label    string
	Commands []Runnable
}

// GetLabel returns the label of the group.
func (g *SerialGroup) GetLabel() string {
	if g.Label == "" {
		return "serial"
	}

	return g.Label
}

// Run implements the Runnable interface for SerialGroup.
func (g *SerialGroup) Run(ctx context.Context) Results {
	children := make(Results, 0, len(g.Commands))

	for _, cmd := range g.Commands {
		select {
		case <-ctx.Done():
			return g.finish(children)
		default:
		}

		children = append(children, cmd.Run(ctx)...)
	}

	return g.finish(children)
}

func (g *SerialGroup) finish(children Results) Results {
	res := &Result{Label: g.GetLabel(), Children: children}
	// A child exiting non-zero is normal shell business; only commands
	// that could not run at all make the group itself fail.
	if children.Err() != nil {
		res.ExitCode = -1
		res.Error = ErrGroupHasFailures
	}

	return Results{res}
}
