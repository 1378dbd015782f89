// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"

	"github.com/mshell-dev/msh/internal/builtin"
	"github.com/mshell-dev/msh/internal/parse"
	"github.com/mshell-dev/msh/internal/runline"
)

// Build turns a parsed line into the runnable that executes it. A nil
// runnable with a nil error means the line amounts to nothing (blank, or
// only empty clauses) and is a no-op.
func Build(line string, limits parse.Limits) (runline.Runnable, error) {
	parsed, err := parse.Parse(line, limits)
	if err != nil {
		return nil, err
	}

	switch parsed.Kind {
	case parse.KindParallel:
		return buildParallel(parsed, limits)
	case parse.KindSequential:
		return buildSequential(parsed, limits)
	case parse.KindRedirect:
		return buildRedirect(parsed, limits)
	default:
		return buildSingle(parsed, limits)
	}
}

func buildParallel(parsed *parse.Line, limits parse.Limits) (runline.Runnable, error) {
	cmds := make([]runline.Launcher, 0, len(parsed.Clauses))

	for _, clause := range parsed.Clauses {
		tokens, err := parse.Tokenize(clause, limits.MaxArgs)
		if err != nil {
			return nil, err
		}

		if len(tokens) == 0 {
			continue
		}

		cmds = append(cmds, &runline.ExecCommand{Label: clause, Argv: tokens})
	}

	if len(cmds) == 0 {
		return nil, nil
	}

	return &runline.ParallelGroup{Commands: cmds}, nil
}

func buildSequential(parsed *parse.Line, limits parse.Limits) (runline.Runnable, error) {
	cmds := make([]runline.Runnable, 0, len(parsed.Clauses))

	for _, clause := range parsed.Clauses {
		tokens, err := parse.Tokenize(clause, limits.MaxArgs)
		if err != nil {
			return nil, err
		}

		if len(tokens) == 0 {
			continue
		}

		// cd must run in the session itself; a child could not change
		// the parent's working directory.
		if builtin.IsCd(tokens) {
			cmds = append(cmds, &runline.FuncCommand{
				Label: clause,
				Fn: func(ctx context.Context) error {
					return builtin.Cd(ctx, tokens)
				},
			})

			continue
		}

		cmds = append(cmds, &runline.ExecCommand{Label: clause, Argv: tokens})
	}

	if len(cmds) == 0 {
		return nil, nil
	}

	return &runline.SerialGroup{Commands: cmds}, nil
}

func buildRedirect(parsed *parse.Line, limits parse.Limits) (runline.Runnable, error) {
	tokens, err := parse.Tokenize(parsed.Clauses[0], limits.MaxArgs)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, nil
	}

	return &runline.RedirectCommand{
		ExecCommand: runline.ExecCommand{Label: parsed.Clauses[0], Argv: tokens},
		Target:      parsed.Target,
	}, nil
}

func buildSingle(parsed *parse.Line, limits parse.Limits) (runline.Runnable, error) {
	if len(parsed.Clauses) == 0 {
		return nil, nil
	}

	tokens, err := parse.Tokenize(parsed.Clauses[0], limits.MaxArgs)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, nil
	}

	return &runline.ExecCommand{Argv: tokens}, nil
}
