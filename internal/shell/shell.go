// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell owns the read-eval loop: display the working directory
// prompt, read one line, short-circuit the builtins and hand everything
// else to the dispatcher. Every failure a line can produce surfaces as the
// same generic message; the session only ends on "exit" or end of input.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/mshell-dev/msh/internal/builtin"
	"github.com/mshell-dev/msh/internal/config"
	"github.com/mshell-dev/msh/internal/ctxlog"
	"github.com/mshell-dev/msh/internal/parse"
	"github.com/mshell-dev/msh/internal/sigpolicy"
)

const (
	genericErrorMessage = "msh: incorrect command"
	farewellMessage     = "Exiting shell..."
)

var errColor = color.New(color.FgRed)

// getwd is a seam for tests; the prompt reflects the process working
// directory.
var getwd = os.Getwd

// Session is one interactive shell session.
type Session struct {
	cfg    *config.Config
	reader LineReader
	out    io.Writer
	errOut io.Writer
}

// New creates a session. reader may be nil when only RunLine is used.
func New(cfg *config.Config, reader LineReader, out, errOut io.Writer) *Session {
	return &Session{
		cfg:    cfg,
		reader: reader,
		out:    out,
		errOut: errOut,
	}
}

// Run drives the prompt/read cycle until "exit" or end of input. The
// session's signal policy is installed for the duration of the loop, so
// Ctrl-C and Ctrl-Z reach foreground children but never kill the shell.
func (s *Session) Run(ctx context.Context) error {
	policy := sigpolicy.Install(ctx)
	defer policy.Close()

	for {
		line, err := s.reader.ReadLine(s.prompt())

		switch {
		case errors.Is(err, io.EOF):
			// Ctrl-D and exhausted input behave exactly like exit.
			s.farewell()
			return nil

		case errors.Is(err, ErrInterrupted):
			continue

		case err != nil:
			ctxlog.Debug(ctx, "line read failed", "error", err)
			s.farewell()

			return nil
		}

		if parse.Trim(line) == "" {
			continue
		}

		s.reader.AppendHistory(line)

		if exit := s.RunLine(ctx, line); exit {
			s.farewell()
			return nil
		}
	}
}

// RunLine interprets and executes one input line. It reports whether the
// session should terminate.
func (s *Session) RunLine(ctx context.Context, raw string) bool {
	line := parse.Trim(raw)
	if line == "" {
		return false
	}

	tokens, err := parse.Tokenize(line, 0)
	if err != nil {
		s.reportError(ctx, err)
		return false
	}

	kind := parse.Detect(line)

	// A bare builtin line never reaches the dispatcher; compound lines
	// handle cd clause by clause, but exit still wins over everything,
	// operators included.
	if kind == parse.KindSingle {
		action, berr := builtin.Handle(ctx, tokens)
		switch action {
		case builtin.ActionExit:
			return true
		case builtin.ActionContinue:
			if berr != nil {
				s.reportError(ctx, berr)
			}

			return false
		}
	} else if builtin.IsExit(tokens) {
		return true
	}

	runnable, err := Build(line, s.cfg.Limits())
	if err != nil {
		s.reportError(ctx, err)
		return false
	}

	if runnable == nil {
		return false
	}

	ctxlog.Debug(ctx, "dispatching line", "kind", kind.String(), "line", line)

	if err := runnable.Run(ctx).Err(); err != nil {
		s.reportError(ctx, err)
	}

	return false
}

func (s *Session) prompt() string {
	wd, err := getwd()
	if err != nil {
		wd = "?"
	}

	return wd + s.cfg.PromptSuffix
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out, farewellMessage)
}

// reportError surfaces the one generic message to the user; the actual
// cause goes to the debug log only.
func (s *Session) reportError(ctx context.Context, err error) {
	ctxlog.Debug(ctx, "command failed", "error", err)
	errColor.Fprintln(s.errOut, genericErrorMessage) //nolint:errcheck
}
