// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package builtin intercepts the pseudo-commands the shell must execute
// itself: "cd" mutates the session's working directory and "exit" ends the
// session, neither of which can be delegated to a child process. Builtins
// are recognised on the tokenized line before any operator dispatch, so a
// bare "cd" never forks a child that could not affect the parent.
package builtin

import (
	"context"
	"errors"
	"os"

	"github.com/mshell-dev/msh/internal/ctxlog"
)

// Builtin command names, matched exactly against the first token.
const (
	NameCd   = "cd"
	NameExit = "exit"
)

var (
	// ErrCdMissingTarget is returned when cd is given no target
	// directory.
	ErrCdMissingTarget = errors.New("cd requires a target directory")
	// ErrChdirFailed is returned when the working directory could not
	// be changed.
	ErrChdirFailed = errors.New("could not change working directory")
)

// Action tells the read-eval loop what to do after builtin handling.
type Action int

const (
	// ActionNone means the line is not a builtin and dispatches
	// normally.
	ActionNone Action = iota
	// ActionContinue means a builtin ran (possibly failing) and the
	// loop proceeds to the next prompt.
	ActionContinue
	// ActionExit means the session should terminate.
	ActionExit
)

// Handle inspects an already-tokenized line and executes a builtin when
// the first token names one. The returned error is only meaningful with
// ActionContinue.
func Handle(ctx context.Context, tokens []string) (Action, error) {
	if len(tokens) == 0 {
		return ActionNone, nil
	}

	switch {
	case IsExit(tokens):
		return ActionExit, nil
	case IsCd(tokens):
		return ActionContinue, Cd(ctx, tokens)
	default:
		return ActionNone, nil
	}
}

// IsExit reports whether the tokenized line is an exit invocation. exit
// ends the session whatever follows it, so the loop checks this on
// compound lines too, before any operator dispatch.
func IsExit(tokens []string) bool {
	return len(tokens) > 0 && tokens[0] == NameExit
}

// IsCd reports whether the tokenized clause is a cd invocation. The
// sequential dispatcher uses this to run cd in the session instead of
// launching a child.
func IsCd(tokens []string) bool {
	return len(tokens) > 0 && tokens[0] == NameCd
}

// Cd changes the session's working directory to the second token.
// A missing target or a failing chdir is an error; the session state is
// untouched in either case. Extra tokens are ignored, as the original
// shells do.
func Cd(ctx context.Context, tokens []string) error {
	if len(tokens) < 2 {
		return ErrCdMissingTarget
	}

	if err := os.Chdir(tokens[1]); err != nil {
		return errors.Join(ErrChdirFailed, err)
	}

	wd, _ := os.Getwd()
	ctxlog.Debug(ctx, "working directory changed", "dir", wd)

	return nil
}
