// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the msh command-line shell.
package main

import (
	"context"
	"os"

	"github.com/mshell-dev/msh/cmd"
	"github.com/mshell-dev/msh/internal/ctxlog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	if err := cmd.RootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Logger(ctx).Error("session failed", "error", err)
		os.Exit(1)
	}

	// The session always terminates successfully; individual command
	// failures are reported at the prompt and never escalate here.
	os.Exit(0)
}
