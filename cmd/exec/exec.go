// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package exec implements the non-interactive entry point: run one input
// line exactly as the interactive session would, then return.
package exec

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/mshell-dev/msh/internal/config"
	"github.com/mshell-dev/msh/internal/shell"
)

const (
	lineArg    = "line"
	configFlag = "config"
)

// ExecCmd runs a single line through the shell's dispatcher. Like the
// interactive session, it always exits successfully; command failures are
// reported on stderr.
var ExecCmd = &cli.Command{
	Name:        "exec",
	Usage:       "msh exec 'sleep 1 && sleep 2'",
	Description: "Interpret and run one command line non-interactively.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      lineArg,
			UsageText: "LINE",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to the session configuration file",
			TakesFile: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	line := cmd.StringArg(lineArg)
	if line == "" {
		return cli.Exit("Please provide a command line to run", 1)
	}

	cfg, err := config.Load(afero.NewOsFs(), cmd.String(configFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	sess := shell.New(cfg, nil, os.Stdout, os.Stderr)
	_ = sess.RunLine(ctx, line)

	return nil
}
