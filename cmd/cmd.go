// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface for the shell.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	configcmd "github.com/mshell-dev/msh/cmd/config"
	execcmd "github.com/mshell-dev/msh/cmd/exec"
	"github.com/mshell-dev/msh/internal/config"
	"github.com/mshell-dev/msh/internal/shell"
)

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

// ConfigFlag names the configuration file flag shared by the commands.
const ConfigFlag = "config"

// RootCmd is the root command for the CLI. Running it with no subcommand
// starts an interactive session.
var RootCmd = &cli.Command{
	Name: "msh",
	Description: `msh is a small interactive shell. It runs single commands, parallel
groups joined with "&&", sequential chains joined with "##" and single-target
stdout redirection with ">". cd and exit are handled by the shell itself.`,
	Usage:     "msh [--config FILE]",
	Version:   Version,
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      ConfigFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to the session configuration file",
			TakesFile: true,
		},
	},
	Commands: []*cli.Command{
		execcmd.ExecCmd,
		configcmd.ConfigCmd,
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	fsys := afero.NewOsFs()

	cfg, err := config.Load(fsys, cmd.String(ConfigFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	reader := shell.NewReader(fsys, cfg.HistoryFile)
	defer reader.Close() //nolint:errcheck

	sess := shell.New(cfg, reader, os.Stdout, os.Stderr)

	return sess.Run(ctx)
}
