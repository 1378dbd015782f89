// Copyright (c) mshell-dev 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config implements the configuration inspection commands.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/mshell-dev/msh/internal/config"
)

const configFlag = "config"

// ErrRenderConfig is returned when the effective configuration cannot be
// rendered.
var ErrRenderConfig = errors.New("failed to render configuration")

// ConfigCmd groups the configuration inspection commands.
var ConfigCmd = &cli.Command{
	Name:  "config",
	Usage: "Inspect the session configuration",
	Commands: []*cli.Command{
		showCmd,
	},
}

var showCmd = &cli.Command{
	Name:        "show",
	Usage:       "msh config show [--config FILE]",
	Description: "Print the effective configuration (defaults plus file) as JSON.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "Path to the session configuration file",
			TakesFile: true,
		},
	},
	Action: showAction,
}

func showAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(afero.NewOsFs(), cmd.String(configFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return errors.Join(ErrRenderConfig, err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Join(ErrRenderConfig, err)
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = 2

	rendered, err := formatter.Marshal(obj)
	if err != nil {
		return errors.Join(ErrRenderConfig, err)
	}

	fmt.Println(string(rendered))

	return nil
}
