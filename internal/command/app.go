// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/The-Compiler/journalwatch/internal/config"
	"github.com/The-Compiler/journalwatch/internal/meta"
)

// InitApp builds the journalwatch CLI: a root command with one subcommand
// per delivery action. The default config and pattern files are written here
// when missing, before the flag sources read them.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	if err := config.EnsureFiles(); err != nil {
		return nil, err
	}

	m := meta.Meta{
		Args:      args,
		Context:   ctx,
		ConfigDir: config.ConfigDir(),
		DataDir:   config.DataDir(),
	}

	app := &cli.Command{
		Name:  "journalwatch",
		Usage: "filter noise out of the systemd journal",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "journalwatch version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		printCommandBuilder(m),
		mailCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
