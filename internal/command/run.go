// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/The-Compiler/journalwatch/internal/config"
	"github.com/The-Compiler/journalwatch/internal/journal"
	"github.com/The-Compiler/journalwatch/internal/log"
	"github.com/The-Compiler/journalwatch/internal/meta"
	"github.com/The-Compiler/journalwatch/internal/output"
	"github.com/The-Compiler/journalwatch/internal/rules"
	"github.com/The-Compiler/journalwatch/internal/state"
)

// deliver hands the finished report to a sink.
type deliver func(lines []string, w output.Window) error

// entrySource is the forward-only stream of journal entries the pipeline
// consumes, satisfied by *journal.Reader.
type entrySource interface {
	Next() (journal.Entry, error)
}

// printCommandAction is the action handler for the "print" subcommand.
func printCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	color := cmd.Bool("color") && output.ColorsUsable(os.Stdout)
	return run(ctx, cmd, func(lines []string, _ output.Window) error {
		return output.Print(os.Stdout, lines, color)
	})
}

// mailCommandAction is the action handler for the "mail" subcommand.
func mailCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	cfg := output.MailConfig{
		From:    cmd.String("mail-from"),
		To:      cmd.String("mail-to"),
		Subject: cmd.String("mail-subject"),
		Command: cmd.String("mail-command"),
	}
	return run(ctx, cmd, func(lines []string, w output.Window) error {
		return output.Mail(cfg, lines, w)
	})
}

// run is the shared pipeline behind both actions: compile the pattern file,
// resolve the window, stream the journal through the rule table, deliver the
// kept lines, and on success persist the run time for the next "new" window.
func run(ctx context.Context, cmd *cli.Command, sink deliver) error {
	table, err := compilePatterns(cmd.String("pattern-file"))
	if err != nil {
		return err
	}

	st := state.NewStore(config.DataDir())
	now := time.Now()
	since, err := resolveSince(cmd.String("since"), st, now)
	if err != nil {
		return err
	}
	if since.IsZero() {
		log.Debug("reading the whole journal")
	} else {
		log.Debugf("reading journal since %s (%s)", since.Format(time.ANSIC), humanize.Time(since))
	}

	rd, err := journal.Open(ctx, journal.Options{
		Since:    since,
		Priority: cmd.String("priority"),
	})
	if err != nil {
		return err
	}
	defer rd.Close()

	lines, err := collect(table, rd)
	if err != nil {
		return err
	}
	log.Infof("kept %d entries", len(lines))

	if err := sink(lines, output.Window{Start: since, End: now}); err != nil {
		return err
	}

	return st.Save(now)
}

// compilePatterns loads and compiles the pattern file, failing on an empty
// table before any journal entry is read.
func compilePatterns(path string) (*rules.Table, error) {
	if path == "" {
		path = config.PatternFile()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern file: %w", err)
	}
	defer f.Close()

	table, err := rules.Compile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, rules.ErrEmptyRuleSet)
	}
	log.Debugf("compiled %d pattern blocks from %s", table.Len(), path)

	return table, nil
}

// collect drains the entry stream once, keeping the formatted line of every
// entry the table does not suppress.
func collect(table *rules.Table, src entrySource) ([]string, error) {
	var lines []string
	for {
		e, err := src.Next()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		if table.Suppressed(e) {
			continue
		}
		lines = append(lines, journal.Format(e))
	}
}

// printCommandBuilder constructs the cli.Command for "print".
func printCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "print",
		Usage:     "write the filtered journal to stdout",
		UsageText: "journalwatch print [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append(newCommonFlags(),
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "highlight configured patterns in the report",
				Value:   false,
			},
		),
		Action: printCommandAction,
	}
}

// mailCommandBuilder constructs the cli.Command for "mail".
func mailCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "mail",
		Usage:     "mail the filtered journal",
		UsageText: "journalwatch mail [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  append(newCommonFlags(), newMailFlags()...),
		Action: mailCommandAction,
	}
}
