// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/The-Compiler/journalwatch/internal/config"
)

// newCommonFlags builds the flags shared by the print and mail actions.
// String flag values fall back to the YAML config file, so the config file
// sets defaults and the command line overrides them.
func newCommonFlags() []cli.Flag {
	return []cli.Flag{
		sourced("since", &cli.StringFlag{
			Name:    "since",
			Aliases: []string{"s"},
			Usage:   "time window to report on: all, new, or a number of seconds",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("JOURNALWATCH_SINCE"),
			),
			Value: "new",
		}),
		sourced("priority", &cli.StringFlag{
			Name:    "priority",
			Aliases: []string{"p"},
			Usage:   "maximum syslog priority to read",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("JOURNALWATCH_PRIORITY"),
			),
			Value: "info",
		}),
		&cli.StringFlag{
			Name:  "pattern-file",
			Usage: "pattern file to use instead of the default location",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("JOURNALWATCH_PATTERN_FILE"),
			),
		},
	}
}

// newMailFlags builds the mail delivery flags, again defaulted from the
// config file's mail section.
func newMailFlags() []cli.Flag {
	return []cli.Flag{
		sourced("mail.from", &cli.StringFlag{
			Name:  "mail-from",
			Usage: "sender address",
		}),
		sourced("mail.to", &cli.StringFlag{
			Name:  "mail-to",
			Usage: "recipient address (required)",
		}),
		sourced("mail.subject", &cli.StringFlag{
			Name:  "mail-subject",
			Usage: "subject template; placeholders {hostname} {count} {start} {end}",
		}),
		sourced("mail.command", &cli.StringFlag{
			Name:  "mail-command",
			Usage: "transport command the message is piped to",
			Value: "sendmail -toi",
		}),
	}
}

// sourced appends the config file value at key to the flag's source chain.
func sourced(key string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(key, altsrc.StringSourcer(config.ConfigFile()))
	flag.Sources.Chain = append(flag.Sources.Chain, src)
	return flag
}
