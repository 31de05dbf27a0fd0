// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command builds the journalwatch CLI and owns the run pipeline
// shared by its actions.
//
// The two subcommands, print and mail, differ only in the delivery sink;
// both compile the pattern file, stream the selected journal window through
// the rule table, and report the entries that survive. Flag defaults come
// from the YAML config file, overridden by environment variables and the
// command line.
package command
