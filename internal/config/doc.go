// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config resolves journalwatch's on-disk locations and loads its
// user configuration. Locations follow the XDG base directory conventions:
//
//   - pattern file:  $XDG_CONFIG_HOME/journalwatch/patterns
//   - config file:   $XDG_CONFIG_HOME/journalwatch/journalwatch.yaml
//   - run state dir: $XDG_DATA_HOME/journalwatch
//
// JOURNALWATCH_CONFIG_DIR and JOURNALWATCH_DATA_DIR override the directories
// wholesale, mainly for tests.
//
// On first run EnsureFiles writes a commented default config and a starter
// pattern file covering common noise (user sessions, cron, systemd unit
// lifecycle); existing files are never touched.
package config
