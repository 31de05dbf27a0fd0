// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package journal models systemd journal records and acquires them from the
// local journal.
//
// A record is an Entry, a mapping from journal field names (MESSAGE,
// PRIORITY, _SYSTEMD_UNIT, ...) to tagged Values. Values carry their own
// string coercion: integers render in decimal, timestamps as microseconds
// since the epoch, and opaque binary payloads as a descriptive placeholder so
// that text rules never run against raw bytes.
//
// Entries are read from journalctl's JSON output one line at a time. The
// Reader is a lazy, forward-only iterator over the stream; it is consumed
// exactly once, front to back.
//
// Format renders an entry to the single-line report form:
//
//	U Thu Jan  1 00:00:00 1970 6 foo.service sshd[1234]: message text
package journal
