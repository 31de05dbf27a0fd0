// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package rules compiles the pattern file into a rule table and evaluates
// journal entries against it.
//
// The pattern file is a sequence of blocks separated by blank lines. Each
// block opens with a header line
//
//	FIELD = value
//
// where value is either a literal string or a /regex/ matched against the
// entry's field value. The remaining lines of the block are regular
// expressions matched against the entry's message content. Lines starting
// with # are comments. A block needs at least one pattern line to be kept.
//
// All regexes, field and message alike, are anchored at the start of their
// subject: "ssh" matches "sshd exited" but not "stopped sshd".
//
// An entry is suppressed when any block's header condition holds for the
// entry and any of that block's patterns matches the entry's message.
// Entries without a MESSAGE field are never suppressed.
package rules
