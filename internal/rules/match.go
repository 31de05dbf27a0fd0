// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"github.com/The-Compiler/journalwatch/internal/journal"
)

// Suppressed reports whether the entry is classified as routine noise by the
// table. It is a pure function of (table, entry): evaluation never mutates
// the table, so one table may serve any number of concurrent calls.
//
// An entry without a MESSAGE field is never suppressed; unclassifiable
// records are surfaced, not hidden. A block whose field the entry lacks is
// inapplicable, neither a match nor a mismatch.
func (t *Table) Suppressed(e journal.Entry) bool {
	msg, ok := e.Message()
	if !ok {
		return false
	}

	for _, b := range t.blocks {
		v, ok := e[b.Key.Field]
		if !ok {
			continue
		}
		if !b.Key.Matcher.Matches(v.String()) {
			continue
		}
		for _, p := range b.Patterns {
			if p.MatchString(msg) {
				return true
			}
		}
	}
	return false
}
