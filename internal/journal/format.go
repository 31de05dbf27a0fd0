// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package journal

import "strings"

// EmptyMessage is the sentinel shown for an entry without message content.
const EmptyMessage = "EMPTY!"

// Format renders an entry to a single report line. It is total: missing
// fields are skipped, not left as empty placeholders. Token order is fixed:
// scope marker, timestamp, priority, unit, identity, message.
func Format(e Entry) string {
	var words []string

	// U for unit-scoped entries, S for plain syslog ones.
	if e.Has(FieldUnit) {
		words = append(words, "U")
	} else {
		words = append(words, "S")
	}

	if v, ok := e[FieldTimestamp]; ok {
		words = append(words, v.Display())
	}
	if v, ok := e[FieldPriority]; ok {
		words = append(words, v.Display())
	}
	if v, ok := e[FieldUnit]; ok {
		words = append(words, v.Display())
	}

	// Identity token: ident[pid]:, degrading to ident:, [pid]: or a bare
	// colon when neither part is present.
	var name strings.Builder
	if v, ok := e[FieldSyslogID]; ok {
		name.WriteString(v.Display())
	}
	if v, ok := e[FieldPID]; ok {
		name.WriteString("[" + v.Display() + "]")
	}
	name.WriteString(":")
	words = append(words, name.String())

	if v, ok := e[FieldMessage]; ok {
		words = append(words, v.Display())
	} else {
		words = append(words, EmptyMessage)
	}

	return strings.Join(words, " ")
}
