// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package journal

// Journal field names used by the formatter and the default rules.
const (
	FieldMessage   = "MESSAGE"
	FieldPriority  = "PRIORITY"
	FieldUnit      = "_SYSTEMD_UNIT"
	FieldSyslogID  = "SYSLOG_IDENTIFIER"
	FieldPID       = "_PID"
	FieldTimestamp = "__REALTIME_TIMESTAMP"
)

// Entry is a single journal record: an unordered mapping from field name to
// value. Entries are transient; they are evaluated against the rule table and
// either rendered or dropped, never mutated.
type Entry map[string]Value

// Has reports whether the entry carries the given field.
func (e Entry) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Message returns the entry's message content in canonical string form, with
// binary payloads already replaced by their placeholder. ok is false when the
// entry has no MESSAGE field at all.
func (e Entry) Message() (msg string, ok bool) {
	v, ok := e[FieldMessage]
	if !ok {
		return "", false
	}
	return v.String(), true
}
