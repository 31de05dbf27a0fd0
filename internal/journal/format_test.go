// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "unit only",
			entry: Entry{FieldUnit: StringValue("foo")},
			want:  "U foo : EMPTY!",
		},
		{
			name: "all fields",
			entry: Entry{
				FieldUnit:      StringValue("foo"),
				FieldPriority:  StringValue("prio"),
				FieldTimestamp: TimeValue(epoch),
				FieldPID:       IntValue(1337),
				FieldMessage:   StringValue("Hello World"),
			},
			want: "U Thu Jan  1 00:00:00 1970 prio foo [1337]: Hello World",
		},
		{
			name: "syslog identifier without unit",
			entry: Entry{
				FieldSyslogID: StringValue("sys"),
				FieldMessage:  StringValue("Hello World"),
			},
			want: "S sys: Hello World",
		},
		{
			name: "identifier and pid",
			entry: Entry{
				FieldSyslogID: StringValue("sshd"),
				FieldPID:      IntValue(1234),
				FieldMessage:  StringValue("Accepted publickey"),
			},
			want: "S sshd[1234]: Accepted publickey",
		},
		{
			name: "binary message shows placeholder",
			entry: Entry{
				FieldUnit:    StringValue("foo"),
				FieldMessage: BytesValue{0xde, 0xad, 0xbe, 0xef},
			},
			want: "U foo : [binary data (4 bytes)]",
		},
		{
			name:  "empty entry",
			entry: Entry{},
			want:  "S : EMPTY!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.entry))
		})
	}
}
