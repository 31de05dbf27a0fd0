// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-Compiler/journalwatch/internal/journal"
)

// mustCompile builds a table from rule text for evaluator tests.
func mustCompile(t *testing.T, ruleText string) *Table {
	t.Helper()
	table, err := Compile(strings.NewReader(ruleText))
	require.NoError(t, err)
	return table
}

func TestSuppressed(t *testing.T) {
	tests := []struct {
		name  string
		rules string
		entry journal.Entry
		want  bool
	}{
		{
			name:  "empty table suppresses nothing",
			rules: "",
			entry: journal.Entry{"MESSAGE": journal.StringValue("foo")},
			want:  false,
		},
		{
			name:  "no message is never suppressed",
			rules: "SYSLOG_IDENTIFIER = foo\nbar\n",
			entry: journal.Entry{"SYSLOG_IDENTIFIER": journal.StringValue("foo")},
			want:  false,
		},
		{
			name:  "missing field is inapplicable",
			rules: "SYSLOG_IDENTIFIER = foo\n.*\n",
			entry: journal.Entry{"MESSAGE": journal.StringValue("anything at all")},
			want:  false,
		},
		{
			name:  "field mismatch",
			rules: "SYSLOG_IDENTIFIER = bar\nbar\n",
			entry: journal.Entry{
				"SYSLOG_IDENTIFIER": journal.StringValue("foo"),
				"MESSAGE":           journal.StringValue("unmatched"),
			},
			want: false,
		},
		{
			name:  "no matching pattern",
			rules: "SYSLOG_IDENTIFIER = bar\nbar\n",
			entry: journal.Entry{
				"SYSLOG_IDENTIFIER": journal.StringValue("bar"),
				"MESSAGE":           journal.StringValue("unmatched"),
			},
			want: false,
		},
		{
			name:  "matching literal and pattern",
			rules: "SYSLOG_IDENTIFIER = bar\nmsg\n",
			entry: journal.Entry{
				"SYSLOG_IDENTIFIER": journal.StringValue("bar"),
				"MESSAGE":           journal.StringValue("msg"),
			},
			want: true,
		},
		{
			name:  "regex field matcher",
			rules: "SYSLOG_IDENTIFIER = /ba./\nmsg\n",
			entry: journal.Entry{
				"SYSLOG_IDENTIFIER": journal.StringValue("bar"),
				"MESSAGE":           journal.StringValue("msg"),
			},
			want: true,
		},
		{
			name:  "integer priority matches literal rule",
			rules: "PRIORITY = 1\nmsg\n",
			entry: journal.Entry{
				"PRIORITY": journal.IntValue(1),
				"MESSAGE":  journal.StringValue("msg"),
			},
			want: true,
		},
		{
			name:  "integer priority matches regex rule",
			rules: "PRIORITY = /1/\nmsg\n",
			entry: journal.Entry{
				"PRIORITY": journal.IntValue(1),
				"MESSAGE":  journal.StringValue("msg"),
			},
			want: true,
		},
		{
			name:  "binary message never matches text patterns",
			rules: "SYSLOG_IDENTIFIER = bar\nmsg\n",
			entry: journal.Entry{
				"SYSLOG_IDENTIFIER": journal.StringValue("bar"),
				"MESSAGE":           journal.BytesValue{0xde, 0xad, 0xbe, 0xef},
			},
			want: false,
		},
		{
			name:  "patterns are anchored at the start",
			rules: "SYSLOG_IDENTIFIER = bar\nmsg\n",
			entry: journal.Entry{
				"SYSLOG_IDENTIFIER": journal.StringValue("bar"),
				"MESSAGE":           journal.StringValue("some msg"),
			},
			want: false,
		},
		{
			name:  "anchored match still allows trailing text",
			rules: "SYSLOG_IDENTIFIER = bar\nmsg\n",
			entry: journal.Entry{
				"SYSLOG_IDENTIFIER": journal.StringValue("bar"),
				"MESSAGE":           journal.StringValue("msg and more"),
			},
			want: true,
		},
		{
			name:  "field matcher is anchored too",
			rules: "SYSLOG_IDENTIFIER = /bar/\nmsg\n",
			entry: journal.Entry{
				"SYSLOG_IDENTIFIER": journal.StringValue("foobar"),
				"MESSAGE":           journal.StringValue("msg"),
			},
			want: false,
		},
		{
			name:  "second block can suppress",
			rules: "UNIT = a\nnope\n\nSYSLOG_IDENTIFIER = bar\nmsg\n",
			entry: journal.Entry{
				"SYSLOG_IDENTIFIER": journal.StringValue("bar"),
				"MESSAGE":           journal.StringValue("msg"),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := mustCompile(t, tt.rules)
			assert.Equal(t, tt.want, table.Suppressed(tt.entry))
		})
	}
}

func TestSuppressedIsIdempotent(t *testing.T) {
	table := mustCompile(t, "SYSLOG_IDENTIFIER = bar\nmsg\n")
	entry := journal.Entry{
		"SYSLOG_IDENTIFIER": journal.StringValue("bar"),
		"MESSAGE":           journal.StringValue("msg"),
	}

	first := table.Suppressed(entry)
	second := table.Suppressed(entry)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestMatcherDispatch(t *testing.T) {
	literal := Matcher{Kind: MatchLiteral, Literal: "1"}
	assert.True(t, literal.Matches("1"))
	assert.False(t, literal.Matches("10"))

	re, err := CompileRegex("1")
	require.NoError(t, err)
	pattern := Matcher{Kind: MatchPattern, Pattern: re}
	assert.True(t, pattern.Matches("1"))
	assert.True(t, pattern.Matches("10"))
	assert.False(t, pattern.Matches("01"))
}
