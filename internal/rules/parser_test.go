// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	input := strings.Join([]string{
		"# This is a comment",
		"_SYSTEMD_UNIT = foo",
		"bar",
		"",
		"_SYSTEMD_UNIT = /baz/",
		"fish",
	}, "\n")

	table, err := Compile(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	blocks := table.Blocks()

	assert.Equal(t, "_SYSTEMD_UNIT", blocks[0].Key.Field)
	assert.Equal(t, MatchLiteral, blocks[0].Key.Matcher.Kind)
	assert.Equal(t, "foo", blocks[0].Key.Matcher.Literal)
	require.Len(t, blocks[0].Patterns, 1)
	assert.Equal(t, "bar", blocks[0].Patterns[0].String())

	assert.Equal(t, "_SYSTEMD_UNIT", blocks[1].Key.Field)
	assert.Equal(t, MatchPattern, blocks[1].Key.Matcher.Kind)
	assert.Equal(t, "baz", blocks[1].Key.Matcher.Pattern.String())
	require.Len(t, blocks[1].Patterns, 1)
	assert.Equal(t, "fish", blocks[1].Patterns[0].String())
}

func TestCompileEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLen   int
		wantFirst string
	}{
		{
			name:    "empty input",
			input:   "",
			wantLen: 0,
		},
		{
			name:    "only comments and blanks",
			input:   "# nothing here\n\n# still nothing\n",
			wantLen: 0,
		},
		{
			name:    "header without patterns is dropped",
			input:   "_SYSTEMD_UNIT = foo\n",
			wantLen: 0,
		},
		{
			name:      "no trailing blank line still commits",
			input:     "_SYSTEMD_UNIT = foo\nbar",
			wantLen:   1,
			wantFirst: "_SYSTEMD_UNIT = foo",
		},
		{
			name:      "comments inside a block are skipped",
			input:     "_SYSTEMD_UNIT = foo\n# comment\nbar\n",
			wantLen:   1,
			wantFirst: "_SYSTEMD_UNIT = foo",
		},
		{
			name:      "extra whitespace around header parts is trimmed",
			input:     "  PRIORITY  =  6  \nmsg\n",
			wantLen:   1,
			wantFirst: "PRIORITY = 6",
		},
		{
			name:      "same field different matchers stay distinct",
			input:     "UNIT = a\nx\n\nUNIT = b\ny\n",
			wantLen:   2,
			wantFirst: "UNIT = a",
		},
		{
			name:      "duplicate key keeps one entry",
			input:     "UNIT = a\nfirst\n\nUNIT = a\nsecond\n",
			wantLen:   1,
			wantFirst: "UNIT = a",
		},
		{
			name:      "multiple blank lines between blocks",
			input:     "UNIT = a\nx\n\n\n\nUNIT = b\ny\n",
			wantLen:   2,
			wantFirst: "UNIT = a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Compile(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, table.Len())
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, table.Blocks()[0].Key.String())
			}
		})
	}
}

func TestCompileDuplicateKeyLastWins(t *testing.T) {
	input := "UNIT = a\nfirst\n\nUNIT = a\nsecond\n"

	table, err := Compile(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	require.Len(t, table.Blocks()[0].Patterns, 1)
	assert.Equal(t, "second", table.Blocks()[0].Patterns[0].String())
}

func TestCompileSyntaxError(t *testing.T) {
	input := "_SYSTEMD_UNIT foo\nbar\n"

	table, err := Compile(strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, table)

	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, "_SYSTEMD_UNIT foo", syntaxErr.Line)
	assert.Contains(t, err.Error(), "_SYSTEMD_UNIT foo")
}

func TestCompileBadRegex(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "bad message pattern",
			input: "UNIT = a\n[invalid\n",
		},
		{
			name:  "bad field pattern",
			input: "UNIT = /[invalid/\nmsg\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestCompileRoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"_SYSTEMD_UNIT = /session-\\d+\\.scope/",
		"pam_unix\\(.*\\): session (opened|closed) for user \\w+",
		"New session c?\\d+ of user \\w+\\.",
		"",
		"SYSLOG_IDENTIFIER = CROND",
		"\\(\\w+\\) CMD .*",
		"",
	}, "\n")

	first, err := Compile(strings.NewReader(input))
	require.NoError(t, err)

	second, err := Compile(strings.NewReader(first.String()))
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	for i, b := range first.Blocks() {
		other := second.Blocks()[i]
		assert.Equal(t, b.Key.String(), other.Key.String())
		require.Len(t, other.Patterns, len(b.Patterns))
		for j, p := range b.Patterns {
			assert.Equal(t, p.String(), other.Patterns[j].String())
		}
	}
}
