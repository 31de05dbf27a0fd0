// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SyntaxError reports a line that should have been a block header but has no
// '=' separator. Compilation stops at the first one; a rule file that cannot
// be read in full invalidates the whole run.
type SyntaxError struct {
	Line string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid rule header (no '='): %q", e.Line)
}

// ErrEmptyRuleSet flags a compiled table with zero blocks. An engine with no
// rules would pass every record through, so the misconfiguration is surfaced
// instead.
var ErrEmptyRuleSet = errors.New("rule file contains no pattern blocks")

// Compile parses pattern-file text into a Table.
//
// The parser is a two-state line machine: it either expects a header, or is
// inside a block collecting message patterns. A blank line commits the
// current block (if it has a header and at least one pattern) and returns to
// the header state; end of input acts like a trailing blank line.
func Compile(r io.Reader) (*Table, error) {
	var (
		table           Table
		expectingHeader = true
		header          *Key
		patterns        []Regex
	)

	commit := func() {
		if header != nil && len(patterns) > 0 {
			table.add(*header, patterns)
		}
		header = nil
		patterns = nil
		expectingHeader = true
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "#"):
			// Comments are ignored everywhere and do not change state.
		case strings.TrimSpace(line) == "":
			commit()
		case expectingHeader:
			field, value, ok := strings.Cut(line, "=")
			if !ok {
				return nil, &SyntaxError{Line: line}
			}
			value = strings.TrimSpace(value)

			var m Matcher
			if len(value) >= 2 && strings.HasPrefix(value, "/") && strings.HasSuffix(value, "/") {
				re, err := CompileRegex(value[1 : len(value)-1])
				if err != nil {
					return nil, fmt.Errorf("field pattern %s: %w", value, err)
				}
				m = Matcher{Kind: MatchPattern, Pattern: re}
			} else {
				m = Matcher{Kind: MatchLiteral, Literal: value}
			}

			header = &Key{Field: strings.TrimSpace(field), Matcher: m}
			expectingHeader = false
		default:
			re, err := CompileRegex(line)
			if err != nil {
				return nil, fmt.Errorf("message pattern %q: %w", line, err)
			}
			patterns = append(patterns, re)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}

	// A file not ending in a blank line still commits its last block.
	commit()

	return &table, nil
}
