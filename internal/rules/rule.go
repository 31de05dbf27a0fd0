// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"regexp"
	"strings"
)

// Regex is a start-anchored regular expression that remembers its source
// text, so a table can be serialized back to pattern-file form.
type Regex struct {
	expr string
	re   *regexp.Regexp
}

// CompileRegex compiles expr anchored at the start of the subject.
func CompileRegex(expr string) (Regex, error) {
	re, err := regexp.Compile("^(?:" + expr + ")")
	if err != nil {
		return Regex{}, err
	}
	return Regex{expr: expr, re: re}, nil
}

// MatchString reports whether the regex matches at the start of s.
func (r Regex) MatchString(s string) bool { return r.re.MatchString(s) }

// String returns the source expression, without the anchoring wrapper.
func (r Regex) String() string { return r.expr }

// MatcherKind tags the two field-matching strategies.
type MatcherKind int

const (
	// MatchLiteral compares the field value for exact equality.
	MatchLiteral MatcherKind = iota
	// MatchPattern matches the field value against a regex.
	MatchPattern
)

// Matcher is the header condition's value side: either a literal string or a
// compiled regex. The evaluator dispatches on Kind.
type Matcher struct {
	Kind    MatcherKind
	Literal string
	Pattern Regex
}

// Matches reports whether the matcher accepts the given field value, already
// coerced to its canonical string form.
func (m Matcher) Matches(value string) bool {
	switch m.Kind {
	case MatchPattern:
		return m.Pattern.MatchString(value)
	default:
		return m.Literal == value
	}
}

// String renders the matcher in pattern-file form: the bare literal, or the
// regex in /…/ delimiters.
func (m Matcher) String() string {
	if m.Kind == MatchPattern {
		return "/" + m.Pattern.String() + "/"
	}
	return m.Literal
}

// Key is the full condition key of a block: the field name plus its matcher.
// Blocks with equal field names but different matchers are distinct entries.
type Key struct {
	Field   string
	Matcher Matcher
}

// String renders the key as a header line.
func (k Key) String() string { return k.Field + " = " + k.Matcher.String() }

// Block is one committed pattern block: a condition key and the message
// patterns accumulated under it. Patterns keep file order.
type Block struct {
	Key      Key
	Patterns []Regex
}

// Table is the compiled rule set: blocks in insertion order, no condition key
// twice. It is immutable once returned by Compile and safe for concurrent
// use by the evaluator.
type Table struct {
	blocks []Block
}

// Len returns the number of blocks.
func (t *Table) Len() int { return len(t.blocks) }

// Blocks returns the blocks in insertion order.
func (t *Table) Blocks() []Block { return t.blocks }

// add commits a block. A block whose key is already present replaces the
// earlier one in place, keeping the original position.
func (t *Table) add(k Key, patterns []Regex) {
	for i, b := range t.blocks {
		if b.Key.String() == k.String() {
			t.blocks[i] = Block{Key: k, Patterns: patterns}
			return
		}
	}
	t.blocks = append(t.blocks, Block{Key: k, Patterns: patterns})
}

// String serializes the table back to pattern-file text. Compiling the
// result yields an equivalent table.
func (t *Table) String() string {
	var sb strings.Builder
	for i, b := range t.blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(b.Key.String() + "\n")
		for _, p := range b.Patterns {
			sb.WriteString(p.String() + "\n")
		}
	}
	return sb.String()
}
