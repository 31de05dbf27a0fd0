// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/The-Compiler/journalwatch/internal/config"
	"github.com/The-Compiler/journalwatch/internal/log"
)

// ColorsUsable reports whether styled output makes sense for f, i.e. whether
// it is a terminal.
func ColorsUsable(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Print writes the kept report lines to w, one per line. Empty input writes
// nothing at all. When color is enabled, lines matching the configured
// print.highlight regex are emphasized.
func Print(w io.Writer, lines []string, color bool) error {
	if len(lines) == 0 {
		return nil
	}

	highlight := highlighter(color)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, highlight(line)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// highlighter returns the line transform for the configured highlight
// pattern, or the identity transform when color is off or nothing is
// configured.
func highlighter(color bool) func(string) string {
	identity := func(s string) string { return s }
	if !color {
		return identity
	}

	expr, err := config.GetString("print.highlight")
	if err != nil || expr == "" {
		return identity
	}
	re, err := regexp.Compile("^(?:" + expr + ")")
	if err != nil {
		log.Warnf("invalid print.highlight pattern %q: %v", expr, err)
		return identity
	}

	colorCfg, _ := config.GetString("print.color", "160")
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorCfg))

	return func(s string) string {
		if re.MatchString(s) {
			return style.Render(s)
		}
		return s
	}
}
