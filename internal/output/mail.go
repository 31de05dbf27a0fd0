// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/The-Compiler/journalwatch/internal/log"
)

// DefaultSubject is the subject template used when none is configured.
const DefaultSubject = "[{hostname}] {count} journal messages ({start} - {end})"

// ConfigError reports a missing delivery parameter. It is raised at the
// point delivery is attempted, not at startup.
type ConfigError struct {
	Param string
}

func (e *ConfigError) Error() string {
	return "missing required mail setting: " + e.Param
}

// MailConfig carries the delivery parameters for the mail action.
type MailConfig struct {
	From    string
	To      string
	Subject string // template; see Subject placeholders below
	Command string // transport invocation, e.g. "sendmail -toi"
}

// Window is the reported time span, used for subject interpolation.
type Window struct {
	Start time.Time
	End   time.Time
}

// Mail packages the report lines into a mail message and pipes it to the
// transport command. Empty input sends nothing. A missing recipient is a
// *ConfigError.
func Mail(cfg MailConfig, lines []string, w Window) error {
	if len(lines) == 0 {
		log.Debug("empty report, not sending mail")
		return nil
	}
	if cfg.To == "" {
		return &ConfigError{Param: "to"}
	}

	msg := Compose(cfg, lines, w)

	cmdline := strings.Fields(cfg.Command)
	if len(cmdline) == 0 {
		cmdline = []string{"sendmail", "-toi"}
	}
	cmd := exec.Command(cmdline[0], cmdline[1:]...)
	cmd.Stdin = strings.NewReader(msg)
	cmd.Stdout = nil
	cmd.Stderr = os.Stderr

	log.Debugf("sending %d lines via %q", len(lines), cmd.String())
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %q: %w", cmd.String(), err)
	}
	return nil
}

// Compose builds the full RFC 5322 message text for the report.
func Compose(cfg MailConfig, lines []string, w Window) string {
	from := cfg.From
	if from == "" {
		from = "journalwatch@" + hostname()
	}

	var sb strings.Builder
	sb.WriteString("From: " + from + "\n")
	sb.WriteString("To: " + cfg.To + "\n")
	sb.WriteString("Subject: " + Subject(cfg.Subject, len(lines), w) + "\n")
	sb.WriteString("\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n")
	return sb.String()
}

// Subject interpolates the subject template. Placeholders: {hostname},
// {count}, {start}, {end}.
func Subject(template string, count int, w Window) string {
	if template == "" {
		template = DefaultSubject
	}
	return strings.NewReplacer(
		"{hostname}", hostname(),
		"{count}", strconv.Itoa(count),
		"{start}", w.Start.Format(time.ANSIC),
		"{end}", w.End.Format(time.ANSIC),
	).Replace(template)
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return h
}
