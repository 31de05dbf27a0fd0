// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

// DefaultConfig is written to the config file on first run. Flags override
// anything set here.
const DefaultConfig = `# journalwatch configuration.
#
# Command-line flags override these values.

# Time window to report on: all | new | <seconds>
since: new

# Maximum syslog priority to read (journalctl -p).
priority: info

mail:
  # Recipient is required for the mail action.
  #to: root@localhost
  #from: journalwatch@localhost
  subject: '[{hostname}] {count} journal messages ({start} - {end})'
  command: sendmail -toi

print:
  # Highlight report lines matching this regex (matched from the start of
  # the line) when color output is enabled.
  #highlight: 'U .* [0-3] '
  #color: '160'
`

// DefaultPatterns is the starter rule file written on first run. Each block
// is a header line "FIELD = value" (value may be /regex/) followed by one
// regex per line matched against the message. All regexes match from the
// start of the string.
const DefaultPatterns = `# journalwatch patterns
#
# FIELD = value
# message regex
# message regex
#
# value is a literal, or a /regex/ matched against the field. Blocks are
# separated by blank lines. All regexes are anchored at the start.

# User session noise.
_SYSTEMD_UNIT = /session-\d+\.scope/
pam_unix\(.*\): session (opened|closed) for user \w+.*
New session c?\d+ of user \w+\.
Removed session c?\d+\.

# Cron noise.
SYSLOG_IDENTIFIER = /CRON[D]?/
pam_unix\(crond?:session\): session (opened|closed) for user \w+.*
\(\w+\) CMD .*

# systemd unit lifecycle noise.
_SYSTEMD_UNIT = init.scope
Start(ed|ing) .*
Stopp(ed|ing) .*
Reached target .*
Stopped target .*
Listening on .*
Closed .*
`
