// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output delivers the filtered report: either to a console stream,
// optionally highlighting interesting lines, or as a mail message piped to a
// sendmail-style transport command.
//
// An empty report produces no output and no mail. Nothing to say is the
// normal, quiet case.
package output
