// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strconv"
	"time"

	"github.com/The-Compiler/journalwatch/internal/state"
)

// WindowError reports a --since value that is neither a recognized keyword
// nor an integer number of seconds.
type WindowError struct {
	Value string
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("invalid time window %q (want all, new, or seconds)", e.Value)
}

// resolveSince maps the --since value to the start of the reporting window.
// "all" is the zero time (whole journal), "new" reads the run-state store
// (with its backoff already applied), and a bare integer means that many
// seconds before now.
func resolveSince(value string, st *state.Store, now time.Time) (time.Time, error) {
	switch value {
	case "all":
		return time.Time{}, nil
	case "new":
		return st.Load()
	}

	secs, err := strconv.ParseInt(value, 10, 64)
	if err != nil || secs < 0 {
		return time.Time{}, &WindowError{Value: value}
	}
	return now.Add(-time.Duration(secs) * time.Second), nil
}
