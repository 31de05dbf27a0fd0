// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package state persists the timestamp of the last successful run, enabling
// the "only new entries since last run" window. Reads apply a one minute
// safety backoff to tolerate clock skew and journal write latency.
package state
