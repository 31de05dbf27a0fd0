// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/The-Compiler/journalwatch/internal/log"
)

// Backoff is subtracted from the stored time on load, so entries logged
// around the previous run's cutoff are not lost to clock or logging latency.
const Backoff = time.Minute

// Store persists a single timestamp as decimal Unix seconds in a file.
type Store struct {
	path string
}

// NewStore returns a Store backed by <dir>/time.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "time")}
}

// Load returns the stored time minus the backoff. A missing file yields the
// zero time and no error: the first run reads the whole journal.
func (s *Store) Load() (time.Time, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		log.Debugf("no run state at %s, reading whole journal", s.path)
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read run state %s: %w", s.path, err)
	}

	secs, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt run state %s: %w", s.path, err)
	}

	return time.Unix(secs, 0).Add(-Backoff), nil
}

// Save writes t atomically via a temp file and rename.
func (s *Store) Save(t time.Time) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".time-*")
	if err != nil {
		return fmt.Errorf("write run state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.FormatInt(t.Unix(), 10) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write run state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write run state: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write run state: %w", err)
	}
	return nil
}
