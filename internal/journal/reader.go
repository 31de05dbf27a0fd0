// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package journal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/The-Compiler/journalwatch/internal/log"
)

// Options selects which slice of the journal to read.
type Options struct {
	// Since is the start of the window. The zero time means the whole
	// journal.
	Since time.Time

	// Priority is the maximum syslog priority to read (journalctl -p).
	// Empty means "info".
	Priority string

	// Command overrides the journalctl invocation, mainly for tests.
	Command []string
}

// Reader streams entries from a journalctl child process. It is forward-only
// and yields entries in occurrence order, the order journalctl emits them.
type Reader struct {
	cmd *exec.Cmd
	sc  *bufio.Scanner
}

// Open starts journalctl and returns a Reader over its JSON output.
func Open(ctx context.Context, opts Options) (*Reader, error) {
	cmdline := opts.Command
	if len(cmdline) == 0 {
		cmdline = []string{"journalctl"}
	}

	priority := opts.Priority
	if priority == "" {
		priority = "info"
	}

	args := append(cmdline[1:], "--output=json", "--quiet", "--no-pager", "--priority="+priority)
	if !opts.Since.IsZero() {
		args = append(args, "--since=@"+strconv.FormatInt(opts.Since.Unix(), 10))
	}

	cmd := exec.CommandContext(ctx, cmdline[0], args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("journalctl stdout pipe: %w", err)
	}
	cmd.Stderr = nil // sets to /dev/null
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %q: %w", cmd.String(), err)
	}
	log.Debugf("started journal reader: command=%q pid=%d", cmd.String(), cmd.Process.Pid)

	sc := bufio.NewScanner(stdout)
	// Journal entries can carry large payloads, well past the default
	// scanner limit.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	return &Reader{cmd: cmd, sc: sc}, nil
}

// Next returns the next entry, or io.EOF when the stream is exhausted. Any
// line that is not a JSON object aborts the run; a partially readable stream
// must not silently produce a partial report.
func (r *Reader) Next() (Entry, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, fmt.Errorf("read journal stream: %w", err)
		}
		return nil, io.EOF
	}

	line := r.sc.Text()
	e, ok := ParseLine(line)
	if !ok {
		return nil, fmt.Errorf("unparseable journal line: %q", line)
	}
	return e, nil
}

// Close reaps the child process. Safe to call after EOF or mid-stream.
func (r *Reader) Close() error {
	if r.cmd.Process != nil {
		_ = r.cmd.Process.Kill()
	}
	_ = r.cmd.Wait()
	return nil
}

// ParseLine decodes one line of journalctl JSON output into an Entry. String
// fields stay strings, numbers become IntValues, journald's number-array
// encoding of non-UTF-8 payloads becomes a BytesValue, and
// __REALTIME_TIMESTAMP (microseconds since the epoch) becomes a TimeValue.
func ParseLine(line string) (Entry, bool) {
	doc := gjson.Parse(line)
	if !doc.IsObject() {
		return nil, false
	}

	e := Entry{}
	doc.ForEach(func(key, value gjson.Result) bool {
		field := key.String()
		switch {
		case value.IsArray():
			vals := value.Array()
			b := make([]byte, 0, len(vals))
			for _, v := range vals {
				b = append(b, byte(v.Int()))
			}
			e[field] = BytesValue(b)
		case field == FieldTimestamp:
			usec, err := strconv.ParseInt(value.String(), 10, 64)
			if err != nil {
				e[field] = StringValue(value.String())
				break
			}
			e[field] = TimeValue(time.UnixMicro(usec))
		case value.Type == gjson.Number:
			e[field] = IntValue(value.Int())
		default:
			e[field] = StringValue(value.String())
		}
		return true
	})
	return e, true
}
