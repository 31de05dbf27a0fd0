// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package journal

import (
	"fmt"
	"strconv"
	"time"
)

// Value is one journal field value. String is the canonical text form used
// when matching rules against the field; Display is the form used in rendered
// reports. The two differ only where the raw value has no natural text form.
type Value interface {
	String() string
	Display() string
}

// StringValue is an ordinary text field value.
type StringValue string

func (v StringValue) String() string  { return string(v) }
func (v StringValue) Display() string { return string(v) }

// IntValue is a numeric field value, e.g. a PRIORITY code or a _PID. It
// matches rules by its decimal form, so a literal rule value "1" matches a
// field holding the integer 1.
type IntValue int64

func (v IntValue) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v IntValue) Display() string { return v.String() }

// TimeValue is a timestamp field value, e.g. __REALTIME_TIMESTAMP. The
// canonical form is journald's own encoding, microseconds since the epoch;
// reports show a ctime-style rendering instead.
type TimeValue time.Time

func (v TimeValue) String() string {
	return strconv.FormatInt(time.Time(v).UnixMicro(), 10)
}

func (v TimeValue) Display() string {
	return time.Time(v).Format(time.ANSIC)
}

// Time returns the underlying time.
func (v TimeValue) Time() time.Time { return time.Time(v) }

// BytesValue is an opaque binary field value. Both forms are a placeholder
// describing the payload, never the raw bytes: text patterns must not be run
// against binary data, and a report line must stay printable.
type BytesValue []byte

func (v BytesValue) String() string {
	return fmt.Sprintf("[binary data (%d bytes)]", len(v))
}

func (v BytesValue) Display() string { return v.String() }
