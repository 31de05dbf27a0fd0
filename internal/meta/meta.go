// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import "context"

// Meta contains runtime metadata shared by commands. It carries the original
// CLI arguments, the context, and the resolved config and data directories.
type Meta struct {
	Args      []string
	Context   context.Context
	ConfigDir string
	DataDir   string
}
