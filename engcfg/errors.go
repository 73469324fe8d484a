// SPDX-License-Identifier: MIT
// Package: bfs500/engcfg

package engcfg

import "errors"

// ErrInvalidTunable indicates an environment variable was set but resolved
// to a value outside its valid domain (e.g. a non-positive buffer size).
// Usage: if errors.Is(err, ErrInvalidTunable) { /* report misconfiguration */ }.
var ErrInvalidTunable = errors.New("engcfg: invalid tunable value")
