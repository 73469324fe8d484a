// SPDX-License-Identifier: MIT
// Package: bfs500/bfskernel
//
// errors.go — sentinel errors, following the teacher's builder/errors.go
// discipline: bare sentinels, %w-wrapped context at the call site.

package bfskernel

import "errors"

// ErrSourceOutOfRange indicates a BFS kernel was called with a source
// vertex outside [0, V).
var ErrSourceOutOfRange = errors.New("bfskernel: source vertex out of range")
