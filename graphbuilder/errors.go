// SPDX-License-Identifier: MIT
// Package: bfs500/graphbuilder
//
// errors.go — sentinel errors for graphbuilder, following the teacher's
// builder/errors.go discipline: sentinels are bare, context is attached at
// the call site with golang.org/x/xerrors.Errorf's %w wrapping so a
// ConstructionError diagnostic carries a frame trace back to the failing
// stage.

package graphbuilder

import "errors"

// ErrLengthMismatch indicates src and dst were not equal-length on entry to
// Build. Note there is deliberately no ErrNegativeVertexID: external vertex
// ids are signed and negative values are valid input.
var ErrLengthMismatch = errors.New("graphbuilder: src and dst length mismatch")
