// SPDX-License-Identifier: MIT
// Package: bfs500/csr

package csr

import "errors"

// ErrVertexOutOfRange indicates an internal vertex id outside [0, V) was
// passed to Neighbors or EnsureLocal, or found as an arc source by
// DeriveVertexCentric. FindLocs does not return it: an out-of-range id
// simply yields no locales.
var ErrVertexOutOfRange = errors.New("csr: vertex id out of range")
