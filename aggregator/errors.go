// SPDX-License-Identifier: MIT
// Package: bfs500/aggregator

package aggregator

import "errors"

// ErrRemoteAllocFailed indicates a per-destination remote scratch buffer
// could not be allocated (its google/uuid handle could not be minted) or
// New was given a buffer capacity or yield frequency below 1. An
// out-of-range destination locale is reported as locale.ErrInvariant
// instead. Fatal to the
// in-flight BFS call, per the teacher's sentinel + errors.Is discipline:
// callers MUST branch with errors.Is(err, ErrRemoteAllocFailed).
var ErrRemoteAllocFailed = errors.New("aggregator: remote buffer allocation failed")
