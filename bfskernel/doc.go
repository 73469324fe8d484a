// SPDX-License-Identifier: MIT
// Package: bfs500/bfskernel
//
// Package bfskernel implements the distributed BFS variants: level and
// parent, each in an aggregated (vertex-centric, batched through an
// aggregator.Aggregator) and a non-aggregated (direct-write reference)
// form, plus an edge-centric level variant and the parent→level
// conversion helper.
//
// Per-call state lives in a BFSContext value — level, parent, and visited
// distributed arrays plus per-locale frontier buffers — rather than in
// module-scope globals, so two concurrent BFS calls never share mutable
// state (Design Notes: replacing per-node replicated globals with an
// explicit context threaded through the kernel). The BFSContext is one value
// per call holding every locale's frontier buffers; it is not stored in the
// locale registry. Each kernel call constructs a fresh BFSContext
// and a fresh Aggregator generation per iteration; an aggregator's Close
// blocks until its locale receivers finish applying every flushed batch,
// which is what establishes the "all flushes for iteration k complete
// before iteration k+1 begins" barrier the concurrency model requires,
// without needing a second synchronization primitive layered on top of
// golang.org/x/sync/errgroup's Registry.Barrier.
package bfskernel
