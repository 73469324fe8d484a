// Package bfs500 documents the module as a whole; it holds no code of its
// own.
//
// bfs500 is a distributed-memory breadth-first search engine for large,
// sparse, undirected graphs in the Graph500 benchmark regime: graphs with
// 2^S vertices and roughly 16*2^S edges, partitioned across N simulated
// compute nodes ("locales"), with per-source BFS time dominated by
// inter-node communication.
//
// The module is organized, leaves first, as:
//
//	engcfg/       — environment-driven tunables (buffer size, yield frequency, worker count)
//	locale/       — DistributedArray, the locale registry, barriers and the task-parallel worker pool
//	aggregator/   — destination-side buffered communicator with Level/Parent sinks
//	graphbuilder/ — symmetrize -> sort -> dedupe -> renumber -> CSR construction pipeline
//	csr/          — EdgeCentricGraph and VertexCentricGraph views over a built graph
//	bfskernel/    — the vertex-centric BFS kernels (aggregated and non-aggregated) and parent->level conversion
//	mmio/         — Matrix Market coordinate-format reader
//
// bfskernel's reference.go additionally gathers a VertexCentricGraph's
// adjacency into a single local slice and walks it with a plain queue-based
// BFS, independent of BFSContext and the aggregator pipeline, as a third,
// structurally distinct ground truth for the distributed kernels.
//
// This module does not define a CLI, a network listener, or persistent
// storage; it is embedded by a benchmarking harness that supplies scale,
// trial count, and an algorithm name, and that owns timing/CSV reporting.
package bfs500
