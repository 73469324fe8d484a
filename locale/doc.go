// Package locale models the "one thread per node" outer scheduling layer of
// the distributed BFS engine: a fixed number of simulated locales, each
// owning a contiguous block of every distributed array's index range, and
// each guarded by its own lock rather than one lock shared across the whole
// registry — the same two-mutex-domain discipline the teacher package uses
// to separate vertex state from edge/adjacency state (core.Graph's muVert
// and muEdgeAdj), generalized here to one mutex per locale's block.
//
// There is no real network in this in-process embedding: the locale
// boundary is an address-space discipline enforced by Registry, not a wire
// protocol. Registry.Barrier realizes the "global barrier" between BFS
// iterations via golang.org/x/sync/errgroup fan-out/fan-in, and Worker
// realizes the inner parallel tasking runtime over CPU cores via
// golang.org/x/sync/semaphore.Weighted.
package locale
