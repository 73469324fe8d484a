// SPDX-License-Identifier: MIT
// Package: bfs500/bfskernel
//
// context.go — BFSContext: the per-call replacement for the source
// engine's replicated module-scope globals (frontiers, curIdx, visited,
// parents), per Design Notes §9. One BFSContext is constructed per BFS
// call and never shared across calls. level/parent/visited are
// locale.DistributedArray[int64] over the same registry and vertex count
// a graph view uses, so BFSContext's own vertex-block distribution
// (computed identically by locale.ownerOfIndex from the same (V,N) pair)
// agrees with csr.VertexCentricGraph.OwnerOf without either package
// depending on the other for it.

package bfskernel

import (
	"sync"

	"github.com/dgraphlabs/bfs500/aggregator"
	"github.com/dgraphlabs/bfs500/locale"
)

// BFSContext holds one BFS call's mutable state: the result arrays
// (level, parent), the visited bitmap, and the two frontier buffers
// replicated per locale.
type BFSContext struct {
	registry *locale.Registry
	v        int

	level   *locale.DistributedArray[int64]
	parent  *locale.DistributedArray[int64]
	visited *locale.DistributedArray[int64]

	frontMu  []sync.Mutex
	frontier [][2][]int
	curIdx   int

	levelConsumers  []aggregator.LevelConsumer
	parentConsumers []aggregator.ParentConsumer
}

func newBFSContext(registry *locale.Registry, v int) *BFSContext {
	bc := &BFSContext{
		registry: registry,
		v:        v,
		level:    locale.NewDistributedArray[int64](registry, v),
		parent:   locale.NewDistributedArray[int64](registry, v),
		visited:  locale.NewDistributedArray[int64](registry, v),
		frontMu:  make([]sync.Mutex, registry.N()),
		frontier: make([][2][]int, registry.N()),
	}
	bc.level.Fill(-1)
	bc.parent.Fill(-1)

	bc.levelConsumers = make([]aggregator.LevelConsumer, registry.N())
	bc.parentConsumers = make([]aggregator.ParentConsumer, registry.N())
	for n := 0; n < registry.N(); n++ {
		bc.levelConsumers[n] = &levelView{bc: bc, n: n}
		bc.parentConsumers[n] = &parentView{bc: bc, n: n}
	}
	return bc
}

// Level returns the distributed level array (-1 for unreached vertices).
func (bc *BFSContext) Level() *locale.DistributedArray[int64] { return bc.level }

// Parent returns the distributed parent array (-1 for unreached, self for
// the source).
func (bc *BFSContext) Parent() *locale.DistributedArray[int64] { return bc.parent }

// ownerOf is the pure-arithmetic vertex-block owner of vertex u, computed
// from the same (V, N) pair a csr graph view's adjacency array uses.
func (bc *BFSContext) ownerOf(u int) int {
	n, _ := bc.level.OwnerOf(u)
	return n
}

// TestAndSetVisited atomically marks v visited, returning whether it was
// already visited. This is the single linearization point the spec names
// for both level assignment and parent assignment.
func (bc *BFSContext) TestAndSetVisited(v int) bool {
	n := bc.ownerOf(v)
	bc.registry.Lock(n)
	defer bc.registry.Unlock(n)
	block := bc.visited.LocalRange(n)
	local := bc.visited.LocalSlice(n)
	idx := v - block.Lo
	was := local[idx] != 0
	local[idx] = 1
	return was
}

// setLevel records v's discovery level. Exported only within the package:
// called by the level kernels' dequeue loop on a winning test-and-set.
func (bc *BFSContext) setLevel(v int, lvl int64) {
	_ = bc.level.Set(v, lvl)
}

// setParent records parent as child's discoverer. Called at most once per
// child, immediately after a winning TestAndSetVisited.
func (bc *BFSContext) setParent(child, parent int) {
	_ = bc.parent.Set(child, int64(parent))
}

// seedFrontier places v directly into the current frontier buffer of its
// owner locale, used only to seed the source vertex before the first
// iteration — distinct from pushNextAt, which targets the *next* buffer
// during an iteration's expansion.
func (bc *BFSContext) seedFrontier(v int) {
	bc.seedFrontierAt(bc.ownerOf(v), v)
}

func (bc *BFSContext) seedFrontierAt(n, v int) {
	bc.frontMu[n].Lock()
	bc.frontier[n][bc.curIdx] = append(bc.frontier[n][bc.curIdx], v)
	bc.frontMu[n].Unlock()
}

// pushNextAt appends v to locale n's next-iteration frontier buffer. Used
// directly by the edge-centric kernel (destination chosen by FindLocs, not
// by vertex ownership) and, via pushNext, by the vertex-centric kernels.
func (bc *BFSContext) pushNextAt(n, v int) {
	bc.frontMu[n].Lock()
	bc.frontier[n][bc.curIdx^1] = append(bc.frontier[n][bc.curIdx^1], v)
	bc.frontMu[n].Unlock()
}

func (bc *BFSContext) pushNext(v int) {
	bc.pushNextAt(bc.ownerOf(v), v)
}

// takeLocalFrontier atomically drains locale n's current frontier buffer,
// leaving it empty for the next round's pushes to accumulate into (after
// curIdx toggles, today's "next" buffer becomes tomorrow's "current").
func (bc *BFSContext) takeLocalFrontier(n int) []int {
	bc.frontMu[n].Lock()
	defer bc.frontMu[n].Unlock()
	cur := bc.frontier[n][bc.curIdx]
	bc.frontier[n][bc.curIdx] = nil
	return cur
}

// totalFrontierSize sums every locale's buffer at index idx, the "reduced
// sum of local frontier sizes" the termination rule checks at the top of
// each iteration.
func (bc *BFSContext) totalFrontierSize(idx int) int {
	total := 0
	for n := range bc.frontier {
		bc.frontMu[n].Lock()
		total += len(bc.frontier[n][idx])
		bc.frontMu[n].Unlock()
	}
	return total
}

func (bc *BFSContext) toggle() { bc.curIdx ^= 1 }

// levelView is the per-locale LevelConsumer bound to locale n: every
// arriving id is pushed onto n's next frontier unconditionally, per spec
// §4.2/§4.5 — the visited test-and-set for level BFS happens later, when
// the kernel dequeues from the frontier, not here.
type levelView struct {
	bc *BFSContext
	n  int
}

func (lv *levelView) PushFrontier(v int) { lv.bc.pushNextAt(lv.n, v) }

// parentView is the per-locale ParentConsumer bound to locale n: performs
// the winning test-and-set, parent write, and frontier push atomically
// from the caller's perspective — the mechanism that makes parent
// assignment well-defined under concurrent discoverers.
type parentView struct {
	bc *BFSContext
	n  int
}

func (pv *parentView) TestAndSetVisited(child int) bool { return pv.bc.TestAndSetVisited(child) }
func (pv *parentView) SetParent(child, parent int)      { pv.bc.setParent(child, parent) }
func (pv *parentView) PushFrontier(child int)           { pv.bc.pushNextAt(pv.n, child) }
