// SPDX-License-Identifier: MIT
// Package: bfs500/aggregator
//
// sink.go — the destination side of an aggregator: applies a flushed batch
// to local state on the receiving locale. Sink is generic over the payload
// type so callers outside this package can plug in their own consumption
// semantics without aggregator needing to know about BFS-specific state
// (level/parent/visited arrays live in package bfskernel, which implements
// LevelConsumer/ParentConsumer rather than aggregator importing bfskernel).

package aggregator

import (
	"context"
	"fmt"

	"github.com/dgraphlabs/bfs500/locale"
)

// Sink is the receiving-side consumer bound to one Aggregator[T]. Consume
// runs on the locale's receiver goroutine for every flushed batch destined
// for destLocale; it must be safe to call repeatedly and must not block
// indefinitely (a stuck sink stalls that locale's inbound channel).
type Sink[T any] interface {
	Consume(ctx context.Context, destLocale int, batch []T) error
}

// LevelConsumer is what a LevelSink needs from the locale receiving a
// frontier-discovery message: a place to push an arriving id. Unlike
// ParentConsumer, the visited test-and-set for level BFS does not happen
// here — per the level kernel's pseudocode it happens when a vertex is
// later dequeued from the frontier, not when it arrives at the sink, so
// duplicate arrivals are pushed and tolerated, exactly as the frontier
// representation allows. bfskernel.BFSContext implements this.
type LevelConsumer interface {
	// PushFrontier appends v to the next-level frontier local to this
	// locale. May be called more than once for the same v; the kernel's
	// own dequeue-time test-and-set collapses duplicates later.
	PushFrontier(v int)
}

// ParentConsumer is what a ParentSink needs from the locale receiving a
// (child, parent) discovery message.
type ParentConsumer interface {
	// TestAndSetVisited atomically marks child visited, returning true if
	// child was already visited — the at-most-one-winner mechanism parent
	// assignment depends on.
	TestAndSetVisited(child int) (alreadyVisited bool)
	// SetParent records parent as child's discoverer. Only called once per
	// child, immediately after a winning TestAndSetVisited.
	SetParent(child, parent int)
	// PushFrontier appends child to the next-level frontier local to this
	// locale.
	PushFrontier(child int)
}

// levelSink implements Sink[int]: the payload is an internal vertex id.
type levelSink struct {
	consumers []LevelConsumer
}

// NewLevelSink builds the LevelSink described in the aggregator design: on
// arrival, every id in the batch is unconditionally pushed onto
// destLocale's next-level frontier; duplicates are tolerated here and
// collapsed later by the kernel's own dequeue-time visited test-and-set.
// consumers must have one entry per locale, indexed by locale id.
func NewLevelSink(consumers []LevelConsumer) Sink[int] {
	return &levelSink{consumers: consumers}
}

func (s *levelSink) Consume(_ context.Context, destLocale int, batch []int) error {
	if destLocale < 0 || destLocale >= len(s.consumers) {
		return fmt.Errorf("aggregator: LevelSink: locale %d out of range: %w", destLocale, locale.ErrInvariant)
	}
	c := s.consumers[destLocale]
	for _, v := range batch {
		c.PushFrontier(v)
	}
	return nil
}

// ParentMsg is the ParentSink payload: child is the discovered vertex,
// parent is its discoverer, both internal ids.
type ParentMsg struct {
	Child, Parent int
}

// parentSink implements Sink[ParentMsg].
type parentSink struct {
	consumers []ParentConsumer
}

// NewParentSink builds the ParentSink described in the aggregator design:
// the receiving locale performs the winning test-and-set on visited[child]
// and, only on a win, records the parent and pushes child onto the
// next-level frontier — the mechanism that makes parent assignment
// well-defined under concurrent arrivals from multiple discoverers.
func NewParentSink(consumers []ParentConsumer) Sink[ParentMsg] {
	return &parentSink{consumers: consumers}
}

func (s *parentSink) Consume(_ context.Context, destLocale int, batch []ParentMsg) error {
	if destLocale < 0 || destLocale >= len(s.consumers) {
		return fmt.Errorf("aggregator: ParentSink: locale %d out of range: %w", destLocale, locale.ErrInvariant)
	}
	c := s.consumers[destLocale]
	for _, m := range batch {
		if !c.TestAndSetVisited(m.Child) {
			c.SetParent(m.Child, m.Parent)
			c.PushFrontier(m.Child)
		}
	}
	return nil
}
