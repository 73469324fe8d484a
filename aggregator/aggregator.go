// SPDX-License-Identifier: MIT
// Package: bfs500/aggregator
//
// aggregator.go — Aggregator[T]: the producer-side buffered combiner. One
// instance is held by one thread (per spec §4.2); BFS inner loops construct
// one per task via Fork so that concurrent tasks never share mutable
// buffer state, while all forks of the same root share one receiver-side
// shared[T] (see shared.go).

package aggregator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"

	"github.com/dgraphlabs/bfs500/locale"
)

// Aggregator coalesces Put(dst, value) calls into per-destination buffers
// of capacity Config.BufferCapacity, shipping each as one bulk transfer to
// that destination's Sink once full. Not safe for concurrent use by
// multiple goroutines on the same instance — call Fork to hand each
// concurrent task its own instance sharing this one's receivers.
type Aggregator[T any] struct {
	id     uuid.UUID
	shared *shared[T]
	isRoot bool

	capacity       int
	yieldFrequency int
	buf            [][]T
	yieldCounters  []int
}

// New builds the root Aggregator for one BFS call: it starts one receiver
// goroutine per locale in registry, each driving sink.Consume on flushed
// batches, and returns a producer-side instance ready for Put. Only the
// value returned by New (or a descendant reached by repeated Fork back to
// it) should have Close called on it — Close on the root tears down every
// receiver goroutine and every fork sharing it.
func New[T any](ctx context.Context, registry *locale.Registry, sink Sink[T], opts ...Option) (*Aggregator[T], error) {
	cfg := resolveConfig(opts...)
	if cfg.BufferCapacity < 1 || cfg.YieldFrequency < 1 {
		return nil, fmt.Errorf("aggregator: New: bufferCapacity=%d yieldFrequency=%d: %w",
			cfg.BufferCapacity, cfg.YieldFrequency, ErrRemoteAllocFailed)
	}

	sh := newShared[T](registry, sink)
	sh.start(ctx)

	a, err := newProducer[T](sh, cfg, true)
	if err != nil {
		_ = sh.close()
		return nil, err
	}
	return a, nil
}

// Fork returns a new Aggregator sharing a's receiver-side infrastructure
// but with its own private buffers and yield counters — the "one aggregator
// per task" instance each concurrent BFS task should hold.
func (a *Aggregator[T]) Fork() (*Aggregator[T], error) {
	return newProducer[T](a.shared, Config{BufferCapacity: a.capacity, YieldFrequency: a.yieldFrequency}, false)
}

func newProducer[T any](sh *shared[T], cfg Config, isRoot bool) (*Aggregator[T], error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("aggregator: mint remote buffer handle: %w", ErrRemoteAllocFailed)
	}

	n := sh.registry.N()
	a := &Aggregator[T]{
		id:             id,
		shared:         sh,
		isRoot:         isRoot,
		capacity:       cfg.BufferCapacity,
		yieldFrequency: cfg.YieldFrequency,
		buf:            make([][]T, n),
		yieldCounters:  make([]int, n),
	}
	for i := range a.buf {
		a.buf[i] = make([]T, 0, a.capacity)
		a.yieldCounters[i] = a.yieldFrequency
	}
	return a, nil
}

// ID returns this instance's remote-buffer handle, minted fresh for every
// root Aggregator and every Fork so concurrent producers targeting the same
// locale never collide on scratch-region identity in diagnostics.
func (a *Aggregator[T]) ID() uuid.UUID { return a.id }

// Put appends v to the buffer for destination locale n. If that buffer is
// now full, it is flushed immediately as one bulk transfer. Otherwise the
// yield counter is decremented; at zero, the calling goroutine yields the
// scheduler so other tasks on this locale (including its receiver) get a
// chance to run, and the counter resets.
func (a *Aggregator[T]) Put(n int, v T) error {
	if n < 0 || n >= len(a.buf) {
		return fmt.Errorf("aggregator: Put: locale %d out of range: %w", n, locale.ErrInvariant)
	}
	a.buf[n] = append(a.buf[n], v)
	if len(a.buf[n]) >= a.capacity {
		a.flushOne(n)
		return nil
	}
	a.yieldCounters[n]--
	if a.yieldCounters[n] <= 0 {
		runtime.Gosched()
		a.yieldCounters[n] = a.yieldFrequency
	}
	return nil
}

func (a *Aggregator[T]) flushOne(n int) {
	batch := a.buf[n]
	if len(batch) == 0 {
		return
	}
	a.buf[n] = make([]T, 0, a.capacity)
	a.shared.send(n, batch)
}

// Flush drains every non-empty per-destination buffer, shipping each as one
// bulk transfer. After Flush returns, every value previously Put on this
// instance has been handed to its destination's receiver (though the
// receiver may not yet have finished applying it — see Close to wait for
// that too).
func (a *Aggregator[T]) Flush() {
	for n := range a.buf {
		a.flushOne(n)
	}
}

// Close flushes remaining buffers. If a is the root Aggregator returned by
// New, Close additionally closes every receiver's inbound channel, waits
// for every receiver goroutine to finish draining, and returns the joined
// receiver errors (if any) as one go-multierror value. Close on a
// non-root fork only flushes; callers should Close the root once every
// fork is done producing.
func (a *Aggregator[T]) Close() error {
	a.Flush()
	if !a.isRoot {
		return nil
	}
	return a.shared.close()
}
