// SPDX-License-Identifier: MIT
// Package: bfs500/aggregator
//
// shared.go — the receiver side shared by every Aggregator[T] instance
// forked from the same root: one inbound channel and one receiver goroutine
// per locale, started once and drained until closed. Multiple producer-side
// Aggregator instances (one per BFS task, per the design's "one aggregator
// per task" inner loop) send into the same channels; the receivers are
// entirely decoupled from producers, which is the "dedicated receiver
// thread per node" option from the design notes on replacing the
// yield-counter deadlock-avoidance heuristic.

package aggregator

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/dgraphlabs/bfs500/locale"
)

type shared[T any] struct {
	registry *locale.Registry
	sink     Sink[T]
	inbox    []chan []T
	recvWG   sync.WaitGroup

	mu     sync.Mutex
	errs   *multierror.Error
	closed bool
}

func newShared[T any](registry *locale.Registry, sink Sink[T]) *shared[T] {
	sh := &shared[T]{
		registry: registry,
		sink:     sink,
		inbox:    make([]chan []T, registry.N()),
	}
	for n := range sh.inbox {
		sh.inbox[n] = make(chan []T, 1)
	}
	return sh
}

// start launches one receiver goroutine per locale, each draining its inbox
// until start's caller later closes every channel via close().
func (sh *shared[T]) start(ctx context.Context) {
	for n := 0; n < sh.registry.N(); n++ {
		n := n
		sh.recvWG.Add(1)
		go func() {
			defer sh.recvWG.Done()
			for batch := range sh.inbox[n] {
				if err := sh.sink.Consume(ctx, n, batch); err != nil {
					sh.mu.Lock()
					sh.errs = multierror.Append(sh.errs, fmt.Errorf("aggregator: locale %d: %w", n, err))
					sh.mu.Unlock()
				}
			}
		}()
	}
}

// send hands batch to destination locale n's receiver. The send blocks
// until the channel accepts it — the "remote memory operation blocks the
// issuing task until the bulk transfer completes" rule from the
// concurrency model — while the receiver's subsequent processing of the
// batch happens independently of the sender.
func (sh *shared[T]) send(n int, batch []T) {
	sh.inbox[n] <- batch
}

// close closes every inbound channel, waits for every receiver goroutine to
// drain and exit, and returns the joined receiver errors, if any. Idempotent.
func (sh *shared[T]) close() error {
	sh.mu.Lock()
	if sh.closed {
		sh.mu.Unlock()
		return nil
	}
	sh.closed = true
	sh.mu.Unlock()

	for _, ch := range sh.inbox {
		close(ch)
	}
	sh.recvWG.Wait()

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.errs == nil {
		return nil
	}
	return sh.errs.ErrorOrNil()
}
