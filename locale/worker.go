// SPDX-License-Identifier: MIT
// Package: bfs500/locale
//
// worker.go — Worker realizes one locale's "inner parallel tasking runtime
// over CPU cores": BFS inner loops over local frontier elements are
// task-parallel, bounded so a locale with a large frontier doesn't spawn
// one goroutine per element.

package locale

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Worker bounds the concurrency of one locale's inner task-parallel loop to
// at most capacity simultaneous tasks via golang.org/x/sync/semaphore.
type Worker struct {
	sem      *semaphore.Weighted
	capacity int64
}

// NewWorker builds a Worker admitting at most capacity concurrent tasks.
// Panics if capacity < 1 (construction-time programmer error).
func NewWorker(capacity int) *Worker {
	if capacity < 1 {
		panic(fmt.Sprintf("locale: NewWorker: capacity must be >= 1, got %d", capacity))
	}
	return &Worker{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: int64(capacity),
	}
}

// Capacity returns the worker's maximum concurrency.
func (w *Worker) Capacity() int { return int(w.capacity) }

// ForEach runs fn(i) for every i in [0, count), fanning out across at most
// w.Capacity() goroutines at a time, and returns the first error (if any)
// once every task has completed. fn must be safe to call concurrently for
// distinct i; this is the primitive BFS inner loops use to process a local
// frontier's elements one task per element.
func (w *Worker) ForEach(ctx context.Context, count int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		if err := w.sem.Acquire(gctx, 1); err != nil {
			if werr := g.Wait(); werr != nil {
				return werr
			}
			return err
		}
		g.Go(func() error {
			defer w.sem.Release(1)
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
