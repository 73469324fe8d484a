// SPDX-License-Identifier: MIT
// Package: bfs500/locale
//
// registry.go — Registry models the outer "one thread per node" scheduling
// layer: N locales, each with its own lock and its own inner worker pool.
// Distributed arrays borrow a Registry to resolve locking and ownership;
// Registry itself holds no BFS-specific state (that lives in bfskernel's
// per-call BFSContext, per Design Notes §9 on replacing replicated
// module-scope globals).

package locale

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Registry owns the locale count and, for every locale, one RWMutex guarding
// that locale's resident blocks and one Worker bounding its inner
// task-parallel runtime. There is deliberately no single registry-wide lock:
// two locales' blocks may be read or written concurrently without
// contention, mirroring core.Graph's muVert/muEdgeAdj split generalized to
// "one mutex per locale" instead of "one mutex per concern".
type Registry struct {
	n       int
	mus     []sync.RWMutex
	workers []*Worker
}

// NewRegistry builds a Registry of n locales, each with a Worker pool of the
// given per-locale worker capacity (typically engcfg.Config.Workers).
// Panics if n < 1 or workersPerLocale < 1: this is a construction-time
// programmer error, not a runtime condition, matching the teacher's
// validation-panics-confined-to-option-constructors convention.
func NewRegistry(n, workersPerLocale int) *Registry {
	if n < 1 {
		panic(fmt.Sprintf("locale: NewRegistry: n must be >= 1, got %d", n))
	}
	if workersPerLocale < 1 {
		panic(fmt.Sprintf("locale: NewRegistry: workersPerLocale must be >= 1, got %d", workersPerLocale))
	}
	r := &Registry{
		n:       n,
		mus:     make([]sync.RWMutex, n),
		workers: make([]*Worker, n),
	}
	for i := range r.workers {
		r.workers[i] = NewWorker(workersPerLocale)
	}
	return r
}

// N returns the number of locales in the registry.
func (r *Registry) N() int { return r.n }

// Worker returns the Worker pool owned by locale n. Panics on an
// out-of-range locale id: callers derive n from ownerOf, which is always
// in-range by construction.
func (r *Registry) Worker(n int) *Worker {
	return r.workers[n]
}

// RLock and RUnlock acquire/release locale n's read lock; Lock and Unlock
// its write lock. Exported so packages outside locale (csr, graphbuilder,
// bfskernel) that read or write a locale's block directly through
// DistributedArray.LocalSlice hold the same per-locale mutex that At and Set
// take.
func (r *Registry) RLock(n int)   { r.mus[n].RLock() }
func (r *Registry) RUnlock(n int) { r.mus[n].RUnlock() }
func (r *Registry) Lock(n int)    { r.mus[n].Lock() }
func (r *Registry) Unlock(n int)  { r.mus[n].Unlock() }

// Barrier runs fn once per locale, concurrently, and blocks until every
// invocation returns — the "global barrier" between BFS iterations. It is
// built on golang.org/x/sync/errgroup rather than a raw sync.WaitGroup
// counter so a failing locale goroutine surfaces as the returned error (a
// panic in fn is not recovered and ends the process); the first non-nil error
// cancels ctx for the remaining in-flight goroutines via errgroup's derived
// context, though fn must still check ctx itself to react to cancellation.
func (r *Registry) Barrier(ctx context.Context, fn func(ctx context.Context, n int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for n := 0; n < r.n; n++ {
		n := n
		g.Go(func() error {
			return fn(gctx, n)
		})
	}
	return g.Wait()
}
