// SPDX-License-Identifier: MIT
// Package: bfs500/bfskernel
//
// kernel_vertex.go — the four vertex-centric BFS kernels named in spec
// §4.5: level and parent, each aggregated and non-aggregated. The
// aggregated forms construct a fresh aggregator.Aggregator generation per
// iteration and Close it before toggling curIdx — Close blocks until every
// locale's receiver has applied its flushed batches, which is exactly the
// "all aggregator flushes for iteration k complete before any node begins
// iteration k+1" barrier the concurrency model requires.

package bfskernel

import (
	"context"
	"fmt"

	"golang.org/x/xerrors"

	"github.com/dgraphlabs/bfs500/aggregator"
	"github.com/dgraphlabs/bfs500/csr"
	"github.com/dgraphlabs/bfs500/locale"
)

// BFSLevelVertexAgg runs the aggregated, vertex-centric level BFS from
// source (an internal vertex id) over vc, returning a distributed array of
// length V: level[u] is u's distance from source, or -1 if unreached.
func BFSLevelVertexAgg(ctx context.Context, vc *csr.VertexCentricGraph, source int, opts ...Option) (*locale.DistributedArray[int64], error) {
	v := vc.NumVertices()
	if v == 0 {
		return locale.NewDistributedArray[int64](vc.Registry(), 0), nil
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("bfskernel: BFSLevelVertexAgg: source %d out of [0,%d): %w", source, v, ErrSourceOutOfRange)
	}

	cfg := resolveConfig(opts...)
	registry := vc.Registry()
	worker := locale.NewWorker(cfg.Workers)
	bc := newBFSContext(registry, v)
	bc.seedFrontier(source)

	currentLevel := int64(0)
	for bc.totalFrontierSize(bc.curIdx) > 0 {
		agg, err := aggregator.New[int](ctx, registry, aggregator.NewLevelSink(bc.levelConsumers), cfg.AggregatorOptions...)
		if err != nil {
			return nil, xerrors.Errorf("bfskernel: BFSLevelVertexAgg: level %d: %w", currentLevel, err)
		}

		err = registry.Barrier(ctx, func(ctx context.Context, n int) error {
			taskAgg, ferr := agg.Fork()
			if ferr != nil {
				return ferr
			}
			frontier := bc.takeLocalFrontier(n)
			werr := worker.ForEach(ctx, len(frontier), func(ctx context.Context, i int) error {
				u := frontier[i]
				if bc.TestAndSetVisited(u) {
					return nil
				}
				bc.setLevel(u, currentLevel)
				neighbors, nerr := vc.Neighbors(u)
				if nerr != nil {
					return nerr
				}
				for _, nb := range neighbors {
					if perr := taskAgg.Put(bc.ownerOf(int(nb)), int(nb)); perr != nil {
						return perr
					}
				}
				return nil
			})
			taskAgg.Flush()
			return werr
		})
		if err != nil {
			_ = agg.Close()
			return nil, xerrors.Errorf("bfskernel: BFSLevelVertexAgg: level %d: %w", currentLevel, err)
		}
		if err := agg.Close(); err != nil {
			return nil, xerrors.Errorf("bfskernel: BFSLevelVertexAgg: level %d: %w", currentLevel, err)
		}
		currentLevel++
		bc.toggle()
	}
	return bc.level, nil
}

// BFSParentVertexAgg runs the aggregated, vertex-centric parent BFS from
// source over vc, returning a distributed array of length V: parent[u] is
// an in-frontier predecessor of u at distance level(u)-1, source for the
// source itself, or -1 if unreached.
func BFSParentVertexAgg(ctx context.Context, vc *csr.VertexCentricGraph, source int, opts ...Option) (*locale.DistributedArray[int64], error) {
	v := vc.NumVertices()
	if v == 0 {
		return locale.NewDistributedArray[int64](vc.Registry(), 0), nil
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("bfskernel: BFSParentVertexAgg: source %d out of [0,%d): %w", source, v, ErrSourceOutOfRange)
	}

	cfg := resolveConfig(opts...)
	registry := vc.Registry()
	worker := locale.NewWorker(cfg.Workers)
	bc := newBFSContext(registry, v)
	bc.TestAndSetVisited(source)
	bc.setParent(source, source)
	bc.seedFrontier(source)

	for bc.totalFrontierSize(bc.curIdx) > 0 {
		agg, err := aggregator.New[aggregator.ParentMsg](ctx, registry, aggregator.NewParentSink(bc.parentConsumers), cfg.AggregatorOptions...)
		if err != nil {
			return nil, xerrors.Errorf("bfskernel: BFSParentVertexAgg: %w", err)
		}

		err = registry.Barrier(ctx, func(ctx context.Context, n int) error {
			taskAgg, ferr := agg.Fork()
			if ferr != nil {
				return ferr
			}
			frontier := bc.takeLocalFrontier(n)
			werr := worker.ForEach(ctx, len(frontier), func(ctx context.Context, i int) error {
				u := frontier[i]
				neighbors, nerr := vc.Neighbors(u)
				if nerr != nil {
					return nerr
				}
				for _, nb := range neighbors {
					v2 := int(nb)
					msg := aggregator.ParentMsg{Child: v2, Parent: u}
					if perr := taskAgg.Put(bc.ownerOf(v2), msg); perr != nil {
						return perr
					}
				}
				return nil
			})
			taskAgg.Flush()
			return werr
		})
		if err != nil {
			_ = agg.Close()
			return nil, xerrors.Errorf("bfskernel: BFSParentVertexAgg: %w", err)
		}
		if err := agg.Close(); err != nil {
			return nil, xerrors.Errorf("bfskernel: BFSParentVertexAgg: %w", err)
		}
		bc.toggle()
	}
	return bc.parent, nil
}

// BFSLevelVertex is the non-aggregated reference level BFS: identical
// algorithm shape to BFSLevelVertexAgg, but neighbor pushes are direct
// locked writes into the destination locale's frontier rather than routed
// through an Aggregator. This and BFSParentVertex are ground truth.
func BFSLevelVertex(ctx context.Context, vc *csr.VertexCentricGraph, source int, opts ...Option) (*locale.DistributedArray[int64], error) {
	v := vc.NumVertices()
	if v == 0 {
		return locale.NewDistributedArray[int64](vc.Registry(), 0), nil
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("bfskernel: BFSLevelVertex: source %d out of [0,%d): %w", source, v, ErrSourceOutOfRange)
	}

	cfg := resolveConfig(opts...)
	registry := vc.Registry()
	worker := locale.NewWorker(cfg.Workers)
	bc := newBFSContext(registry, v)
	bc.seedFrontier(source)

	currentLevel := int64(0)
	for bc.totalFrontierSize(bc.curIdx) > 0 {
		err := registry.Barrier(ctx, func(ctx context.Context, n int) error {
			frontier := bc.takeLocalFrontier(n)
			return worker.ForEach(ctx, len(frontier), func(ctx context.Context, i int) error {
				u := frontier[i]
				if bc.TestAndSetVisited(u) {
					return nil
				}
				bc.setLevel(u, currentLevel)
				neighbors, nerr := vc.Neighbors(u)
				if nerr != nil {
					return nerr
				}
				for _, nb := range neighbors {
					bc.pushNext(int(nb))
				}
				return nil
			})
		})
		if err != nil {
			return nil, xerrors.Errorf("bfskernel: BFSLevelVertex: level %d: %w", currentLevel, err)
		}
		currentLevel++
		bc.toggle()
	}
	return bc.level, nil
}

// BFSParentVertex is the non-aggregated reference parent BFS.
func BFSParentVertex(ctx context.Context, vc *csr.VertexCentricGraph, source int, opts ...Option) (*locale.DistributedArray[int64], error) {
	v := vc.NumVertices()
	if v == 0 {
		return locale.NewDistributedArray[int64](vc.Registry(), 0), nil
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("bfskernel: BFSParentVertex: source %d out of [0,%d): %w", source, v, ErrSourceOutOfRange)
	}

	cfg := resolveConfig(opts...)
	registry := vc.Registry()
	worker := locale.NewWorker(cfg.Workers)
	bc := newBFSContext(registry, v)
	bc.TestAndSetVisited(source)
	bc.setParent(source, source)
	bc.seedFrontier(source)

	for bc.totalFrontierSize(bc.curIdx) > 0 {
		err := registry.Barrier(ctx, func(ctx context.Context, n int) error {
			frontier := bc.takeLocalFrontier(n)
			return worker.ForEach(ctx, len(frontier), func(ctx context.Context, i int) error {
				u := frontier[i]
				neighbors, nerr := vc.Neighbors(u)
				if nerr != nil {
					return nerr
				}
				for _, nb := range neighbors {
					v2 := int(nb)
					if !bc.TestAndSetVisited(v2) {
						bc.setParent(v2, u)
						bc.pushNext(v2)
					}
				}
				return nil
			})
		})
		if err != nil {
			return nil, xerrors.Errorf("bfskernel: BFSParentVertex: %w", err)
		}
		bc.toggle()
	}
	return bc.parent, nil
}
