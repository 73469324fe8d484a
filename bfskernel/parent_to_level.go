// SPDX-License-Identifier: MIT
// Package: bfs500/bfskernel
//
// parent_to_level.go — ParentToLevel: re-derives a level array from a
// parent array by performing a second BFS seeded at source, discovering
// frontiers in breadth order from the parent relation rather than from
// graph adjacency. Used for P2 correctness checks against the
// ground-truth level kernel; not part of the kernel dispatch itself, so it
// is implemented as a single sequential pass rather than distributed —
// the parent array is already the global result of a prior BFS call, and
// re-deriving level from it is a small bookkeeping step, not a
// performance-sensitive one.

package bfskernel

import (
	"fmt"

	"github.com/dgraphlabs/bfs500/locale"
)

// ParentToLevel derives level[u] for every u from parent, a distributed
// array as returned by BFSParentVertex/BFSParentVertexAgg, by walking the
// parent relation breadth-first from source.
func ParentToLevel(registry *locale.Registry, parent *locale.DistributedArray[int64], source int) (*locale.DistributedArray[int64], error) {
	v := parent.Len()
	if v == 0 {
		return locale.NewDistributedArray[int64](registry, 0), nil
	}
	if source < 0 || source >= v {
		return nil, fmt.Errorf("bfskernel: ParentToLevel: source %d out of [0,%d): %w", source, v, ErrSourceOutOfRange)
	}

	parentVals := make([]int64, v)
	for n := 0; n < registry.N(); n++ {
		registry.RLock(n)
		block := parent.LocalRange(n)
		copy(parentVals[block.Lo:block.Hi], parent.LocalSlice(n))
		registry.RUnlock(n)
	}

	children := make([][]int, v)
	for child := 0; child < v; child++ {
		p := int(parentVals[child])
		if child == source || p < 0 || p == child {
			continue
		}
		children[p] = append(children[p], child)
	}

	level := make([]int64, v)
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, c := range children[u] {
			if level[c] == -1 {
				level[c] = level[u] + 1
				queue = append(queue, c)
			}
		}
	}

	out := locale.NewDistributedArray[int64](registry, v)
	for n := 0; n < registry.N(); n++ {
		block := out.LocalRange(n)
		registry.Lock(n)
		copy(out.LocalSlice(n), level[block.Lo:block.Hi])
		registry.Unlock(n)
	}
	return out, nil
}
