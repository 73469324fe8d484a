// SPDX-License-Identifier: MIT
// Package: bfs500/bfskernel
//
// reference.go — referenceLevel/referenceParent gather a
// csr.VertexCentricGraph's adjacency into a single local [][]int64 and run a
// plain textbook queue-based BFS directly over it, independent of
// BFSContext, the aggregator pipeline, and locale ownership entirely. This
// is a small, purpose-built oracle rather than an adaptation of any kept
// teacher file: the distributed kernels have their own non-aggregated
// reference forms (BFSLevelVertex/BFSParentVertex) already built on
// BFSContext, so this second oracle is deliberately a structurally
// different walk — single global queue, single local slice, no sharding —
// to catch a bug that happened to survive in both BFSContext-based forms.

package bfskernel

import (
	"github.com/dgraphlabs/bfs500/csr"
)

// gatherAdjacency reads vc's entire adjacency into one local [][]int64,
// one vc.Neighbors lookup per vertex, for this package's sequential oracle.
func gatherAdjacency(vc *csr.VertexCentricGraph) ([][]int64, error) {
	adj := make([][]int64, vc.NumVertices())
	for u := range adj {
		neighbors, err := vc.Neighbors(u)
		if err != nil {
			return nil, err
		}
		adj[u] = neighbors
	}
	return adj, nil
}

// referenceLevel returns level[u] for every internal vertex u: -1 if
// unreached, 0 for source, else one more than the level of whichever
// neighbor first reached it in queue order.
func referenceLevel(vc *csr.VertexCentricGraph, source int) ([]int64, error) {
	adj, err := gatherAdjacency(vc)
	if err != nil {
		return nil, err
	}
	level := make([]int64, len(adj))
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range adj[u] {
			v := int(nb)
			if level[v] == -1 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level, nil
}

// referenceParent returns parent[u] for every internal vertex u: source
// for the source itself, -1 if unreached, else the predecessor that first
// discovered it in queue order.
func referenceParent(vc *csr.VertexCentricGraph, source int) ([]int64, error) {
	adj, err := gatherAdjacency(vc)
	if err != nil {
		return nil, err
	}
	parent := make([]int64, len(adj))
	visited := make([]bool, len(adj))
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = int64(source)
	visited[source] = true
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range adj[u] {
			v := int(nb)
			if !visited[v] {
				visited[v] = true
				parent[v] = int64(u)
				queue = append(queue, v)
			}
		}
	}
	return parent, nil
}
