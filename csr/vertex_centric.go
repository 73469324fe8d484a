// SPDX-License-Identifier: MIT
// Package: bfs500/csr
//
// vertex_centric.go — VertexCentricGraph: an adjacency-list view,
// block-distributed by vertex, so a vertex's entire neighbor list is local
// to its owner locale. Derived from an EdgeCentricGraph by read-locking the
// source's locales and assembling a fresh result; holds its own copy of
// vertexMapper and drops any reference to the EdgeCentricGraph once built.

package csr

import (
	"fmt"
	"sort"

	"github.com/dgraphlabs/bfs500/locale"
)

// VertexCentricGraph is the adjacency view produced by DeriveVertexCentric.
type VertexCentricGraph struct {
	registry     *locale.Registry
	adjacency    *locale.DistributedArray[[]int64]
	vertexMapper []int64
}

// DeriveVertexCentric builds a VertexCentricGraph from an EdgeCentricGraph:
// read-locks every locale of ec's Src/Dst arrays, groups arcs by internal
// source vertex (the CSR arrays are already primarily sorted by source, so
// no additional pass over the arc set is needed beyond the defensive
// per-neighbor-list sort below), and writes each vertex's neighbor list
// into the locale that owns it under the vertex-block distribution. ec is
// never mutated and is not referenced by the result afterward.
func DeriveVertexCentric(ec *EdgeCentricGraph) (*VertexCentricGraph, error) {
	reg := ec.Registry()
	v := ec.NumVertices()
	e := ec.NumEdges()

	srcVals := make([]int64, e)
	dstVals := make([]int64, e)
	for n := 0; n < reg.N(); n++ {
		reg.RLock(n)
		srcBlock := ec.Src.LocalRange(n)
		copy(srcVals[srcBlock.Lo:srcBlock.Hi], ec.Src.LocalSlice(n))
		dstBlock := ec.Dst.LocalRange(n)
		copy(dstVals[dstBlock.Lo:dstBlock.Hi], ec.Dst.LocalSlice(n))
		reg.RUnlock(n)
	}

	adjacency := make([][]int64, v)
	for i := 0; i < e; i++ {
		u := srcVals[i]
		if u < 0 || int(u) >= v {
			return nil, fmt.Errorf("csr: DeriveVertexCentric: arc %d has source %d: %w", i, u, ErrVertexOutOfRange)
		}
		adjacency[u] = append(adjacency[u], dstVals[i])
	}
	for u := range adjacency {
		sort.Slice(adjacency[u], func(i, j int) bool { return adjacency[u][i] < adjacency[u][j] })
	}

	arr := locale.NewDistributedArray[[]int64](reg, v)
	for n := 0; n < reg.N(); n++ {
		block := arr.LocalRange(n)
		reg.Lock(n)
		local := arr.LocalSlice(n)
		for i := block.Lo; i < block.Hi; i++ {
			local[i-block.Lo] = adjacency[i]
		}
		reg.Unlock(n)
	}

	mapperCopy := append([]int64(nil), ec.VertexMapper()...)
	return &VertexCentricGraph{registry: reg, adjacency: arr, vertexMapper: mapperCopy}, nil
}

// Registry returns the registry this graph's adjacency array is
// partitioned over.
func (g *VertexCentricGraph) Registry() *locale.Registry { return g.registry }

// NumVertices returns V.
func (g *VertexCentricGraph) NumVertices() int { return g.adjacency.Len() }

// ExternalID returns the external label of internal vertex u.
func (g *VertexCentricGraph) ExternalID(u int) int64 { return g.vertexMapper[u] }

// InternalID returns the internal id for external label ext, and false if
// ext is not a vertex of this graph.
func (g *VertexCentricGraph) InternalID(ext int64) (int, bool) {
	i := sort.Search(len(g.vertexMapper), func(i int) bool { return g.vertexMapper[i] >= ext })
	if i < len(g.vertexMapper) && g.vertexMapper[i] == ext {
		return i, true
	}
	return 0, false
}

// OwnerOf returns the single locale owning u's adjacency — a pure
// arithmetic computation from the vertex-block distribution.
func (g *VertexCentricGraph) OwnerOf(u int) (int, bool) {
	return g.adjacency.OwnerOf(u)
}

// Neighbors returns a reference to u's local neighbor list, held on u's
// owner locale. The lookup takes that locale's read lock itself (via At);
// the returned slice shares its backing array with the graph, which is not
// written after construction, since graphs are build-once, read-many.
func (g *VertexCentricGraph) Neighbors(u int) ([]int64, error) {
	if u < 0 || u >= g.NumVertices() {
		return nil, fmt.Errorf("csr: vertex %d: %w", u, ErrVertexOutOfRange)
	}
	return g.adjacency.At(u)
}
