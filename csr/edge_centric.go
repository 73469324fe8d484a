// SPDX-License-Identifier: MIT
// Package: bfs500/csr
//
// edge_centric.go — EdgeCentricGraph: the CSR view. src/dst/seg are all
// block-distributed locale.DistributedArray[int64] by edge index; seg has
// length V+1; edgeRangesPerLocale is a small replicated summary (one entry
// per locale) letting any locale determine, given an internal vertex id,
// which locale(s) hold any portion of its neighbor list, without a global
// broadcast per query.

package csr

import (
	"fmt"
	"sort"

	"github.com/dgraphlabs/bfs500/locale"
)

// EdgeRange summarizes one locale's local edge block: the internal source
// vertex ids of its first and last arc, replicated to every locale. Lo/Hi
// are both -1 if the locale's local block is empty.
type EdgeRange struct {
	Lo     int64
	Locale int
	Hi     int64
}

// EdgeCentricGraph is the CSR view produced by graphbuilder.Build.
type EdgeCentricGraph struct {
	registry *locale.Registry

	Src *locale.DistributedArray[int64]
	Dst *locale.DistributedArray[int64]
	Seg *locale.DistributedArray[int64]

	vertexMapper []int64
	edgeRanges   []EdgeRange
}

// NewEdgeCentricGraph assembles a CSR view from already-built distributed
// arrays. vertexMapper must be sorted strictly increasing external ids,
// length V; seg must have length V+1. Construction does not validate the
// CSR invariants (src non-decreasing, seg[V]==E, etc.) — graphbuilder's
// pipeline is responsible for establishing them before calling this.
func NewEdgeCentricGraph(registry *locale.Registry, src, dst, seg *locale.DistributedArray[int64], vertexMapper []int64, edgeRanges []EdgeRange) *EdgeCentricGraph {
	return &EdgeCentricGraph{
		registry:     registry,
		Src:          src,
		Dst:          dst,
		Seg:          seg,
		vertexMapper: vertexMapper,
		edgeRanges:   edgeRanges,
	}
}

// Registry returns the registry this graph's arrays are partitioned over.
func (g *EdgeCentricGraph) Registry() *locale.Registry { return g.registry }

// NumVertices returns V, the number of distinct vertices.
func (g *EdgeCentricGraph) NumVertices() int { return len(g.vertexMapper) }

// NumEdges returns E, the number of directed arcs (twice the undirected
// edge count, since the arc set is symmetrized).
func (g *EdgeCentricGraph) NumEdges() int { return g.Src.Len() }

// ExternalID returns the external label of internal vertex u.
func (g *EdgeCentricGraph) ExternalID(u int) int64 { return g.vertexMapper[u] }

// InternalID returns the internal id for external label ext via binary
// search on vertexMapper, and false if ext is not a vertex of this graph.
func (g *EdgeCentricGraph) InternalID(ext int64) (int, bool) {
	i := sort.Search(len(g.vertexMapper), func(i int) bool { return g.vertexMapper[i] >= ext })
	if i < len(g.vertexMapper) && g.vertexMapper[i] == ext {
		return i, true
	}
	return 0, false
}

// segBounds returns [lo, hi) into Src/Dst for internal vertex u's neighbor
// list, reading Seg[u] and Seg[u+1].
func (g *EdgeCentricGraph) segBounds(u int) (int, int, error) {
	if u < 0 || u >= g.NumVertices() {
		return 0, 0, fmt.Errorf("csr: vertex %d: %w", u, ErrVertexOutOfRange)
	}
	lo, err := g.Seg.At(u)
	if err != nil {
		return 0, 0, err
	}
	hi, err := g.Seg.At(u + 1)
	if err != nil {
		return 0, 0, err
	}
	return int(lo), int(hi), nil
}

// Neighbors returns the internal ids of u's out-neighbors, dst[seg[u]..seg[u+1]),
// read via Dst.At one index at a time (possibly spanning several locales).
func (g *EdgeCentricGraph) Neighbors(u int) ([]int64, error) {
	lo, hi, err := g.segBounds(u)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, hi-lo)
	for i := lo; i < hi; i++ {
		v, err := g.Dst.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EnsureLocal returns the subslice of u's neighbor list resident on locale
// n, clipping [seg[u], seg[u+1]) to n's local index range. Useful for a
// locale iterating only the arcs whose source-index block it already
// holds, without touching any other locale.
func (g *EdgeCentricGraph) EnsureLocal(u int, n int) ([]int64, error) {
	lo, hi, err := g.segBounds(u)
	if err != nil {
		return nil, err
	}
	block := g.Dst.LocalRange(n)
	clippedLo, clippedHi := lo, hi
	if clippedLo < block.Lo {
		clippedLo = block.Lo
	}
	if clippedHi > block.Hi {
		clippedHi = block.Hi
	}
	if clippedLo >= clippedHi {
		return nil, nil
	}
	local := g.Dst.LocalSlice(n)
	out := make([]int64, clippedHi-clippedLo)
	copy(out, local[clippedLo-block.Lo:clippedHi-block.Lo])
	return out, nil
}

// FindLocs returns every locale id whose local edge block contains any
// portion of internal vertex u's neighbor list, determined by scanning the
// replicated edgeRangesPerLocale summary rather than querying every locale.
// u may span multiple consecutive locales; all are returned.
func (g *EdgeCentricGraph) FindLocs(u int) []int {
	var locs []int
	uv := int64(u)
	for _, r := range g.edgeRanges {
		if r.Lo == -1 && r.Hi == -1 {
			continue
		}
		if uv >= r.Lo && uv <= r.Hi {
			locs = append(locs, r.Locale)
		}
	}
	return locs
}

// EdgeRanges returns the replicated per-locale edge-range summary.
func (g *EdgeCentricGraph) EdgeRanges() []EdgeRange { return g.edgeRanges }

// VertexMapper returns the sorted external-id sequence backing
// InternalID/ExternalID.
func (g *EdgeCentricGraph) VertexMapper() []int64 { return g.vertexMapper }
