// SPDX-License-Identifier: MIT
// Package: bfs500/graphbuilder
//
// build.go — Build: the seven-stage orchestrator. A *buildState is
// threaded through an ordered list of stage functions exactly the way the
// teacher's builder.BuildGraph threads a *builderConfig through a
// Constructor; each stage's error is wrapped with golang.org/x/xerrors.Errorf
// so a ConstructionError carries both the failing stage's name and a frame
// trace.

package graphbuilder

import (
	"context"
	"sort"

	"golang.org/x/xerrors"

	"github.com/dgraphlabs/bfs500/csr"
	"github.com/dgraphlabs/bfs500/engcfg"
	"github.com/dgraphlabs/bfs500/locale"
)

// buildState carries the pipeline's working arrays from stage to stage.
// Intermediate stages operate on plain slices rather than
// locale.DistributedArray directly — each stage is "a functional
// transformation", easiest to express and test as an ordinary Go function
// over a slice — while the entry and exit points of Build are the
// distributed arrays named by the spec, and BuildSeg's prefix sum is
// performed via locale.Scan over a genuine DistributedArray, not a local
// loop, so the registry's distributed machinery is actually exercised.
type buildState struct {
	registry *locale.Registry
	cfg      Config
	workers  *locale.Worker

	src []int64
	dst []int64

	vertexMapper []int64
}

// Build runs the seven-stage pipeline (Symmetrize, Sort, RemoveSelfLoops,
// Dedupe, Renumber, BuildSeg, RecordEdgeRanges) over src and dst, two
// equal-length distributed arrays of arbitrary signed vertex labels, and
// returns the resulting csr.EdgeCentricGraph distributed over registry.
func Build(ctx context.Context, registry *locale.Registry, src, dst *locale.DistributedArray[int64], opts ...Option) (*csr.EdgeCentricGraph, error) {
	if src.Len() != dst.Len() {
		return nil, xerrors.Errorf("graphbuilder: Build: src has length %d, dst has length %d: %w", src.Len(), dst.Len(), ErrLengthMismatch)
	}

	cfg := resolveConfig(opts...)
	workers := cfg.Workers
	if workers < 1 {
		workers = engcfg.Default().Workers
	}

	state := &buildState{
		registry: registry,
		cfg:      cfg,
		workers:  locale.NewWorker(workers),
		src:      gatherInt64(src),
		dst:      gatherInt64(dst),
	}

	stages := []struct {
		name string
		fn   func(ctx context.Context, s *buildState) error
	}{
		{"Symmetrize", stageSymmetrize},
		{"Sort", stageSort},
		{"RemoveSelfLoops", stageRemoveSelfLoops},
		{"Dedupe", stageDedupe},
		{"Renumber", stageRenumber},
	}
	for _, stage := range stages {
		if err := stage.fn(ctx, state); err != nil {
			return nil, xerrors.Errorf("graphbuilder: Build: stage %s: %w", stage.name, err)
		}
	}

	seg, err := stageBuildSeg(state)
	if err != nil {
		return nil, xerrors.Errorf("graphbuilder: Build: stage BuildSeg: %w", err)
	}

	srcDA := scatterInt64(registry, state.src)
	dstDA := scatterInt64(registry, state.dst)
	segDA := scatterInt64(registry, seg)

	edgeRanges := recordEdgeRanges(registry, srcDA)

	return csr.NewEdgeCentricGraph(registry, srcDA, dstDA, segDA, state.vertexMapper, edgeRanges), nil
}

// gatherInt64 copies every element of a distributed array into one plain
// slice, locale by locale under that locale's read lock.
func gatherInt64(arr *locale.DistributedArray[int64]) []int64 {
	reg := arr.Registry()
	out := make([]int64, arr.Len())
	for n := 0; n < reg.N(); n++ {
		reg.RLock(n)
		block := arr.LocalRange(n)
		copy(out[block.Lo:block.Hi], arr.LocalSlice(n))
		reg.RUnlock(n)
	}
	return out
}

// scatterInt64 distributes a plain slice across registry's locales,
// block-partitioned by index, into a fresh DistributedArray.
func scatterInt64(registry *locale.Registry, data []int64) *locale.DistributedArray[int64] {
	arr := locale.NewDistributedArray[int64](registry, len(data))
	for n := 0; n < registry.N(); n++ {
		block := arr.LocalRange(n)
		registry.Lock(n)
		copy(arr.LocalSlice(n), data[block.Lo:block.Hi])
		registry.Unlock(n)
	}
	return arr
}

// stageSymmetrize produces src' = src ++ dst, dst' = dst ++ src.
func stageSymmetrize(_ context.Context, s *buildState) error {
	m := len(s.src)
	newSrc := make([]int64, 2*m)
	newDst := make([]int64, 2*m)
	copy(newSrc[:m], s.src)
	copy(newSrc[m:], s.dst)
	copy(newDst[:m], s.dst)
	copy(newDst[m:], s.src)
	s.src, s.dst = newSrc, newDst
	return nil
}

// stageSort sorts (src', dst') lexicographically via a radix sort over the
// gathered local slices, primary key src', secondary key dst'.
func stageSort(_ context.Context, s *buildState) error {
	radixSortPairs(s.src, s.dst, s.cfg.DigitWidth)
	return nil
}

// stageRemoveSelfLoops drops indices where src'[i] == dst'[i], using a
// boolean mask plus a locale.Scan prefix-sum compaction, per spec §4.3
// stage 3: "iv = prefix-sum(truth); out[iv[i]-1] = in[i] where truth[i]".
func stageRemoveSelfLoops(ctx context.Context, s *buildState) error {
	mask, err := s.computeMaskParallel(ctx, func(i int) bool { return s.src[i] != s.dst[i] })
	if err != nil {
		return err
	}
	s.src, s.dst = compactByMask(s.registry, s.src, s.dst, mask)
	return nil
}

// stageDedupe retains the first of each run of equal (src', dst') tuples
// in the sorted sequence, via the same mask-plus-scan compaction.
func stageDedupe(ctx context.Context, s *buildState) error {
	mask, err := s.computeMaskParallel(ctx, func(i int) bool {
		return i == 0 || s.src[i] != s.src[i-1] || s.dst[i] != s.dst[i-1]
	})
	if err != nil {
		return err
	}
	s.src, s.dst = compactByMask(s.registry, s.src, s.dst, mask)
	return nil
}

// computeMaskParallel evaluates truth(i) for every index of s.src, fanned
// out across s.workers — the inner parallel tasking runtime over CPU
// cores named in spec §5 — and returns the resulting 0/1 mask.
func (s *buildState) computeMaskParallel(ctx context.Context, truth func(i int) bool) ([]int64, error) {
	n := len(s.src)
	mask := make([]int64, n)
	err := s.workers.ForEach(ctx, n, func(_ context.Context, i int) error {
		if truth(i) {
			mask[i] = 1
		}
		return nil
	})
	return mask, err
}

// compactByMask applies the prefix-sum compaction in spec §4.3 stage 3 to
// parallel arrays src/dst, keeping only indices where mask[i] == 1.
func compactByMask(registry *locale.Registry, src, dst, mask []int64) ([]int64, []int64) {
	maskDA := scatterInt64(registry, mask)
	prefixDA := locale.Scan(maskDA)
	prefix := gatherInt64(prefixDA)

	n := len(mask)
	total := 0
	if n > 0 {
		total = int(prefix[n-1])
	}
	newSrc := make([]int64, total)
	newDst := make([]int64, total)
	for i := 0; i < n; i++ {
		if mask[i] == 1 {
			pos := int(prefix[i]) - 1
			newSrc[pos] = src[i]
			newDst[pos] = dst[i]
		}
	}
	return newSrc, newDst
}

// stageRenumber computes the sorted unique vertexMapper over the deduped
// src'/dst' values and substitutes each entry with its dense internal id.
func stageRenumber(_ context.Context, s *buildState) error {
	seen := make(map[int64]struct{}, 2*len(s.src))
	for _, v := range s.src {
		seen[v] = struct{}{}
	}
	for _, v := range s.dst {
		seen[v] = struct{}{}
	}
	mapper := make([]int64, 0, len(seen))
	for v := range seen {
		mapper = append(mapper, v)
	}
	sort.Slice(mapper, func(i, j int) bool { return mapper[i] < mapper[j] })
	s.vertexMapper = mapper

	internal := func(ext int64) int64 {
		i := sort.Search(len(mapper), func(i int) bool { return mapper[i] >= ext })
		return int64(i)
	}
	for i := range s.src {
		s.src[i] = internal(s.src[i])
	}
	for i := range s.dst {
		s.dst[i] = internal(s.dst[i])
	}
	return nil
}

// stageBuildSeg computes seg[0..V] from the renumbered, sorted src array:
// seg[0] = 0, seg[u+1] = count of arcs with source u, accumulated with
// locale.Scan — genuinely exercising the distributed prefix-sum primitive
// rather than a local running total.
func stageBuildSeg(s *buildState) ([]int64, error) {
	v := len(s.vertexMapper)
	counts := make([]int64, v)
	for _, u := range s.src {
		counts[u]++
	}
	countsDA := scatterInt64(s.registry, counts)
	prefixDA := locale.Scan(countsDA)
	prefix := gatherInt64(prefixDA)

	seg := make([]int64, v+1)
	seg[0] = 0
	copy(seg[1:], prefix)
	return seg, nil
}

// recordEdgeRanges replicates, for each locale, the triple (src[lo], n,
// src[hi]) describing its local edge block's source-value range, or
// (-1, n, -1) if that locale's block is empty — spec §4.3 stage 7.
func recordEdgeRanges(registry *locale.Registry, srcDA *locale.DistributedArray[int64]) []csr.EdgeRange {
	ranges := make([]csr.EdgeRange, registry.N())
	for n := 0; n < registry.N(); n++ {
		block := srcDA.LocalRange(n)
		if block.Empty() {
			ranges[n] = csr.EdgeRange{Lo: -1, Locale: n, Hi: -1}
			continue
		}
		lo, _ := srcDA.At(block.Lo)
		hi, _ := srcDA.At(block.Hi - 1)
		ranges[n] = csr.EdgeRange{Lo: lo, Locale: n, Hi: hi}
	}
	return ranges
}
