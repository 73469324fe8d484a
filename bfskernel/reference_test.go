package bfskernel

import (
	"context"
	"testing"

	"github.com/dgraphlabs/bfs500/csr"
	"github.com/dgraphlabs/bfs500/graphbuilder"
	"github.com/dgraphlabs/bfs500/locale"
)

func buildVertexCentric(t *testing.T, src, dst []int64, numLocales int) *csr.VertexCentricGraph {
	t.Helper()
	reg := locale.NewRegistry(numLocales, 2)
	srcDA := locale.NewDistributedArray[int64](reg, len(src))
	dstDA := locale.NewDistributedArray[int64](reg, len(dst))
	for i, v := range src {
		_ = srcDA.Set(i, v)
	}
	for i, v := range dst {
		_ = dstDA.Set(i, v)
	}
	ec, err := graphbuilder.Build(context.Background(), reg, srcDA, dstDA)
	if err != nil {
		t.Fatalf("graphbuilder.Build: %v", err)
	}
	vc, err := csr.DeriveVertexCentric(ec)
	if err != nil {
		t.Fatalf("DeriveVertexCentric: %v", err)
	}
	return vc
}

// TestReferenceLevelAgreesWithAggregatedKernel cross-checks the
// plain-queue referenceLevel oracle against BFSLevelVertexAgg — a third,
// independent ground truth distinct from BFSLevelVertex's own
// BFSContext-based non-aggregated walk.
func TestReferenceLevelAgreesWithAggregatedKernel(t *testing.T) {
	vc := buildVertexCentric(t, []int64{0, 1, 2, 3}, []int64{1, 2, 3, 4}, 3)
	source, _ := vc.InternalID(0)

	want, err := referenceLevel(vc, source)
	if err != nil {
		t.Fatalf("referenceLevel: %v", err)
	}
	levelDA, err := BFSLevelVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSLevelVertexAgg: %v", err)
	}
	got := make([]int64, vc.NumVertices())
	for n := 0; n < vc.Registry().N(); n++ {
		vc.Registry().RLock(n)
		block := levelDA.LocalRange(n)
		copy(got[block.Lo:block.Hi], levelDA.LocalSlice(n))
		vc.Registry().RUnlock(n)
	}
	for u := range want {
		if got[u] != want[u] {
			t.Errorf("vertex %d: level = %d, want %d (reference)", u, got[u], want[u])
		}
	}
}

// TestReferenceParentProducesValidTree checks that referenceParent yields
// a parent for source itself and -1 for every unreached vertex, on a
// disconnected graph.
func TestReferenceParentProducesValidTree(t *testing.T) {
	vc := buildVertexCentric(t, []int64{0, 2}, []int64{1, 3}, 2)
	source, _ := vc.InternalID(0)

	parent, err := referenceParent(vc, source)
	if err != nil {
		t.Fatalf("referenceParent: %v", err)
	}
	if parent[source] != int64(source) {
		t.Errorf("parent[source] = %d, want %d", parent[source], source)
	}
	two, _ := vc.InternalID(2)
	three, _ := vc.InternalID(3)
	if parent[two] != -1 || parent[three] != -1 {
		t.Errorf("disconnected component parents = %v, want -1,-1", []int64{parent[two], parent[three]})
	}
}
