package bfskernel_test

import (
	"context"
	"testing"

	"github.com/dgraphlabs/bfs500/bfskernel"
	"github.com/dgraphlabs/bfs500/csr"
	"github.com/dgraphlabs/bfs500/graphbuilder"
	"github.com/dgraphlabs/bfs500/locale"
)

func buildGraphs(t *testing.T, src, dst []int64, numLocales int) (*csr.EdgeCentricGraph, *csr.VertexCentricGraph) {
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
	return ec, vc
}

func gatherInt64(registry *locale.Registry, arr *locale.DistributedArray[int64]) []int64 {
	out := make([]int64, arr.Len())
	for n := 0; n < registry.N(); n++ {
		registry.RLock(n)
		block := arr.LocalRange(n)
		copy(out[block.Lo:block.Hi], arr.LocalSlice(n))
		registry.RUnlock(n)
	}
	return out
}

func int64SliceEq(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Scenario B — path: levels [0,1,2,3,4], parents [0,0,1,2,3].
func TestScenarioBPathLevelsAndParents(t *testing.T) {
	_, vc := buildGraphs(t, []int64{0, 1, 2, 3}, []int64{1, 2, 3, 4}, 3)
	source, ok := vc.InternalID(0)
	if !ok {
		t.Fatal("InternalID(0) not found")
	}

	level, err := bfskernel.BFSLevelVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSLevelVertexAgg: %v", err)
	}
	parent, err := bfskernel.BFSParentVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSParentVertexAgg: %v", err)
	}

	wantLevel := make([]int64, 5)
	wantParent := make([]int64, 5)
	for ext := int64(0); ext <= 4; ext++ {
		u, _ := vc.InternalID(ext)
		wantLevel[u] = ext
	}
	for ext, p := range map[int64]int64{0: 0, 1: 0, 2: 1, 3: 2, 4: 3} {
		u, _ := vc.InternalID(ext)
		pu, _ := vc.InternalID(p)
		wantParent[u] = int64(pu)
	}

	if got := gatherInt64(vc.Registry(), level); !int64SliceEq(got, wantLevel) {
		t.Errorf("level = %v, want %v", got, wantLevel)
	}
	if got := gatherInt64(vc.Registry(), parent); !int64SliceEq(got, wantParent) {
		t.Errorf("parent = %v, want %v", got, wantParent)
	}
}

// Scenario C — star: levels [0,1,1,1,1,1], all parents the source.
func TestScenarioCStarLevels(t *testing.T) {
	_, vc := buildGraphs(t, []int64{0, 0, 0, 0, 0}, []int64{1, 2, 3, 4, 5}, 4)
	source, _ := vc.InternalID(0)

	level, err := bfskernel.BFSLevelVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSLevelVertexAgg: %v", err)
	}
	parent, err := bfskernel.BFSParentVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSParentVertexAgg: %v", err)
	}

	levelVals := gatherInt64(vc.Registry(), level)
	parentVals := gatherInt64(vc.Registry(), parent)
	if levelVals[source] != 0 {
		t.Errorf("level[source] = %d, want 0", levelVals[source])
	}
	for leafExt := int64(1); leafExt <= 5; leafExt++ {
		leaf, _ := vc.InternalID(leafExt)
		if levelVals[leaf] != 1 {
			t.Errorf("level[leaf %d] = %d, want 1", leafExt, levelVals[leaf])
		}
		if parentVals[leaf] != int64(source) {
			t.Errorf("parent[leaf %d] = %d, want source %d", leafExt, parentVals[leaf], source)
		}
	}
}

// Scenario D — disconnected: levels [0,1,-1,-1].
func TestScenarioDDisconnectedLevels(t *testing.T) {
	_, vc := buildGraphs(t, []int64{0, 2}, []int64{1, 3}, 2)
	source, _ := vc.InternalID(0)

	level, err := bfskernel.BFSLevelVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSLevelVertexAgg: %v", err)
	}
	levelVals := gatherInt64(vc.Registry(), level)

	one, _ := vc.InternalID(1)
	two, _ := vc.InternalID(2)
	three, _ := vc.InternalID(3)
	if levelVals[source] != 0 || levelVals[one] != 1 {
		t.Errorf("reachable component levels = %v, want source=0 one=1", levelVals)
	}
	if levelVals[two] != -1 || levelVals[three] != -1 {
		t.Errorf("unreachable component levels = %v, want -1,-1", []int64{levelVals[two], levelVals[three]})
	}
}

// Scenario A — self-loop-only source has no reachable neighbors.
func TestScenarioASelfLoopOnlySourceHasNoNeighbors(t *testing.T) {
	src := []int64{0, 1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 8, 9, 9, 10, 10, 10, 9}
	dst := []int64{0, 2, 3, 4, 4, 5, 9, 6, 7, 7, 8, 9, 9, 9, 11, 12, 15, 10}
	ec, vc := buildGraphs(t, src, dst, 4)

	// Per the literal stage-5 rule (vertexMapper from the post-self-loop,
	// deduped arc set), external 0's only edge was its own self-loop, so
	// it does not survive into the graph at all.
	if _, ok := vc.InternalID(0); ok {
		t.Fatalf("external vertex 0 unexpectedly survived RemoveSelfLoops/Renumber")
	}
	_ = ec
}

// P1: BFSLevelVertexAgg and BFSLevelVertex agree on every graph tested.
func TestP1LevelAgreementAggVsNonAgg(t *testing.T) {
	_, vc := buildGraphs(t, []int64{0, 1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 8, 9, 9, 10, 10, 10, 9},
		[]int64{0, 2, 3, 4, 4, 5, 9, 6, 7, 7, 8, 9, 9, 9, 11, 12, 15, 10}, 4)

	for u := 0; u < vc.NumVertices(); u++ {
		agg, err := bfskernel.BFSLevelVertexAgg(context.Background(), vc, u)
		if err != nil {
			t.Fatalf("BFSLevelVertexAgg(%d): %v", u, err)
		}
		ref, err := bfskernel.BFSLevelVertex(context.Background(), vc, u)
		if err != nil {
			t.Fatalf("BFSLevelVertex(%d): %v", u, err)
		}
		got := gatherInt64(vc.Registry(), agg)
		want := gatherInt64(vc.Registry(), ref)
		if !int64SliceEq(got, want) {
			t.Errorf("source %d: aggregated level %v != non-aggregated %v", u, got, want)
		}
	}
}

// P2: parentToLevel(bfsParent(G,s), s) == bfsLevel(G,s) pointwise.
func TestP2ParentToLevelConsistency(t *testing.T) {
	_, vc := buildGraphs(t, []int64{0, 1, 2, 3}, []int64{1, 2, 3, 4}, 3)
	source, _ := vc.InternalID(0)

	level, err := bfskernel.BFSLevelVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSLevelVertexAgg: %v", err)
	}
	parent, err := bfskernel.BFSParentVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSParentVertexAgg: %v", err)
	}
	derived, err := bfskernel.ParentToLevel(vc.Registry(), parent, source)
	if err != nil {
		t.Fatalf("ParentToLevel: %v", err)
	}

	got := gatherInt64(vc.Registry(), derived)
	want := gatherInt64(vc.Registry(), level)
	if !int64SliceEq(got, want) {
		t.Errorf("ParentToLevel(BFSParentVertexAgg) = %v, want %v (BFSLevelVertexAgg)", got, want)
	}
}

// P3: every reached v != s has a parent that is a neighbor of v with
// level[parent[v]] == level[v]-1; parent[s] == s; unreached v has
// parent[v] == -1.
func TestP3ParentWellFormedness(t *testing.T) {
	_, vc := buildGraphs(t, []int64{0, 1, 2, 2, 3, 4, 4, 5, 6, 6, 7, 8, 9, 9, 10, 10, 10, 9},
		[]int64{0, 2, 3, 4, 4, 5, 9, 6, 7, 7, 8, 9, 9, 9, 11, 12, 15, 10}, 3)
	source, _ := vc.InternalID(1)

	level, err := bfskernel.BFSLevelVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSLevelVertexAgg: %v", err)
	}
	parent, err := bfskernel.BFSParentVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSParentVertexAgg: %v", err)
	}
	levelVals := gatherInt64(vc.Registry(), level)
	parentVals := gatherInt64(vc.Registry(), parent)

	if parentVals[source] != int64(source) {
		t.Errorf("parent[source] = %d, want source %d", parentVals[source], source)
	}
	for v := 0; v < vc.NumVertices(); v++ {
		if v == source {
			continue
		}
		if levelVals[v] == -1 {
			if parentVals[v] != -1 {
				t.Errorf("unreached vertex %d: parent = %d, want -1", v, parentVals[v])
			}
			continue
		}
		p := int(parentVals[v])
		neighbors, err := vc.Neighbors(v)
		if err != nil {
			t.Fatalf("Neighbors(%d): %v", v, err)
		}
		found := false
		for _, nb := range neighbors {
			if int(nb) == p {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("vertex %d: parent %d is not a neighbor", v, p)
		}
		if levelVals[p] != levelVals[v]-1 {
			t.Errorf("vertex %d: level[parent]=%d, want level[v]-1=%d", v, levelVals[p], levelVals[v]-1)
		}
	}
}

// BFSLevelEdgeAgg is validated only against BFSLevelVertexAgg, not treated
// as independently authoritative.
func TestBFSLevelEdgeAggAgreesWithVertexCentric(t *testing.T) {
	ec, vc := buildGraphs(t, []int64{0, 1, 2, 3}, []int64{1, 2, 3, 4}, 2)
	source, _ := vc.InternalID(0)

	vertexLevel, err := bfskernel.BFSLevelVertexAgg(context.Background(), vc, source)
	if err != nil {
		t.Fatalf("BFSLevelVertexAgg: %v", err)
	}
	edgeLevel, err := bfskernel.BFSLevelEdgeAgg(context.Background(), ec, source)
	if err != nil {
		t.Fatalf("BFSLevelEdgeAgg: %v", err)
	}

	got := gatherInt64(ec.Registry(), edgeLevel)
	want := gatherInt64(vc.Registry(), vertexLevel)
	if !int64SliceEq(got, want) {
		t.Errorf("BFSLevelEdgeAgg = %v, want BFSLevelVertexAgg = %v", got, want)
	}
}

func TestBFSSourceOutOfRange(t *testing.T) {
	_, vc := buildGraphs(t, []int64{0, 1}, []int64{1, 2}, 2)
	if _, err := bfskernel.BFSLevelVertexAgg(context.Background(), vc, vc.NumVertices()); err == nil {
		t.Error("BFSLevelVertexAgg: want error for out-of-range source")
	}
	if _, err := bfskernel.BFSParentVertexAgg(context.Background(), vc, -1); err == nil {
		t.Error("BFSParentVertexAgg: want error for negative source")
	}
}

func TestEmptyGraphReturnsEmptyArray(t *testing.T) {
	reg := locale.NewRegistry(2, 1)
	src := locale.NewDistributedArray[int64](reg, 0)
	dst := locale.NewDistributedArray[int64](reg, 0)
	ec, err := graphbuilder.Build(context.Background(), reg, src, dst)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	vc, err := csr.DeriveVertexCentric(ec)
	if err != nil {
		t.Fatalf("DeriveVertexCentric: %v", err)
	}
	level, err := bfskernel.BFSLevelVertexAgg(context.Background(), vc, 0)
	if err != nil {
		t.Fatalf("BFSLevelVertexAgg on empty graph: %v", err)
	}
	if level.Len() != 0 {
		t.Errorf("level.Len() = %d, want 0", level.Len())
	}
}
