// SPDX-License-Identifier: MIT
package graphbuilder

import (
	"sort"
	"testing"
)

func TestSignedSortKeyPreservesOrder(t *testing.T) {
	values := []int64{-100, -1, 0, 1, 100, -9223372036854775808, 9223372036854775807}
	sortedValues := append([]int64(nil), values...)
	sort.Slice(sortedValues, func(i, j int) bool { return sortedValues[i] < sortedValues[j] })

	keys := make([]uint64, len(values))
	for i, v := range values {
		keys[i] = signedSortKey(v)
	}
	sortedByKey := append([]int64(nil), values...)
	sort.Slice(sortedByKey, func(i, j int) bool {
		return signedSortKey(sortedByKey[i]) < signedSortKey(sortedByKey[j])
	})

	for i := range sortedValues {
		if sortedValues[i] != sortedByKey[i] {
			t.Fatalf("signedSortKey order mismatch at %d: %v vs %v", i, sortedValues, sortedByKey)
		}
	}
	_ = keys
}

func TestStableRadixSortPermOrdersAscending(t *testing.T) {
	keys := []uint64{5, 1, 4, 1, 5, 9, 2, 6}
	perm := stableRadixSortPerm(keys, 8, nil)
	if len(perm) != len(keys) {
		t.Fatalf("perm length = %d, want %d", len(perm), len(keys))
	}
	for i := 1; i < len(perm); i++ {
		if keys[perm[i-1]] > keys[perm[i]] {
			t.Fatalf("perm not ascending at %d: %v", i, perm)
		}
	}
}

func TestStableRadixSortPermIsStable(t *testing.T) {
	// Two entries share key 1 at indices 1 and 3; a stable sort must keep
	// index 1 before index 3 in the output.
	keys := []uint64{5, 1, 4, 1, 5, 9, 2, 6}
	perm := stableRadixSortPerm(keys, 8, nil)
	pos1, pos3 := -1, -1
	for i, idx := range perm {
		if idx == 1 {
			pos1 = i
		}
		if idx == 3 {
			pos3 = i
		}
	}
	if pos1 == -1 || pos3 == -1 {
		t.Fatalf("perm missing an original index: %v", perm)
	}
	if pos1 > pos3 {
		t.Fatalf("stability violated: index 1 (value at %d) sorted after index 3 (value at %d)", pos1, pos3)
	}
}

func TestStableRadixSortPermEmpty(t *testing.T) {
	perm := stableRadixSortPerm(nil, 8, nil)
	if len(perm) != 0 {
		t.Fatalf("perm = %v, want empty", perm)
	}
}

func TestRadixSortPairsLexicographic(t *testing.T) {
	primary := []int64{2, 1, 1, 2, 0}
	secondary := []int64{9, 5, 1, -3, 100}
	radixSortPairs(primary, secondary, 16)

	type pair struct{ p, s int64 }
	got := make([]pair, len(primary))
	for i := range primary {
		got[i] = pair{primary[i], secondary[i]}
	}
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		if a.p > b.p || (a.p == b.p && a.s > b.s) {
			t.Fatalf("not lexicographically sorted at %d: %v", i, got)
		}
	}
}

func TestRadixSortPairsHandlesNegativeKeys(t *testing.T) {
	primary := []int64{-5, 3, -1, 0, -100}
	secondary := []int64{0, 0, 0, 0, 0}
	radixSortPairs(primary, secondary, 16)
	for i := 1; i < len(primary); i++ {
		if primary[i-1] > primary[i] {
			t.Fatalf("negative keys not sorted ascending: %v", primary)
		}
	}
	if primary[0] != -100 || primary[len(primary)-1] != 3 {
		t.Fatalf("unexpected sorted order: %v", primary)
	}
}

func TestDigitsForWidthCoversSixtyFourBits(t *testing.T) {
	cases := map[int]int{16: 4, 8: 8, 4: 16, 32: 2}
	for width, want := range cases {
		if got := digitsForWidth(width); got != want {
			t.Errorf("digitsForWidth(%d) = %d, want %d", width, got, want)
		}
	}
}
