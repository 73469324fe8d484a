// SPDX-License-Identifier: MIT
// Package: bfs500/graphbuilder
//
// radix_sort.go — the distributed radix sort named in spec §4.3 stage 2,
// implemented here as a stable LSD radix sort over a permutation of
// indices (so it can be applied to two parallel arrays, src and dst, at
// once): sort by the secondary key (dst) first, then stably by the primary
// key (src), which yields a sequence ordered primarily by src and
// secondarily by dst — the standard multi-key radix sort construction.
//
// Signed int64 keys are mapped to uint64 by inverting the sign bit
// (key ^ 1<<63) before sorting, exactly the "top bit of the most
// significant digit is inverted so that negative keys sort below
// non-negative keys" rule from the spec: XORing the sign bit into an
// otherwise-unsigned comparison is equivalent to inverting only that bit
// of the most significant digit, since it is the top bit of the whole key.

package graphbuilder

// signedSortKey maps a signed int64 to a uint64 that sorts in the same
// order as the original signed value would under ordinary integer
// comparison.
func signedSortKey(v int64) uint64 {
	return uint64(v) ^ (uint64(1) << 63)
}

// digitsForWidth returns the number of digitWidth-bit passes needed to
// cover a 64-bit key.
func digitsForWidth(digitWidth int) int {
	passes := 64 / digitWidth
	if 64%digitWidth != 0 {
		passes++
	}
	return passes
}

// stableRadixSortPerm returns a permutation of [0, len(keys)) ordering keys
// ascending, computed with a stable LSD radix sort over digitWidth-bit
// digits. perm, if non-nil, is the incoming order to refine (its output is
// a stable re-ordering of perm by keys); if nil, the natural order
// [0,1,2,...] is used as the starting point.
func stableRadixSortPerm(keys []uint64, digitWidth int, perm []int) []int {
	n := len(keys)
	cur := perm
	if cur == nil {
		cur = make([]int, n)
		for i := range cur {
			cur[i] = i
		}
	} else {
		tmp := make([]int, n)
		copy(tmp, cur)
		cur = tmp
	}
	if n == 0 {
		return cur
	}

	next := make([]int, n)
	numBuckets := 1 << uint(digitWidth)
	mask := uint64(numBuckets - 1)
	count := make([]int, numBuckets+1)

	passes := digitsForWidth(digitWidth)
	for pass := 0; pass < passes; pass++ {
		shift := uint(pass * digitWidth)
		for i := range count {
			count[i] = 0
		}
		for _, idx := range cur {
			d := (keys[idx] >> shift) & mask
			count[d+1]++
		}
		for d := 0; d < numBuckets; d++ {
			count[d+1] += count[d]
		}
		for _, idx := range cur {
			d := (keys[idx] >> shift) & mask
			next[count[d]] = idx
			count[d]++
		}
		cur, next = next, cur
	}
	return cur
}

// radixSortPairs sorts the parallel arrays primary and secondary
// lexicographically (primary key first, secondary key second) in place,
// using the stable LSD radix sort above on these local slices. Returns the
// permutation applied, in case a caller needs to carry a third parallel
// array (e.g. an original-index array) through the same reordering.
func radixSortPairs(primary, secondary []int64, digitWidth int) []int {
	n := len(primary)
	secondaryKeys := make([]uint64, n)
	for i, v := range secondary {
		secondaryKeys[i] = signedSortKey(v)
	}
	perm := stableRadixSortPerm(secondaryKeys, digitWidth, nil)

	primaryKeys := make([]uint64, n)
	for i, v := range primary {
		primaryKeys[i] = signedSortKey(v)
	}
	perm = stableRadixSortPerm(primaryKeys, digitWidth, perm)

	sortedPrimary := make([]int64, n)
	sortedSecondary := make([]int64, n)
	for i, idx := range perm {
		sortedPrimary[i] = primary[idx]
		sortedSecondary[i] = secondary[idx]
	}
	copy(primary, sortedPrimary)
	copy(secondary, sortedSecondary)
	return perm
}
