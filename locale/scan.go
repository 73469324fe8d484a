// SPDX-License-Identifier: MIT
// Package: bfs500/locale
//
// scan.go — Scan computes an inclusive prefix sum over a DistributedArray,
// the "scan(+)" operation required alongside at/set/fill/assign. Used by
// graphbuilder to turn per-vertex arc counts into CSR seg offsets.

package locale

// Number is the set of element types Scan can accumulate over.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Scan returns a freshly allocated DistributedArray of the same length and
// locale count as src, holding the inclusive prefix sum of src's elements in
// index order. Locales are visited in order 0..N-1 so the running total
// carries correctly across a block boundary; within a locale's own block the
// accumulation is sequential (a prefix sum is inherently a left-to-right
// dependency chain, not a parallelizable inner loop).
func Scan[T Number](src *DistributedArray[T]) *DistributedArray[T] {
	dst := NewDistributedArray[T](src.registry, src.length)
	var running T
	for n := range src.blocks {
		// dst is freshly allocated and not yet visible to any other
		// goroutine, so only src's per-locale lock is needed here.
		src.registry.RLock(n)
		in := src.local[n]
		out := dst.local[n]
		for i, v := range in {
			running += v
			out[i] = running
		}
		src.registry.RUnlock(n)
	}
	return dst
}
