// SPDX-License-Identifier: MIT
// Package: bfs500/locale
//
// distributed_array.go — DistributedArray[T]: a dense 1-D array of length L
// partitioned into contiguous blocks across a Registry's locales, block
// sizes differing by at most one. ownerOf/localRange are pure arithmetic
// (block.go); at/set take the owning locale's lock and may be called from
// any locale's goroutine, simulating the remote-put/get of a real PGAS
// runtime without an actual network.

package locale

import "fmt"

// DistributedArray is a value of element type T with a fixed length L,
// block-distributed across the locales of a Registry. The zero value is not
// usable; construct with NewDistributedArray.
type DistributedArray[T any] struct {
	registry *Registry
	length   int
	blocks   []Block
	local    [][]T
}

// NewDistributedArray allocates a DistributedArray of the given length
// across registry's locales, zero-valued. Length may be 0 or less than
// registry.N(); trailing locales then own an empty block.
func NewDistributedArray[T any](registry *Registry, length int) *DistributedArray[T] {
	if registry == nil {
		panic("locale: NewDistributedArray: nil registry")
	}
	if length < 0 {
		panic(fmt.Sprintf("locale: NewDistributedArray: length must be >= 0, got %d", length))
	}
	blocks := blocksFor(length, registry.N())
	local := make([][]T, registry.N())
	for n, b := range blocks {
		local[n] = make([]T, b.Len())
	}
	return &DistributedArray[T]{
		registry: registry,
		length:   length,
		blocks:   blocks,
		local:    local,
	}
}

// Len returns the array's fixed length L.
func (a *DistributedArray[T]) Len() int { return a.length }

// NumLocales returns the number of locales the array is partitioned across.
func (a *DistributedArray[T]) NumLocales() int { return a.registry.N() }

// Registry returns the registry this array is partitioned against.
func (a *DistributedArray[T]) Registry() *Registry { return a.registry }

// OwnerOf returns the locale id owning index i, and false if i is outside
// [0, Len()) (includes the Len() == 0 case: no index is ever in range).
// Pure arithmetic; no locking, no communication.
func (a *DistributedArray[T]) OwnerOf(i int) (int, bool) {
	return ownerOfIndex(a.blocks, i)
}

// LocalRange returns the index range [Lo, Hi) resident on locale n.
func (a *DistributedArray[T]) LocalRange(n int) Block {
	return a.blocks[n]
}

// LocalSlice returns direct access to locale n's resident block. Callers
// iterating their own locale's block (the common case inside a BFS kernel
// running "on" locale n) may read/write it without going through At/Set,
// provided they hold at least a read lock via Registry.RLock(n) for the
// duration — LocalSlice itself does not lock, matching core.Graph's pattern
// of exposing raw maps to callers that already hold the right mutex.
func (a *DistributedArray[T]) LocalSlice(n int) []T {
	return a.local[n]
}

// At reads element i, taking i's owning locale's read lock for the
// duration — this is the "may induce remote communication" path from any
// locale's goroutine. Returns ErrInvariant if i is out of range.
func (a *DistributedArray[T]) At(i int) (T, error) {
	var zero T
	n, ok := a.OwnerOf(i)
	if !ok {
		return zero, fmt.Errorf("locale: At(%d): index out of [0,%d): %w", i, a.length, ErrInvariant)
	}
	a.registry.RLock(n)
	v := a.local[n][i-a.blocks[n].Lo]
	a.registry.RUnlock(n)
	return v, nil
}

// Set writes element i, taking i's owning locale's write lock for the
// duration. Returns ErrInvariant if i is out of range.
func (a *DistributedArray[T]) Set(i int, v T) error {
	n, ok := a.OwnerOf(i)
	if !ok {
		return fmt.Errorf("locale: Set(%d): index out of [0,%d): %w", i, a.length, ErrInvariant)
	}
	a.registry.Lock(n)
	a.local[n][i-a.blocks[n].Lo] = v
	a.registry.Unlock(n)
	return nil
}

// Fill sets every element of a to v, locale by locale under that locale's
// write lock.
func (a *DistributedArray[T]) Fill(v T) {
	for n := range a.blocks {
		a.registry.Lock(n)
		slice := a.local[n]
		for i := range slice {
			slice[i] = v
		}
		a.registry.Unlock(n)
	}
}

// Assign copies src into a element-wise. src and a must be conformant: same
// length and same locale count, otherwise ErrInvariant is returned and a is
// left unmodified.
func (a *DistributedArray[T]) Assign(src *DistributedArray[T]) error {
	if a.length != src.length || len(a.blocks) != len(src.blocks) {
		return fmt.Errorf("locale: Assign: a has length %d over %d locales, src has length %d over %d locales: %w",
			a.length, len(a.blocks), src.length, len(src.blocks), ErrInvariant)
	}
	sameRegistry := a.registry == src.registry
	for n := range a.blocks {
		a.registry.Lock(n)
		// A shared registry's per-locale mutex is already held exclusively
		// above; re-acquiring its read lock from the same goroutine would
		// deadlock sync.RWMutex, which is not reentrant.
		if !sameRegistry {
			src.registry.RLock(n)
		}
		copy(a.local[n], src.local[n])
		if !sameRegistry {
			src.registry.RUnlock(n)
		}
		a.registry.Unlock(n)
	}
	return nil
}
