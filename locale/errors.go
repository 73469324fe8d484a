// SPDX-License-Identifier: MIT
// Package: bfs500/locale

package locale

import "errors"

// Sentinel errors for the locale package. Callers MUST branch with
// errors.Is; implementations attach context with %w wrapping rather than
// stringifying parameters into the sentinel itself, per the teacher's
// builder/errors.go discipline.
var (
	// ErrInvariant indicates a block-distribution or registry invariant
	// was violated: an index outside [0, length), a locale id out of range,
	// or a length mismatch between two arrays an operation expects to be
	// conformant. A negative length or a locale count below one panics at
	// construction instead.
	ErrInvariant = errors.New("locale: invariant violated")

	// ErrNoOwner names the case of an index that no locale's block covers
	// (only possible when length is zero or the index is out of range).
	// OwnerOf reports that case with a false second result; no function in
	// this package returns ErrNoOwner.
	ErrNoOwner = errors.New("locale: no locale owns this index")
)
