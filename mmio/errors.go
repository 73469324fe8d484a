// SPDX-License-Identifier: MIT
// Package: bfs500/mmio
//
// errors.go — sentinel errors for mmio, following the teacher's
// builder/errors.go discipline: bare sentinels, %w-wrapped context at the
// call site.

package mmio

import "errors"

// ErrMissingHeader indicates the input ended before a non-comment header
// line ("rows cols entries") was found.
var ErrMissingHeader = errors.New("mmio: missing coordinate header line")

// ErrMalformedHeader indicates the header line did not parse as three
// whitespace-separated non-negative integers.
var ErrMalformedHeader = errors.New("mmio: malformed header line")

// ErrMalformedEntry indicates a body line did not parse as "u v" or
// "u v w".
var ErrMalformedEntry = errors.New("mmio: malformed coordinate entry")

// ErrEntryCountMismatch indicates the number of coordinate entries present
// differs from the header's declared entries count. A header declaring zero
// entries is not checked against the body.
var ErrEntryCountMismatch = errors.New("mmio: entry count does not match header")
