// SPDX-License-Identifier: MIT
// Package: bfs500/mmio
//
// Package mmio implements the one concrete adapter named at the "external
// collaborator" boundary: a Matrix Market coordinate-format reader
// producing the raw (src, dst[, weight]) arrays graphbuilder.Build
// consumes. RMAT generation and CLI/CSV reporting remain genuinely
// external collaborators and are not implemented here.
package mmio
