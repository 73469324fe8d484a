// Package graphbuilder implements the deterministic seven-stage pipeline
// that turns a raw, arbitrary-signed-integer (src, dst) edge list into a
// compact, vertex-renumbered csr.EdgeCentricGraph: Symmetrize, Sort (a
// distributed radix sort), RemoveSelfLoops, Dedupe, Renumber, BuildSeg, and
// RecordEdgeRanges.
//
// Build is modeled directly on the teacher's builder.BuildGraph
// orchestrator: a functional-options-resolved Config threads a *buildState
// through an ordered list of unexported stage functions, each stage's
// error wrapped with its stage name so a ConstructionError names exactly
// where the pipeline failed.
package graphbuilder
