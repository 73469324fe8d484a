// Package csr holds the two complementary graph views GraphBuilder
// produces: EdgeCentricGraph, a CSR layout (src[], dst[], seg[],
// vertexMapper[]) block-distributed by edge index, and VertexCentricGraph,
// an adjacency-list layout block-distributed by vertex, derived from an
// EdgeCentricGraph.
//
// VertexCentricGraph is built the same way the teacher derives one graph
// representation from another — core.UnweightedView and
// core.InducedSubgraph both read-lock the source and assemble a fresh,
// independent result rather than mutating in place — generalized here to
// read-lock every locale of the source EdgeCentricGraph's arrays and
// append into per-owner adjacency slices. Once built, VertexCentricGraph
// holds its own copy of vertexMapper and never references the
// EdgeCentricGraph that produced it again.
package csr
