// Package graph layers node-oriented views and algorithms over the sparse
// containers.
//
// What's inside:
//   - Graph: a square adjacency matrix in CSR form plus optional per-node
//     attributes, with live row-segment neighbor access.
//   - Bipartite: a Triangular half-matrix holding one weight per unordered
//     node pair.
//   - MinimumSpanningTree: Kruskal over the stored adjacency entries with an
//     array-backed union-find.
//   - ListIntersection: the two-pointer sorted-set intersection behind
//     common-neighbor queries.
//
// A disconnected adjacency is not an error: MinimumSpanningTree returns a
// minimum spanning forest, one tree per component. Callers that require a
// single spanning tree check len(edges) == g.Nodes()-1 themselves.
//
// Wrappers share their container rather than copying it, so in-place weight
// edits through Adjacency().Data() are visible immediately. After zeroing
// weights, compact with EliminateZeros and rewrap.
package graph
