package graph

import (
	"fmt"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// Graph is a node-oriented view over a square adjacency matrix in CSR form.
// Row u lists u's outgoing edges; an undirected graph stores each edge
// mirrored in both rows. A stored zero is an edge of weight zero, absence
// means no edge. Optional per-node attributes ride along.
//
// The adjacency is shared, not copied: value edits through
// Adjacency().Data() are visible through the Graph immediately.
type Graph struct {
	adj   *sparse.CSR
	attrs []float64
}

// NewGraph wraps a square adjacency matrix.
// Errors: ErrNilAdjacency, ErrNotSquare, ErrAttributeCount.
func NewGraph(adj *sparse.CSR, opts ...Option) (*Graph, error) {
	const op = "graph.NewGraph"
	if adj == nil {
		return nil, graphErrorf(op, ErrNilAdjacency)
	}
	if adj.Rows() != adj.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", op, adj.Rows(), adj.Cols(), ErrNotSquare)
	}

	o := gatherOptions(opts...)
	if o.attrs != nil && len(o.attrs) != adj.Rows() {
		return nil, fmt.Errorf("%s: %d attributes for %d nodes: %w",
			op, len(o.attrs), adj.Rows(), ErrAttributeCount)
	}

	return &Graph{adj: adj, attrs: o.attrs}, nil
}

// Nodes returns the node count.
func (g *Graph) Nodes() int { return g.adj.Rows() }

// Adjacency returns the underlying adjacency matrix, shared with the Graph.
func (g *Graph) Adjacency() *sparse.CSR { return g.adj }

// Attribute returns node u's attribute.
// Errors: ErrNoAttributes, ErrNodeOutOfRange.
func (g *Graph) Attribute(u int) (float64, error) {
	const op = "graph.Graph.Attribute"
	if g.attrs == nil {
		return 0, graphErrorf(op, ErrNoAttributes)
	}
	if u < 0 || u >= g.Nodes() {
		return 0, nodeErrorf(op, u)
	}

	return g.attrs[u], nil
}

// Degree returns the number of stored edges leaving u, duplicates included.
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= g.Nodes() {
		return 0, nodeErrorf("graph.Graph.Degree", u)
	}
	indptr := g.adj.Indptr()

	return indptr[u+1] - indptr[u], nil
}

// Neighbors returns u's neighbor ids and edge weights as live subslices of
// the row segment. Writing through the weight slice updates the adjacency in
// place; the id slice must be treated as read-only.
// Complexity: O(1).
func (g *Graph) Neighbors(u int) ([]int, []float64, error) {
	if u < 0 || u >= g.Nodes() {
		return nil, nil, nodeErrorf("graph.Graph.Neighbors", u)
	}
	indptr := g.adj.Indptr()
	lo, hi := indptr[u], indptr[u+1]

	return g.adj.Indices()[lo:hi], g.adj.Data()[lo:hi], nil
}

// CommonNeighbors returns the nodes adjacent to both u and v. Both row
// segments must be in canonical order (sorted ascending, duplicate-free);
// see sparse.(*CSR).SortIndices. Unsorted rows are a caller error and yield
// unspecified output.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) CommonNeighbors(u, v int) ([]int, error) {
	const op = "graph.Graph.CommonNeighbors"
	if u < 0 || u >= g.Nodes() {
		return nil, nodeErrorf(op, u)
	}
	if v < 0 || v >= g.Nodes() {
		return nil, nodeErrorf(op, v)
	}
	indptr, indices := g.adj.Indptr(), g.adj.Indices()

	return ListIntersection(
		indices[indptr[u]:indptr[u+1]],
		indices[indptr[v]:indptr[v+1]],
	), nil
}
