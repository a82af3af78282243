package graph

import (
	"fmt"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// Bipartite is an all-pairs interaction view over a Triangular half-matrix:
// exactly one weight per unordered node pair, zero diagonal, symmetric
// reads. Optional per-node attributes ride along, as on Graph.
//
// The half-matrix is shared, not copied; in-place weight edits go through
// Pairs().Data() with sparse.(*Triangular).LinearIndex.
type Bipartite struct {
	tri   *sparse.Triangular
	attrs []float64
}

// NewBipartite wraps a Triangular pair matrix.
// Errors: ErrNilAdjacency, ErrAttributeCount.
func NewBipartite(tri *sparse.Triangular, opts ...Option) (*Bipartite, error) {
	const op = "graph.NewBipartite"
	if tri == nil {
		return nil, graphErrorf(op, ErrNilAdjacency)
	}

	o := gatherOptions(opts...)
	if o.attrs != nil && len(o.attrs) != tri.Order() {
		return nil, fmt.Errorf("%s: %d attributes for %d nodes: %w",
			op, len(o.attrs), tri.Order(), ErrAttributeCount)
	}

	return &Bipartite{tri: tri, attrs: o.attrs}, nil
}

// Order returns the node count.
func (b *Bipartite) Order() int { return b.tri.Order() }

// Pairs returns the underlying half-matrix, shared with the wrapper.
func (b *Bipartite) Pairs() *sparse.Triangular { return b.tri }

// Weight returns the interaction weight of the unordered pair {u, v}.
// Diagonal reads return 0; out-of-range indices error.
func (b *Bipartite) Weight(u, v int) (float64, error) {
	return b.tri.At(u, v)
}

// Attribute returns node u's attribute.
// Errors: ErrNoAttributes, ErrNodeOutOfRange.
func (b *Bipartite) Attribute(u int) (float64, error) {
	const op = "graph.Bipartite.Attribute"
	if b.attrs == nil {
		return 0, graphErrorf(op, ErrNoAttributes)
	}
	if u < 0 || u >= b.Order() {
		return 0, nodeErrorf(op, u)
	}

	return b.attrs[u], nil
}
