package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for the graph wrappers and algorithms. All failures wrap
// one of these; callers match with errors.Is.
var (
	// ErrNilAdjacency indicates construction from a nil adjacency or pair
	// matrix.
	ErrNilAdjacency = errors.New("graph: nil adjacency or pair matrix")

	// ErrNotSquare indicates an adjacency matrix with rows != cols.
	ErrNotSquare = errors.New("graph: adjacency matrix not square")

	// ErrAttributeCount indicates an attribute slice whose length does not
	// match the node count.
	ErrAttributeCount = errors.New("graph: attribute count does not match node count")

	// ErrNoAttributes indicates an attribute read on a wrapper built without
	// attributes.
	ErrNoAttributes = errors.New("graph: no attributes attached")

	// ErrNilGraph indicates an algorithm call on a nil graph.
	ErrNilGraph = errors.New("graph: nil graph")

	// ErrNodeOutOfRange indicates a node index outside [0, Nodes).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight is NaN or infinite")
)

// graphErrorf wraps an underlying error with the given operation tag.
func graphErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// nodeErrorf wraps ErrNodeOutOfRange with the offending index.
func nodeErrorf(method string, u int) error {
	return fmt.Errorf("%s: node %d: %w", method, u, ErrNodeOutOfRange)
}
