package sparse

import (
	"errors"
	"fmt"
)

// Sentinel errors for sparse container construction and access.
// All failures wrap one of these; callers match with errors.Is.
var (
	// ErrInvalidFormat indicates malformed raw sequences at construction:
	// inconsistent lengths, an out-of-range index, or a broken indptr.
	ErrInvalidFormat = errors.New("sparse: invalid format")

	// ErrIndexOutOfBounds indicates an element access outside the shape.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrNilMatrix indicates a nil container was passed to a conversion.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrDiagonalIndex indicates a triangular linear-index query for a
	// diagonal coordinate, which the strict half-matrix does not store.
	ErrDiagonalIndex = errors.New("sparse: diagonal not stored in triangular form")
)

// sparseErrorf wraps an underlying error with the given operation tag.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps ErrIndexOutOfBounds with method context and coordinates.
func indexErrorf(method string, i, j int) error {
	return fmt.Errorf("%s(%d,%d): %w", method, i, j, ErrIndexOutOfBounds)
}
