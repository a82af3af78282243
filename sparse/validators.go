package sparse

import "fmt"

// Validation helpers shared by the container constructors.
// Each reports its violation as a wrapped ErrInvalidFormat so callers can
// match the sentinel with errors.Is while keeping the offending detail.

// validateShape rejects negative dimensions. Zero is legal: empty matrices
// are valid containers with nnz == 0.
func validateShape(op string, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%s: shape (%d,%d) must be non-negative: %w", op, rows, cols, ErrInvalidFormat)
	}

	return nil
}

// validateCompressed checks the indptr/indices/data triple of a compressed
// format. segments is the length of the compressed axis (rows for CSR,
// cols for CSC); bound is the exclusive limit for values in indices.
// Complexity: O(segments + nnz).
func validateCompressed(op string, segments, bound int, indptr, indices []int, data []float64) error {
	// 1. indptr must cover every segment plus the trailing total.
	if len(indptr) != segments+1 {
		return fmt.Errorf("%s: indptr length %d, want %d: %w", op, len(indptr), segments+1, ErrInvalidFormat)
	}
	if indptr[0] != 0 {
		return fmt.Errorf("%s: indptr[0] = %d, want 0: %w", op, indptr[0], ErrInvalidFormat)
	}

	// 2. indptr must be monotonically non-decreasing.
	for s := 1; s < len(indptr); s++ {
		if indptr[s] < indptr[s-1] {
			return fmt.Errorf("%s: indptr decreases at %d (%d < %d): %w", op, s, indptr[s], indptr[s-1], ErrInvalidFormat)
		}
	}

	// 3. indices and data must be parallel and agree with indptr's total.
	nnz := indptr[segments]
	if len(indices) != nnz {
		return fmt.Errorf("%s: indices length %d, want indptr[%d] = %d: %w", op, len(indices), segments, nnz, ErrInvalidFormat)
	}
	if len(data) != nnz {
		return fmt.Errorf("%s: data length %d, want %d: %w", op, len(data), nnz, ErrInvalidFormat)
	}

	// 4. Every stored index must address the uncompressed axis.
	for k, idx := range indices {
		if idx < 0 || idx >= bound {
			return fmt.Errorf("%s: indices[%d] = %d outside [0,%d): %w", op, k, idx, bound, ErrInvalidFormat)
		}
	}

	return nil
}

// validateTriples checks the parallel row/col/value sequences of a COO
// container. Complexity: O(nnz).
func validateTriples(op string, rows, cols int, rowIdx, colIdx []int, data []float64) error {
	// 1. The three sequences must run in parallel.
	if len(rowIdx) != len(colIdx) || len(rowIdx) != len(data) {
		return fmt.Errorf("%s: sequence lengths %d/%d/%d differ: %w", op, len(rowIdx), len(colIdx), len(data), ErrInvalidFormat)
	}

	// 2. Every coordinate must lie inside the shape.
	for k := range rowIdx {
		if rowIdx[k] < 0 || rowIdx[k] >= rows {
			return fmt.Errorf("%s: rows[%d] = %d outside [0,%d): %w", op, k, rowIdx[k], rows, ErrInvalidFormat)
		}
		if colIdx[k] < 0 || colIdx[k] >= cols {
			return fmt.Errorf("%s: cols[%d] = %d outside [0,%d): %w", op, k, colIdx[k], cols, ErrInvalidFormat)
		}
	}

	return nil
}

// validateTriangle checks the flat sequence of a strict upper half-matrix
// of order n, which stores exactly n*(n-1)/2 values.
func validateTriangle(op string, n int, data []float64) error {
	if n < 0 {
		return fmt.Errorf("%s: order %d must be non-negative: %w", op, n, ErrInvalidFormat)
	}
	if want := n * (n - 1) / 2; len(data) != want {
		return fmt.Errorf("%s: data length %d, want n*(n-1)/2 = %d: %w", op, len(data), want, ErrInvalidFormat)
	}

	return nil
}
