// Package sparse provides the storage formats used by the numerical kernels:
// CSR (compressed sparse row), CSC (compressed sparse column), COO
// (coordinate list), and a Triangular half-matrix for pairwise data.
//
// What & Why
//
//   - CSR/CSC keep one compressed axis: indptr marks where each row (column)
//     segment begins, indices holds the uncompressed coordinate per stored
//     entry, and data holds the values. Row-wise kernels want CSR, column-wise
//     kernels want CSC.
//
//   - COO keeps three parallel sequences (row, col, value) with no grouping.
//     It is the interchange format: cheap to build incrementally, cheap to
//     convert from, and the intermediate for every CSR↔CSC round trip.
//
//   - Triangular stores the strict upper half of a symmetric square matrix in
//     one flat sequence, indexed through LinearIndex/IndexPair. It backs
//     pairwise tables (common-neighbor counts and the like) without
//     materializing the mirrored half.
//
// Containers fix their shape at construction. Stored values may be rewritten
// through the live Data slice, but entries are never inserted or removed in
// place: operations that change the stored pattern (conversion, transposition,
// EliminateZeros) always return a fresh container.
//
// Construction validates the raw sequences (lengths, index ranges, indptr
// monotonicity) and reports violations as ErrInvalidFormat. Validation can be
// skipped with WithoutValidation when the caller guarantees well-formed input,
// e.g. buffers produced by the graph loader or by this package's own
// conversions.
//
// Duplicate coordinates are legal and survive conversion: a duplicate stays a
// separate stored entry, and At sums all entries at the queried coordinate.
// Merging duplicates is an explicit caller pass, not something conversions do
// behind your back. Sorted index segments are likewise recommended rather than
// required; SortIndices produces the sorted form and HasCanonicalFormat
// reports whether segments are sorted and duplicate-free.
//
// Errors:
//
//	ErrInvalidFormat    - malformed index/pointer sequences at construction.
//	ErrIndexOutOfBounds - element access outside the matrix shape.
//	ErrNilMatrix        - nil container passed to a conversion.
//	ErrDiagonalIndex    - triangular index query on the unstored diagonal.
//
// See ops for the arithmetic kernels over these containers and graph for the
// adjacency-level algorithms.
package sparse
