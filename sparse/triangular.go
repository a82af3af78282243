package sparse

import "sort"

// Triangular stores the strict upper half (i < j) of a symmetric square
// matrix of order n in one flat sequence of length n*(n-1)/2, laid out
// row-major with shrinking rows: (0,1), (0,2), ..., (0,n-1), (1,2), ...
//
// Reads are symmetric: At(i, j) with i > j reads (j, i), and the diagonal
// reads as 0. The diagonal is never stored, so LinearIndex rejects i == j.
// RowWidth bounds per-row iteration without materializing the full matrix.
type Triangular struct {
	n    int       // matrix order
	data []float64 // strict upper half, length n*(n-1)/2
}

// NewTriangular builds a Triangular container of order n over the given
// flat sequence, taking ownership of the slice. Validation checks that the
// sequence holds exactly n*(n-1)/2 values.
// Complexity: O(1).
func NewTriangular(n int, data []float64, opts ...Option) (*Triangular, error) {
	const op = "sparse.NewTriangular"
	if o := gatherOptions(opts...); o.Validate {
		if err := validateTriangle(op, n, data); err != nil {
			return nil, err
		}
	}

	return &Triangular{n: n, data: data}, nil
}

// Order returns the matrix order n.
func (m *Triangular) Order() int { return m.n }

// Len returns the number of stored values, n*(n-1)/2.
func (m *Triangular) Len() int { return len(m.data) }

// Data returns the live flat sequence, aliasing the container.
func (m *Triangular) Data() []float64 { return m.data }

// rowStart returns the flat offset of row i's first stored entry, valid for
// 0 <= i <= n (rowStart(n) == Len).
func (m *Triangular) rowStart(i int) int {
	return i*(m.n-1) - i*(i-1)/2
}

// LinearIndex maps a coordinate to its flat offset k. The mapping is
// symmetric: (i, j) and (j, i) share one offset. Diagonal coordinates have
// no stored slot and return a wrapped ErrDiagonalIndex; coordinates outside
// the order return a wrapped ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Triangular) LinearIndex(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, indexErrorf("Triangular.LinearIndex", i, j)
	}
	if i == j {
		return 0, sparseErrorf("Triangular.LinearIndex", ErrDiagonalIndex)
	}
	if i > j {
		i, j = j, i
	}

	return m.rowStart(i) + (j - i - 1), nil
}

// IndexPair is the inverse of LinearIndex: it maps a flat offset k back to
// its upper-half coordinate (i, j) with i < j. Offsets outside [0, Len)
// return a wrapped ErrIndexOutOfBounds.
// Complexity: O(log n).
func (m *Triangular) IndexPair(k int) (int, int, error) {
	if k < 0 || k >= len(m.data) {
		return 0, 0, sparseErrorf("Triangular.IndexPair", ErrIndexOutOfBounds)
	}

	// rowStart is strictly increasing over non-empty rows, so the owning
	// row is the first i with rowStart(i+1) > k.
	i := sort.Search(m.n, func(i int) bool { return m.rowStart(i+1) > k })
	j := i + 1 + (k - m.rowStart(i))

	return i, j, nil
}

// RowWidth returns the number of stored entries in row i, i.e. the count of
// valid j > i, which is n-1-i. Out-of-range i returns a wrapped
// ErrIndexOutOfBounds.
func (m *Triangular) RowWidth(i int) (int, error) {
	if i < 0 || i >= m.n {
		return 0, indexErrorf("Triangular.RowWidth", i, 0)
	}

	return m.n - 1 - i, nil
}

// At returns the value at (i, j): 0 on the diagonal, the stored value
// otherwise, reading symmetrically. Out-of-range coordinates return a
// wrapped ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Triangular) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, indexErrorf("Triangular.At", i, j)
	}
	if i == j {
		return 0, nil
	}

	k, err := m.LinearIndex(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[k], nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(n^2).
func (m *Triangular) Clone() *Triangular {
	out := &Triangular{n: m.n, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}
