package sparse

// CSC is a compressed sparse column matrix, the column-major mirror of CSR.
//
// indptr has length cols+1 with indptr[0] == 0; column j owns the entry
// range [indptr[j], indptr[j+1]). indices holds the row of each stored entry
// and data the value. Ordering and duplicate rules match CSR.
type CSC struct {
	rows, cols int
	indptr     []int     // column segment boundaries, length cols+1
	indices    []int     // row per stored entry, length nnz
	data       []float64 // stored values, parallel to indices
}

// NewCSC builds a CSC matrix over the given raw sequences, taking ownership
// of the slices. Validation mirrors NewCSR with the axes swapped.
// Complexity: O(cols + nnz) with validation, O(1) without.
func NewCSC(rows, cols int, indptr, indices []int, data []float64, opts ...Option) (*CSC, error) {
	const op = "sparse.NewCSC"
	if o := gatherOptions(opts...); o.Validate {
		if err := validateShape(op, rows, cols); err != nil {
			return nil, err
		}
		if err := validateCompressed(op, cols, rows, indptr, indices, data); err != nil {
			return nil, err
		}
	}

	return &CSC{rows: rows, cols: cols, indptr: indptr, indices: indices, data: data}, nil
}

// Rows returns the number of rows.
func (m *CSC) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSC) Cols() int { return m.cols }

// NNZ returns the number of stored entries, counting duplicates.
func (m *CSC) NNZ() int { return len(m.data) }

// Indptr returns the live column-boundary slice, aliasing the container.
func (m *CSC) Indptr() []int { return m.indptr }

// Indices returns the live row-index slice, aliasing the container.
func (m *CSC) Indices() []int { return m.indices }

// Data returns the live value slice; see CSR.Data for the mutation contract.
func (m *CSC) Data() []float64 { return m.data }

// At returns the value at (i, j), summing duplicates, 0 when absent.
// Out-of-range coordinates return a wrapped ErrIndexOutOfBounds.
// Complexity: O(nnz(column j)).
func (m *CSC) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, indexErrorf("CSC.At", i, j)
	}

	var sum float64
	for p := m.indptr[j]; p < m.indptr[j+1]; p++ {
		if m.indices[p] == i {
			sum += m.data[p]
		}
	}

	return sum, nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(cols + nnz).
func (m *CSC) Clone() *CSC {
	out := &CSC{
		rows:    m.rows,
		cols:    m.cols,
		indptr:  make([]int, len(m.indptr)),
		indices: make([]int, len(m.indices)),
		data:    make([]float64, len(m.data)),
	}
	copy(out.indptr, m.indptr)
	copy(out.indices, m.indices)
	copy(out.data, m.data)

	return out
}

// HasCanonicalFormat reports whether every column's row indices are strictly
// increasing. Complexity: O(nnz).
func (m *CSC) HasCanonicalFormat() bool {
	return compressedIsCanonical(m.indptr, m.indices)
}

// SortIndices returns a copy with each column's entries sorted ascending by
// row, stable across duplicates. The receiver is not modified.
// Complexity: O(nnz log w) for maximum column height w.
func (m *CSC) SortIndices() *CSC {
	out := m.Clone()
	sortCompressed(out.indptr, out.indices, out.data)

	return out
}
