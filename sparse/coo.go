package sparse

// COO is a coordinate-list matrix: three parallel sequences holding the row,
// column, and value of every stored entry. Entries carry no ordering
// invariant, and duplicate coordinates are ordinary entries.
type COO struct {
	rows, cols int
	rowIdx     []int     // row per stored entry
	colIdx     []int     // column per stored entry
	data       []float64 // stored values, parallel to the index sequences
}

// NewCOO builds a COO matrix over the given raw sequences, taking ownership
// of the slices. Validation checks that the sequences run in parallel and
// that every coordinate lies inside the shape.
// Complexity: O(nnz) with validation, O(1) without.
func NewCOO(rows, cols int, rowIdx, colIdx []int, data []float64, opts ...Option) (*COO, error) {
	const op = "sparse.NewCOO"
	if o := gatherOptions(opts...); o.Validate {
		if err := validateShape(op, rows, cols); err != nil {
			return nil, err
		}
		if err := validateTriples(op, rows, cols, rowIdx, colIdx, data); err != nil {
			return nil, err
		}
	}

	return &COO{rows: rows, cols: cols, rowIdx: rowIdx, colIdx: colIdx, data: data}, nil
}

// Rows returns the number of rows.
func (m *COO) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *COO) Cols() int { return m.cols }

// NNZ returns the number of stored entries, counting duplicates.
func (m *COO) NNZ() int { return len(m.data) }

// RowIndices returns the live row sequence, aliasing the container.
func (m *COO) RowIndices() []int { return m.rowIdx }

// ColIndices returns the live column sequence, aliasing the container.
func (m *COO) ColIndices() []int { return m.colIdx }

// Data returns the live value slice; see CSR.Data for the mutation contract.
func (m *COO) Data() []float64 { return m.data }

// At returns the value at (i, j), summing duplicates, 0 when absent.
// Out-of-range coordinates return a wrapped ErrIndexOutOfBounds.
// Complexity: O(nnz); COO has no index to narrow the scan.
func (m *COO) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, indexErrorf("COO.At", i, j)
	}

	var sum float64
	for k := range m.rowIdx {
		if m.rowIdx[k] == i && m.colIdx[k] == j {
			sum += m.data[k]
		}
	}

	return sum, nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(nnz).
func (m *COO) Clone() *COO {
	out := &COO{
		rows:   m.rows,
		cols:   m.cols,
		rowIdx: make([]int, len(m.rowIdx)),
		colIdx: make([]int, len(m.colIdx)),
		data:   make([]float64, len(m.data)),
	}
	copy(out.rowIdx, m.rowIdx)
	copy(out.colIdx, m.colIdx)
	copy(out.data, m.data)

	return out
}
