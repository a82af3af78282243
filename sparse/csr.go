package sparse

import "sort"

// CSR is a compressed sparse row matrix.
//
// indptr has length rows+1 with indptr[0] == 0; row i owns the half-open
// entry range [indptr[i], indptr[i+1]). indices holds the column of each
// stored entry and data the value, both of length nnz. Within a row the
// column order is unconstrained and duplicates are permitted; see
// HasCanonicalFormat and SortIndices.
type CSR struct {
	rows, cols int
	indptr     []int     // row segment boundaries, length rows+1
	indices    []int     // column per stored entry, length nnz
	data       []float64 // stored values, parallel to indices
}

// NewCSR builds a CSR matrix over the given raw sequences. The container
// takes ownership of the slices; callers must not alias them afterwards.
//
// Validation (skippable via WithoutValidation) checks shape, indptr length
// and monotonicity, indices/data lengths against indptr's total, and column
// ranges. Violations return a wrapped ErrInvalidFormat.
// Complexity: O(rows + nnz) with validation, O(1) without.
func NewCSR(rows, cols int, indptr, indices []int, data []float64, opts ...Option) (*CSR, error) {
	const op = "sparse.NewCSR"
	if o := gatherOptions(opts...); o.Validate {
		if err := validateShape(op, rows, cols); err != nil {
			return nil, err
		}
		if err := validateCompressed(op, rows, cols, indptr, indices, data); err != nil {
			return nil, err
		}
	}

	return &CSR{rows: rows, cols: cols, indptr: indptr, indices: indices, data: data}, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries, counting duplicates.
func (m *CSR) NNZ() int { return len(m.data) }

// Indptr returns the live row-boundary slice. It aliases the container's
// storage; mutating it bypasses validation.
func (m *CSR) Indptr() []int { return m.indptr }

// Indices returns the live column-index slice. It aliases the container's
// storage.
func (m *CSR) Indices() []int { return m.indices }

// Data returns the live value slice. Rewriting values through it is the
// supported way to mutate content in place; the stored pattern never changes.
func (m *CSR) Data() []float64 { return m.data }

// At returns the value at (i, j): the sum of all stored entries with that
// coordinate, or 0 when none is stored. Out-of-range coordinates return a
// wrapped ErrIndexOutOfBounds.
// Complexity: O(nnz(row i)).
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, indexErrorf("CSR.At", i, j)
	}

	// Scan the row segment; duplicates contribute their sum.
	var sum float64
	for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
		if m.indices[p] == j {
			sum += m.data[p]
		}
	}

	return sum, nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(rows + nnz).
func (m *CSR) Clone() *CSR {
	out := &CSR{
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

// HasCanonicalFormat reports whether every row's column indices are strictly
// increasing, i.e. sorted with no duplicate coordinates. Operations that
// document a sortedness requirement (common-neighbor queries, intersection)
// expect canonical input.
// Complexity: O(nnz).
func (m *CSR) HasCanonicalFormat() bool {
	return compressedIsCanonical(m.indptr, m.indices)
}

// SortIndices returns a copy with each row's entries sorted ascending by
// column. The sort is stable, so duplicate coordinates keep their relative
// order. The receiver is not modified.
// Complexity: O(nnz log w) for maximum row width w.
func (m *CSR) SortIndices() *CSR {
	out := m.Clone()
	sortCompressed(out.indptr, out.indices, out.data)

	return out
}

// EliminateZeros returns a copy with all explicitly stored zero values
// removed and indptr recomputed. Structural zeros were never stored, so
// only stored 0.0 entries disappear; everything else is preserved in order.
// Complexity: O(rows + nnz).
func (m *CSR) EliminateZeros() *CSR {
	// 1. Count surviving entries to size the output exactly.
	kept := 0
	for _, v := range m.data {
		if v != 0 {
			kept++
		}
	}

	// 2. Rebuild segment by segment, skipping stored zeros.
	out := &CSR{
		rows:    m.rows,
		cols:    m.cols,
		indptr:  make([]int, m.rows+1),
		indices: make([]int, 0, kept),
		data:    make([]float64, 0, kept),
	}
	for i := 0; i < m.rows; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if m.data[p] == 0 {
				continue
			}
			out.indices = append(out.indices, m.indices[p])
			out.data = append(out.data, m.data[p])
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out
}

// compressedIsCanonical reports strictly increasing indices per segment.
func compressedIsCanonical(indptr, indices []int) bool {
	for s := 0; s+1 < len(indptr); s++ {
		for p := indptr[s] + 1; p < indptr[s+1]; p++ {
			if indices[p-1] >= indices[p] {
				return false
			}
		}
	}

	return true
}

// sortCompressed sorts each segment of a compressed container in place,
// ascending by index, keeping data paired. Stable so duplicates retain
// their original order.
func sortCompressed(indptr, indices []int, data []float64) {
	for s := 0; s+1 < len(indptr); s++ {
		lo, hi := indptr[s], indptr[s+1]
		seg := segmentView{indices: indices[lo:hi], data: data[lo:hi]}
		sort.Stable(seg)
	}
}

// segmentView adapts one paired (indices, data) segment to sort.Interface.
type segmentView struct {
	indices []int
	data    []float64
}

func (v segmentView) Len() int           { return len(v.indices) }
func (v segmentView) Less(i, j int) bool { return v.indices[i] < v.indices[j] }
func (v segmentView) Swap(i, j int) {
	v.indices[i], v.indices[j] = v.indices[j], v.indices[i]
	v.data[i], v.data[j] = v.data[j], v.data[i]
}
