package sparse

// Format conversions between COO, CSR, and CSC, plus transposition.
//
// Every conversion allocates a fresh container and never aliases its input.
// Duplicate coordinates pass through untouched: grouping is a stable counting
// sort, so duplicates stay separate entries in their original relative order.
// De-duplication is a separate, explicit caller pass.
//
// CSR↔CSC crossings go through COO: the two formats compress different
// axes, so the conversion is decompress, swap the axis roles, recompress.

// COOToCSR groups COO entries by row into a fresh CSR.
// Complexity: O(rows + nnz). Returns ErrNilMatrix for nil input.
func COOToCSR(m *COO) (*CSR, error) {
	if m == nil {
		return nil, sparseErrorf("sparse.COOToCSR", ErrNilMatrix)
	}

	indptr, indices, data := compressByAxis(m.rowIdx, m.colIdx, m.data, m.rows)

	return &CSR{rows: m.rows, cols: m.cols, indptr: indptr, indices: indices, data: data}, nil
}

// COOToCSC groups COO entries by column into a fresh CSC.
// Complexity: O(cols + nnz). Returns ErrNilMatrix for nil input.
func COOToCSC(m *COO) (*CSC, error) {
	if m == nil {
		return nil, sparseErrorf("sparse.COOToCSC", ErrNilMatrix)
	}

	indptr, indices, data := compressByAxis(m.colIdx, m.rowIdx, m.data, m.cols)

	return &CSC{rows: m.rows, cols: m.cols, indptr: indptr, indices: indices, data: data}, nil
}

// CSRToCOO expands a CSR's indptr back into explicit row indices.
// Complexity: O(rows + nnz). Returns ErrNilMatrix for nil input.
func CSRToCOO(m *CSR) (*COO, error) {
	if m == nil {
		return nil, sparseErrorf("sparse.CSRToCOO", ErrNilMatrix)
	}

	rowIdx, colIdx, data := expandCompressed(m.indptr, m.indices, m.data, m.rows)

	return &COO{rows: m.rows, cols: m.cols, rowIdx: rowIdx, colIdx: colIdx, data: data}, nil
}

// CSCToCOO expands a CSC's indptr back into explicit column indices.
// Complexity: O(cols + nnz). Returns ErrNilMatrix for nil input.
func CSCToCOO(m *CSC) (*COO, error) {
	if m == nil {
		return nil, sparseErrorf("sparse.CSCToCOO", ErrNilMatrix)
	}

	colIdx, rowIdx, data := expandCompressed(m.indptr, m.indices, m.data, m.cols)

	return &COO{rows: m.rows, cols: m.cols, rowIdx: rowIdx, colIdx: colIdx, data: data}, nil
}

// CSRToCSC converts by decompressing to COO and regrouping on the column
// axis. Complexity: O(rows + cols + nnz). Returns ErrNilMatrix for nil input.
func CSRToCSC(m *CSR) (*CSC, error) {
	if m == nil {
		return nil, sparseErrorf("sparse.CSRToCSC", ErrNilMatrix)
	}

	coo, err := CSRToCOO(m)
	if err != nil {
		return nil, err
	}

	return COOToCSC(coo)
}

// CSCToCSR converts by decompressing to COO and regrouping on the row axis.
// Complexity: O(rows + cols + nnz). Returns ErrNilMatrix for nil input.
func CSCToCSR(m *CSC) (*CSR, error) {
	if m == nil {
		return nil, sparseErrorf("sparse.CSCToCSR", ErrNilMatrix)
	}

	coo, err := CSCToCOO(m)
	if err != nil {
		return nil, err
	}

	return COOToCSR(coo)
}

// TransposeCSR returns the transpose as a fresh CSR. Compressing the
// receiver's entries by column yields the CSC arrays of the same matrix,
// which reinterpret directly as the CSR arrays of the transpose with the
// shape swapped. Output segments come out sorted by construction.
// Complexity: O(rows + cols + nnz). Returns ErrNilMatrix for nil input.
func TransposeCSR(m *CSR) (*CSR, error) {
	if m == nil {
		return nil, sparseErrorf("sparse.TransposeCSR", ErrNilMatrix)
	}

	indptr, indices, data := recompress(m.indptr, m.indices, m.data, m.rows, m.cols)

	return &CSR{rows: m.cols, cols: m.rows, indptr: indptr, indices: indices, data: data}, nil
}

// TransposeCSC returns the transpose as a fresh CSC, mirroring TransposeCSR.
// Complexity: O(rows + cols + nnz). Returns ErrNilMatrix for nil input.
func TransposeCSC(m *CSC) (*CSC, error) {
	if m == nil {
		return nil, sparseErrorf("sparse.TransposeCSC", ErrNilMatrix)
	}

	indptr, indices, data := recompress(m.indptr, m.indices, m.data, m.cols, m.rows)

	return &CSC{rows: m.cols, cols: m.rows, indptr: indptr, indices: indices, data: data}, nil
}

// TransposeCOO returns the transpose as a fresh COO: the row and column
// sequences swap roles, entry order untouched.
// Complexity: O(nnz). Returns ErrNilMatrix for nil input.
func TransposeCOO(m *COO) (*COO, error) {
	if m == nil {
		return nil, sparseErrorf("sparse.TransposeCOO", ErrNilMatrix)
	}

	out := m.Clone()
	out.rows, out.cols = m.cols, m.rows
	out.rowIdx, out.colIdx = out.colIdx, out.rowIdx

	return out, nil
}

// compressByAxis groups COO triples by the major axis using a stable
// counting sort: per-segment counts, prefix-summed into indptr, then a
// placement pass that preserves input order within each segment.
func compressByAxis(major, minor []int, values []float64, segments int) (indptr, indices []int, data []float64) {
	nnz := len(values)

	// 1. Count entries per segment into indptr[1:].
	indptr = make([]int, segments+1)
	for _, s := range major {
		indptr[s+1]++
	}

	// 2. Prefix-sum the counts into segment boundaries.
	for s := 0; s < segments; s++ {
		indptr[s+1] += indptr[s]
	}

	// 3. Place each entry at its segment cursor, preserving input order.
	indices = make([]int, nnz)
	data = make([]float64, nnz)
	next := make([]int, segments)
	copy(next, indptr[:segments])
	for k, s := range major {
		p := next[s]
		indices[p] = minor[k]
		data[p] = values[k]
		next[s]++
	}

	return indptr, indices, data
}

// expandCompressed is the inverse of compressByAxis: indptr expands into
// repeated segment ids, indices and data copy through unchanged.
func expandCompressed(indptr, indices []int, values []float64, segments int) (major, minor []int, data []float64) {
	nnz := len(values)
	major = make([]int, nnz)
	for s := 0; s < segments; s++ {
		for p := indptr[s]; p < indptr[s+1]; p++ {
			major[p] = s
		}
	}

	minor = make([]int, nnz)
	copy(minor, indices)
	data = make([]float64, nnz)
	copy(data, values)

	return major, minor, data
}

// recompress regroups a compressed container onto the opposite axis: entries
// are bucketed by their stored index, and the owning segment id becomes the
// new stored index. Iterating segments in ascending order leaves every output
// segment sorted.
func recompress(indptr, indices []int, values []float64, segments, bound int) (outIndptr, outIndices []int, outData []float64) {
	nnz := len(values)

	// 1. Count entries per target bucket.
	outIndptr = make([]int, bound+1)
	for _, idx := range indices {
		outIndptr[idx+1]++
	}

	// 2. Prefix-sum into bucket boundaries.
	for b := 0; b < bound; b++ {
		outIndptr[b+1] += outIndptr[b]
	}

	// 3. Walk segments in order, scattering entries to their buckets.
	outIndices = make([]int, nnz)
	outData = make([]float64, nnz)
	next := make([]int, bound)
	copy(next, outIndptr[:bound])
	for s := 0; s < segments; s++ {
		for p := indptr[s]; p < indptr[s+1]; p++ {
			idx := indices[p]
			q := next[idx]
			outIndices[q] = s
			outData[q] = values[p]
			next[idx]++
		}
	}

	return outIndptr, outIndices, outData
}
