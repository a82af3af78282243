package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// Elementwise addition and subtraction, one specialization per operand pair.
// Sparse pairs run the scatter-union kernel below; pairs with a dense operand
// produce a dense result, since the union with a dense pattern is dense.

// AddCSRCSR returns a + b as a fresh CSR holding the union of the stored
// positions of both operands.
// Complexity: O(rows + nnz(a) + nnz(b)). Memory: O(cols) workspace.
func AddCSRCSR(a, b *sparse.CSR) (*sparse.CSR, error) {
	const op = "ops.AddCSRCSR"
	if err := ensureCSRPair(op, a, b); err != nil {
		return nil, err
	}

	indptr, indices, data := compressedUnion(
		a.Indptr(), a.Indices(), a.Data(),
		b.Indptr(), b.Indices(), b.Data(),
		a.Rows(), a.Cols(), +1,
	)
	out, err := sparse.NewCSR(a.Rows(), a.Cols(), indptr, indices, data, sparse.WithoutValidation())
	if err != nil {
		return nil, opsErrorf(op, err)
	}

	return out, nil
}

// SubCSRCSR returns a - b as a fresh CSR; union semantics match AddCSRCSR.
func SubCSRCSR(a, b *sparse.CSR) (*sparse.CSR, error) {
	const op = "ops.SubCSRCSR"
	if err := ensureCSRPair(op, a, b); err != nil {
		return nil, err
	}

	indptr, indices, data := compressedUnion(
		a.Indptr(), a.Indices(), a.Data(),
		b.Indptr(), b.Indices(), b.Data(),
		a.Rows(), a.Cols(), -1,
	)
	out, err := sparse.NewCSR(a.Rows(), a.Cols(), indptr, indices, data, sparse.WithoutValidation())
	if err != nil {
		return nil, opsErrorf(op, err)
	}

	return out, nil
}

// AddCSCCSC returns a + b as a fresh CSC. The same union kernel runs over
// column segments instead of row segments.
func AddCSCCSC(a, b *sparse.CSC) (*sparse.CSC, error) {
	const op = "ops.AddCSCCSC"
	if err := ensureCSCPair(op, a, b); err != nil {
		return nil, err
	}

	indptr, indices, data := compressedUnion(
		a.Indptr(), a.Indices(), a.Data(),
		b.Indptr(), b.Indices(), b.Data(),
		a.Cols(), a.Rows(), +1,
	)
	out, err := sparse.NewCSC(a.Rows(), a.Cols(), indptr, indices, data, sparse.WithoutValidation())
	if err != nil {
		return nil, opsErrorf(op, err)
	}

	return out, nil
}

// SubCSCCSC returns a - b as a fresh CSC.
func SubCSCCSC(a, b *sparse.CSC) (*sparse.CSC, error) {
	const op = "ops.SubCSCCSC"
	if err := ensureCSCPair(op, a, b); err != nil {
		return nil, err
	}

	indptr, indices, data := compressedUnion(
		a.Indptr(), a.Indices(), a.Data(),
		b.Indptr(), b.Indices(), b.Data(),
		a.Cols(), a.Rows(), -1,
	)
	out, err := sparse.NewCSC(a.Rows(), a.Cols(), indptr, indices, data, sparse.WithoutValidation())
	if err != nil {
		return nil, opsErrorf(op, err)
	}

	return out, nil
}

// AddCOOCOO returns a + b as a fresh COO by concatenating the entry
// sequences. For an unordered format that is the structural union; entries
// at shared coordinates remain separate logical contributions, which reads
// (At) resolve by summing.
// Complexity: O(nnz(a) + nnz(b)).
func AddCOOCOO(a, b *sparse.COO) (*sparse.COO, error) {
	const op = "ops.AddCOOCOO"
	if err := ensureCOOPair(op, a, b); err != nil {
		return nil, err
	}

	return concatCOO(op, a, b, +1)
}

// SubCOOCOO returns a - b as a fresh COO: b's entries are appended negated.
func SubCOOCOO(a, b *sparse.COO) (*sparse.COO, error) {
	const op = "ops.SubCOOCOO"
	if err := ensureCOOPair(op, a, b); err != nil {
		return nil, err
	}

	return concatCOO(op, a, b, -1)
}

// AddDenseDense returns a + b, delegating to gonum after the shape check.
func AddDenseDense(a, b *mat.Dense) (*mat.Dense, error) {
	const op = "ops.AddDenseDense"
	if err := ensureDensePair(op, a, b); err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Add(a, b)

	return &out, nil
}

// SubDenseDense returns a - b, delegating to gonum after the shape check.
func SubDenseDense(a, b *mat.Dense) (*mat.Dense, error) {
	const op = "ops.SubDenseDense"
	if err := ensureDensePair(op, a, b); err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Sub(a, b)

	return &out, nil
}

// AddCSRDense returns a + b as a fresh dense matrix: b copied, then a's
// stored entries folded in.
// Complexity: O(rows*cols + nnz(a)).
func AddCSRDense(a *sparse.CSR, b *mat.Dense) (*mat.Dense, error) {
	const op = "ops.AddCSRDense"
	if err := ensureCSRDense(op, a, b); err != nil {
		return nil, err
	}

	out := mat.DenseCopyOf(b)
	foldEntries(out, a, +1)

	return out, nil
}

// AddDenseCSR returns a + b as a fresh dense matrix.
func AddDenseCSR(a *mat.Dense, b *sparse.CSR) (*mat.Dense, error) {
	const op = "ops.AddDenseCSR"
	if err := ensureCSRDense(op, b, a); err != nil {
		return nil, err
	}

	out := mat.DenseCopyOf(a)
	foldEntries(out, b, +1)

	return out, nil
}

// SubCSRDense returns a - b as a fresh dense matrix: b negated, then a's
// stored entries folded in.
func SubCSRDense(a *sparse.CSR, b *mat.Dense) (*mat.Dense, error) {
	const op = "ops.SubCSRDense"
	if err := ensureCSRDense(op, a, b); err != nil {
		return nil, err
	}

	var out mat.Dense
	out.Scale(-1, b)
	foldEntries(&out, a, +1)

	return &out, nil
}

// SubDenseCSR returns a - b as a fresh dense matrix.
func SubDenseCSR(a *mat.Dense, b *sparse.CSR) (*mat.Dense, error) {
	const op = "ops.SubDenseCSR"
	if err := ensureCSRDense(op, b, a); err != nil {
		return nil, err
	}

	out := mat.DenseCopyOf(a)
	foldEntries(out, b, -1)

	return out, nil
}

// compressedUnion merges two compressed containers segment by segment into
// the union of their stored positions. sign scales the second operand, so
// +1 adds and -1 subtracts. A dense accumulator of the uncompressed width
// is reused across segments with a generation stamp, which handles unsorted
// segments and duplicate coordinates without any sorting.
//
// Output positions appear in first-touch order: a's order within the
// segment, then b's positions absent from a. Entries that cancel to zero
// stay stored.
func compressedUnion(
	aIndptr, aIndices []int, aData []float64,
	bIndptr, bIndices []int, bData []float64,
	segments, width int, sign float64,
) (indptr, indices []int, data []float64) {
	indptr = make([]int, segments+1)
	indices = make([]int, 0, len(aData)+len(bData))
	data = make([]float64, 0, len(aData)+len(bData))

	sums := make([]float64, width)
	stamp := make([]int, width) // stamp[j] == s+1 marks j touched in segment s
	order := make([]int, 0, width)

	for s := 0; s < segments; s++ {
		order = order[:0]

		// 1. Scatter a's segment into the accumulator.
		for p := aIndptr[s]; p < aIndptr[s+1]; p++ {
			j := aIndices[p]
			if stamp[j] != s+1 {
				stamp[j] = s + 1
				sums[j] = aData[p]
				order = append(order, j)
			} else {
				sums[j] += aData[p]
			}
		}

		// 2. Fold b's segment in, scaled by sign.
		for p := bIndptr[s]; p < bIndptr[s+1]; p++ {
			j := bIndices[p]
			if stamp[j] != s+1 {
				stamp[j] = s + 1
				sums[j] = sign * bData[p]
				order = append(order, j)
			} else {
				sums[j] += sign * bData[p]
			}
		}

		// 3. Emit the union in first-touch order.
		for _, j := range order {
			indices = append(indices, j)
			data = append(data, sums[j])
		}
		indptr[s+1] = len(indices)
	}

	return indptr, indices, data
}

// concatCOO concatenates two COO entry sequences, scaling b by sign.
func concatCOO(op string, a, b *sparse.COO, sign float64) (*sparse.COO, error) {
	nnz := a.NNZ() + b.NNZ()
	rowIdx := make([]int, 0, nnz)
	rowIdx = append(rowIdx, a.RowIndices()...)
	rowIdx = append(rowIdx, b.RowIndices()...)

	colIdx := make([]int, 0, nnz)
	colIdx = append(colIdx, a.ColIndices()...)
	colIdx = append(colIdx, b.ColIndices()...)

	data := make([]float64, 0, nnz)
	data = append(data, a.Data()...)
	for _, v := range b.Data() {
		data = append(data, sign*v)
	}

	out, err := sparse.NewCOO(a.Rows(), a.Cols(), rowIdx, colIdx, data, sparse.WithoutValidation())
	if err != nil {
		return nil, opsErrorf(op, err)
	}

	return out, nil
}

// foldEntries accumulates a CSR's stored entries into a dense matrix,
// scaled by sign. Duplicate coordinates fold in one by one.
func foldEntries(out *mat.Dense, m *sparse.CSR, sign float64) {
	indptr, indices, data := m.Indptr(), m.Indices(), m.Data()
	for i := 0; i+1 < len(indptr); i++ {
		row := out.RawRowView(i)
		for p := indptr[i]; p < indptr[i+1]; p++ {
			row[indices[p]] += sign * data[p]
		}
	}
}
