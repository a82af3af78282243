package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// Hadamard (elementwise) product. Sparse pairs produce the intersection of
// stored positions, computed explicitly with the same scatter-workspace
// technique as the union kernel.

// HadamardCSRCSR returns the entrywise product of a and b as a fresh CSR
// holding only positions stored in both operands. Duplicate coordinates in
// either operand sum before multiplying, and the output carries the
// positions in a's first-touch order.
// Complexity: O(rows + nnz(a) + nnz(b)). Memory: O(cols) workspace.
func HadamardCSRCSR(a, b *sparse.CSR) (*sparse.CSR, error) {
	const op = "ops.HadamardCSRCSR"
	if err := ensureCSRPair(op, a, b); err != nil {
		return nil, err
	}

	aIndptr, aIndices, aData := a.Indptr(), a.Indices(), a.Data()
	bIndptr, bIndices, bData := b.Indptr(), b.Indices(), b.Data()

	indptr := make([]int, a.Rows()+1)
	indices := make([]int, 0, min(len(aData), len(bData)))
	data := make([]float64, 0, min(len(aData), len(bData)))

	width := a.Cols()
	aSums := make([]float64, width)
	aStamp := make([]int, width)
	bSums := make([]float64, width)
	bStamp := make([]int, width)
	order := make([]int, 0, width)

	for s := 0; s < a.Rows(); s++ {
		order = order[:0]

		// 1. Scatter b's row.
		for p := bIndptr[s]; p < bIndptr[s+1]; p++ {
			j := bIndices[p]
			if bStamp[j] != s+1 {
				bStamp[j] = s + 1
				bSums[j] = bData[p]
			} else {
				bSums[j] += bData[p]
			}
		}

		// 2. Scatter a's row, tracking first-touch order.
		for p := aIndptr[s]; p < aIndptr[s+1]; p++ {
			j := aIndices[p]
			if aStamp[j] != s+1 {
				aStamp[j] = s + 1
				aSums[j] = aData[p]
				order = append(order, j)
			} else {
				aSums[j] += aData[p]
			}
		}

		// 3. Emit positions present in both rows.
		for _, j := range order {
			if bStamp[j] == s+1 {
				indices = append(indices, j)
				data = append(data, aSums[j]*bSums[j])
			}
		}
		indptr[s+1] = len(indices)
	}

	out, err := sparse.NewCSR(a.Rows(), a.Cols(), indptr, indices, data, sparse.WithoutValidation())
	if err != nil {
		return nil, opsErrorf(op, err)
	}

	return out, nil
}

// HadamardCSRDense returns the entrywise product over a's stored pattern,
// each entry multiplied by the dense value at its coordinate. Dense zeros
// leave explicit zeros in the result; EliminateZeros is the cleanup.
// Complexity: O(nnz(a)).
func HadamardCSRDense(a *sparse.CSR, b *mat.Dense) (*sparse.CSR, error) {
	const op = "ops.HadamardCSRDense"
	if err := ensureCSRDense(op, a, b); err != nil {
		return nil, err
	}

	out := a.Clone()
	indptr, indices, outData := out.Indptr(), out.Indices(), out.Data()
	for i := 0; i+1 < len(indptr); i++ {
		for p := indptr[i]; p < indptr[i+1]; p++ {
			outData[p] *= b.At(i, indices[p])
		}
	}

	return out, nil
}

// HadamardDenseDense returns the entrywise product, delegating to gonum
// after the shape check.
func HadamardDenseDense(a, b *mat.Dense) (*mat.Dense, error) {
	const op = "ops.HadamardDenseDense"
	if err := ensureDensePair(op, a, b); err != nil {
		return nil, err
	}

	var out mat.Dense
	out.MulElem(a, b)

	return &out, nil
}
