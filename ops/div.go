package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// Elementwise division. The result always carries the dividend's stored
// pattern, and every stored position must meet a nonzero divisor entry:
// dividing by a structurally absent or stored-zero value is a domain error
// (ErrDivisionByZero), never a silent zero.

// DivCSRCSR returns a / b entrywise over a's stored pattern. b's duplicate
// entries sum into the effective divisor before the check.
// Complexity: O(rows + nnz(a) + nnz(b)). Memory: O(cols) workspace.
func DivCSRCSR(a, b *sparse.CSR) (*sparse.CSR, error) {
	const op = "ops.DivCSRCSR"
	if err := ensureCSRPair(op, a, b); err != nil {
		return nil, err
	}

	aIndptr, aIndices, aData := a.Indptr(), a.Indices(), a.Data()
	bIndptr, bIndices, bData := b.Indptr(), b.Indices(), b.Data()

	// The quotient keeps a's arrays verbatim, entry for entry.
	out := a.Clone()
	outData := out.Data()

	sums := make([]float64, a.Cols())
	stamp := make([]int, a.Cols())
	for s := 0; s < a.Rows(); s++ {
		// 1. Scatter b's row to resolve the effective divisor per column.
		for p := bIndptr[s]; p < bIndptr[s+1]; p++ {
			j := bIndices[p]
			if stamp[j] != s+1 {
				stamp[j] = s + 1
				sums[j] = bData[p]
			} else {
				sums[j] += bData[p]
			}
		}

		// 2. Divide each of a's entries by the divisor at its coordinate.
		for p := aIndptr[s]; p < aIndptr[s+1]; p++ {
			j := aIndices[p]
			if stamp[j] != s+1 || sums[j] == 0 {
				return nil, divZeroErrorf(op, s, j)
			}
			outData[p] = aData[p] / sums[j]
		}
	}

	return out, nil
}

// DivCSRDense returns a / b entrywise over a's stored pattern, reading
// divisors from the dense operand. A zero dense value under a stored entry
// is ErrDivisionByZero.
// Complexity: O(nnz(a)).
func DivCSRDense(a *sparse.CSR, b *mat.Dense) (*sparse.CSR, error) {
	const op = "ops.DivCSRDense"
	if err := ensureCSRDense(op, a, b); err != nil {
		return nil, err
	}

	out := a.Clone()
	indptr, indices, outData := out.Indptr(), out.Indices(), out.Data()
	for i := 0; i+1 < len(indptr); i++ {
		for p := indptr[i]; p < indptr[i+1]; p++ {
			j := indices[p]
			d := b.At(i, j)
			if d == 0 {
				return nil, divZeroErrorf(op, i, j)
			}
			outData[p] /= d
		}
	}

	return out, nil
}

// DivDenseDense returns a / b entrywise. Any zero in b is ErrDivisionByZero.
// Complexity: O(rows*cols).
func DivDenseDense(a, b *mat.Dense) (*mat.Dense, error) {
	const op = "ops.DivDenseDense"
	if err := ensureDensePair(op, a, b); err != nil {
		return nil, err
	}

	rows, cols := a.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d := b.At(i, j)
			if d == 0 {
				return nil, divZeroErrorf(op, i, j)
			}
			out.Set(i, j, a.At(i, j)/d)
		}
	}

	return out, nil
}
