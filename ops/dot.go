package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// Dot products (matrix and matrix-vector multiplication). Shapes follow the
// usual (m,k)·(k,n) rule and are checked before any arithmetic. There is no
// sparse×sparse specialization: requesting one through the Dot dispatcher
// reports ErrUnsupportedPair.

// DotCSRVec returns a·x for a CSR matrix and a dense vector, accumulating
// row by row.
// Complexity: O(nnz(a)).
func DotCSRVec(a *sparse.CSR, x *mat.VecDense) (*mat.VecDense, error) {
	const op = "ops.DotCSRVec"
	if a == nil || x == nil {
		return nil, opsErrorf(op, ErrNilOperand)
	}
	if a.Cols() != x.Len() {
		return shapeVecError(op, a.Rows(), a.Cols(), x.Len())
	}

	indptr, indices, data := a.Indptr(), a.Indices(), a.Data()
	y := mat.NewVecDense(a.Rows(), nil)
	for i := 0; i < a.Rows(); i++ {
		var sum float64
		for p := indptr[i]; p < indptr[i+1]; p++ {
			sum += data[p] * x.AtVec(indices[p])
		}
		y.SetVec(i, sum)
	}

	return y, nil
}

// DotCSCVec returns a·x for a CSC matrix and a dense vector, scattering
// column contributions into the result.
// Complexity: O(cols + nnz(a)).
func DotCSCVec(a *sparse.CSC, x *mat.VecDense) (*mat.VecDense, error) {
	const op = "ops.DotCSCVec"
	if a == nil || x == nil {
		return nil, opsErrorf(op, ErrNilOperand)
	}
	if a.Cols() != x.Len() {
		return shapeVecError(op, a.Rows(), a.Cols(), x.Len())
	}

	indptr, indices, data := a.Indptr(), a.Indices(), a.Data()
	y := mat.NewVecDense(a.Rows(), nil)
	raw := y.RawVector().Data
	for j := 0; j < a.Cols(); j++ {
		xv := x.AtVec(j)
		if xv == 0 {
			continue
		}
		for p := indptr[j]; p < indptr[j+1]; p++ {
			raw[indices[p]] += data[p] * xv
		}
	}

	return y, nil
}

// DotCSRDense returns a·b for a CSR matrix and a dense matrix. Each stored
// entry a(i,k) folds b's row k into the output's row i, so the cost scales
// with nnz rather than the full dimension.
// Complexity: O(nnz(a) * cols(b)).
func DotCSRDense(a *sparse.CSR, b *mat.Dense) (*mat.Dense, error) {
	const op = "ops.DotCSRDense"
	if a == nil || b == nil {
		return nil, opsErrorf(op, ErrNilOperand)
	}
	br, bc := b.Dims()
	if a.Cols() != br {
		return nil, shapeErrorf(op, a.Rows(), a.Cols(), br, bc)
	}

	indptr, indices, data := a.Indptr(), a.Indices(), a.Data()
	out := mat.NewDense(a.Rows(), bc, nil)
	for i := 0; i < a.Rows(); i++ {
		outRow := out.RawRowView(i)
		for p := indptr[i]; p < indptr[i+1]; p++ {
			v := data[p]
			bRow := b.RawRowView(indices[p])
			for j, bv := range bRow {
				outRow[j] += v * bv
			}
		}
	}

	return out, nil
}

// DotDenseVec returns a·x, delegating to gonum after the shape check.
func DotDenseVec(a *mat.Dense, x *mat.VecDense) (*mat.VecDense, error) {
	const op = "ops.DotDenseVec"
	if a == nil || x == nil {
		return nil, opsErrorf(op, ErrNilOperand)
	}
	ar, ac := a.Dims()
	if ac != x.Len() {
		return shapeVecError(op, ar, ac, x.Len())
	}

	var out mat.VecDense
	out.MulVec(a, x)

	return &out, nil
}

// DotDenseDense returns a·b, delegating to gonum after the shape check.
func DotDenseDense(a, b *mat.Dense) (*mat.Dense, error) {
	const op = "ops.DotDenseDense"
	if a == nil || b == nil {
		return nil, opsErrorf(op, ErrNilOperand)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, shapeErrorf(op, ar, ac, br, bc)
	}

	var out mat.Dense
	out.Mul(a, b)

	return &out, nil
}

// shapeVecError adapts shapeErrorf for matrix·vector mismatches.
func shapeVecError(op string, ar, ac, xlen int) (*mat.VecDense, error) {
	return nil, shapeErrorf(op, ar, ac, xlen, 1)
}
