package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// Operand validation shared by the kernels. Shape checks always run before
// any element work so gonum's panicking paths are never reached.

func ensureCSRPair(op string, a, b *sparse.CSR) error {
	if a == nil || b == nil {
		return opsErrorf(op, ErrNilOperand)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return shapeErrorf(op, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

func ensureCSCPair(op string, a, b *sparse.CSC) error {
	if a == nil || b == nil {
		return opsErrorf(op, ErrNilOperand)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return shapeErrorf(op, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

func ensureCOOPair(op string, a, b *sparse.COO) error {
	if a == nil || b == nil {
		return opsErrorf(op, ErrNilOperand)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return shapeErrorf(op, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	return nil
}

func ensureDensePair(op string, a, b *mat.Dense) error {
	if a == nil || b == nil {
		return opsErrorf(op, ErrNilOperand)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return shapeErrorf(op, ar, ac, br, bc)
	}

	return nil
}

// ensureCSRDense checks a sparse/dense pair for elementwise work, where the
// shapes must match exactly.
func ensureCSRDense(op string, a *sparse.CSR, b *mat.Dense) error {
	if a == nil || b == nil {
		return opsErrorf(op, ErrNilOperand)
	}
	br, bc := b.Dims()
	if a.Rows() != br || a.Cols() != bc {
		return shapeErrorf(op, a.Rows(), a.Cols(), br, bc)
	}

	return nil
}
