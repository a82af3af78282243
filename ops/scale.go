package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// Scalar multiplication per storage format. Each returns a fresh container
// with every stored value scaled by alpha; the stored pattern never changes,
// so scaling by zero leaves explicit zeros behind (EliminateZeros cleans up).

// ScaleCSR returns alpha * m as a fresh CSR.
// Complexity: O(rows + nnz).
func ScaleCSR(m *sparse.CSR, alpha float64) (*sparse.CSR, error) {
	if m == nil {
		return nil, opsErrorf("ops.ScaleCSR", ErrNilOperand)
	}

	out := m.Clone()
	scaleValues(out.Data(), alpha)

	return out, nil
}

// ScaleCSC returns alpha * m as a fresh CSC.
func ScaleCSC(m *sparse.CSC, alpha float64) (*sparse.CSC, error) {
	if m == nil {
		return nil, opsErrorf("ops.ScaleCSC", ErrNilOperand)
	}

	out := m.Clone()
	scaleValues(out.Data(), alpha)

	return out, nil
}

// ScaleCOO returns alpha * m as a fresh COO.
func ScaleCOO(m *sparse.COO, alpha float64) (*sparse.COO, error) {
	if m == nil {
		return nil, opsErrorf("ops.ScaleCOO", ErrNilOperand)
	}

	out := m.Clone()
	scaleValues(out.Data(), alpha)

	return out, nil
}

// ScaleTriangular returns alpha * m as a fresh Triangular.
func ScaleTriangular(m *sparse.Triangular, alpha float64) (*sparse.Triangular, error) {
	if m == nil {
		return nil, opsErrorf("ops.ScaleTriangular", ErrNilOperand)
	}

	out := m.Clone()
	scaleValues(out.Data(), alpha)

	return out, nil
}

// ScaleDense returns alpha * m as a fresh dense matrix via gonum.
func ScaleDense(m *mat.Dense, alpha float64) (*mat.Dense, error) {
	if m == nil {
		return nil, opsErrorf("ops.ScaleDense", ErrNilOperand)
	}

	var out mat.Dense
	out.Scale(alpha, m)

	return &out, nil
}

func scaleValues(data []float64, alpha float64) {
	for k := range data {
		data[k] *= alpha
	}
}
