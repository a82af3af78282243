package ops

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// Optional dispatchers over the per-pair specializations. These exist as
// call-site sugar for code holding operands behind any; the per-pair
// functions remain the primary API and nothing here sits in a hot loop.
// Pairs without a specialization report ErrUnsupportedPair.

// Add dispatches to the addition specialization for the operand pair.
func Add(a, b any) (any, error) {
	switch x := a.(type) {
	case *sparse.CSR:
		switch y := b.(type) {
		case *sparse.CSR:
			return AddCSRCSR(x, y)
		case *mat.Dense:
			return AddCSRDense(x, y)
		}
	case *sparse.CSC:
		if y, ok := b.(*sparse.CSC); ok {
			return AddCSCCSC(x, y)
		}
	case *sparse.COO:
		if y, ok := b.(*sparse.COO); ok {
			return AddCOOCOO(x, y)
		}
	case *mat.Dense:
		switch y := b.(type) {
		case *mat.Dense:
			return AddDenseDense(x, y)
		case *sparse.CSR:
			return AddDenseCSR(x, y)
		}
	}

	return nil, unsupportedPair("ops.Add", a, b)
}

// Sub dispatches to the subtraction specialization for the operand pair.
func Sub(a, b any) (any, error) {
	switch x := a.(type) {
	case *sparse.CSR:
		switch y := b.(type) {
		case *sparse.CSR:
			return SubCSRCSR(x, y)
		case *mat.Dense:
			return SubCSRDense(x, y)
		}
	case *sparse.CSC:
		if y, ok := b.(*sparse.CSC); ok {
			return SubCSCCSC(x, y)
		}
	case *sparse.COO:
		if y, ok := b.(*sparse.COO); ok {
			return SubCOOCOO(x, y)
		}
	case *mat.Dense:
		switch y := b.(type) {
		case *mat.Dense:
			return SubDenseDense(x, y)
		case *sparse.CSR:
			return SubDenseCSR(x, y)
		}
	}

	return nil, unsupportedPair("ops.Sub", a, b)
}

// Div dispatches to the division specialization for the operand pair.
func Div(a, b any) (any, error) {
	switch x := a.(type) {
	case *sparse.CSR:
		switch y := b.(type) {
		case *sparse.CSR:
			return DivCSRCSR(x, y)
		case *mat.Dense:
			return DivCSRDense(x, y)
		}
	case *mat.Dense:
		if y, ok := b.(*mat.Dense); ok {
			return DivDenseDense(x, y)
		}
	}

	return nil, unsupportedPair("ops.Div", a, b)
}

// Hadamard dispatches to the entrywise-product specialization.
func Hadamard(a, b any) (any, error) {
	switch x := a.(type) {
	case *sparse.CSR:
		switch y := b.(type) {
		case *sparse.CSR:
			return HadamardCSRCSR(x, y)
		case *mat.Dense:
			return HadamardCSRDense(x, y)
		}
	case *mat.Dense:
		if y, ok := b.(*mat.Dense); ok {
			return HadamardDenseDense(x, y)
		}
	}

	return nil, unsupportedPair("ops.Hadamard", a, b)
}

// Dot dispatches to the product specialization. Sparse×sparse products have
// no specialization and report ErrUnsupportedPair.
func Dot(a, b any) (any, error) {
	switch x := a.(type) {
	case *sparse.CSR:
		switch y := b.(type) {
		case *mat.VecDense:
			return DotCSRVec(x, y)
		case *mat.Dense:
			return DotCSRDense(x, y)
		}
	case *sparse.CSC:
		if y, ok := b.(*mat.VecDense); ok {
			return DotCSCVec(x, y)
		}
	case *mat.Dense:
		switch y := b.(type) {
		case *mat.Dense:
			return DotDenseDense(x, y)
		case *mat.VecDense:
			return DotDenseVec(x, y)
		}
	}

	return nil, unsupportedPair("ops.Dot", a, b)
}

// Scale dispatches to the scalar-multiply specialization for the container.
func Scale(m any, alpha float64) (any, error) {
	switch x := m.(type) {
	case *sparse.CSR:
		return ScaleCSR(x, alpha)
	case *sparse.CSC:
		return ScaleCSC(x, alpha)
	case *sparse.COO:
		return ScaleCOO(x, alpha)
	case *sparse.Triangular:
		return ScaleTriangular(x, alpha)
	case *mat.Dense:
		return ScaleDense(x, alpha)
	}

	return nil, fmt.Errorf("ops.Scale: %T: %w", m, ErrUnsupportedPair)
}

// unsupportedPair wraps ErrUnsupportedPair with both operand types.
func unsupportedPair(op string, a, b any) error {
	return fmt.Errorf("%s: %T and %T: %w", op, a, b, ErrUnsupportedPair)
}
