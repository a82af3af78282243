package sparse_test

import (
	"fmt"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// ExampleCOOToCSR compresses loose coordinate triples into row-grouped form.
func ExampleCOOToCSR() {
	// Triples of the matrix
	//	[0 7 0]
	//	[5 0 9]
	// given in arbitrary order.
	coo, err := sparse.NewCOO(2, 3,
		[]int{1, 0, 1},
		[]int{2, 1, 0},
		[]float64{9, 7, 5},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	csr, err := sparse.COOToCSR(coo)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("indptr: ", csr.Indptr())
	fmt.Println("indices:", csr.Indices())
	fmt.Println("data:   ", csr.Data())
	// Output:
	// indptr:  [0 1 3]
	// indices: [1 2 0]
	// data:    [7 9 5]
}

// ExampleCSR_EliminateZeros drops explicitly stored zeros while leaving
// structural zeros (never stored) untouched.
func ExampleCSR_EliminateZeros() {
	m, err := sparse.NewCSR(2, 3,
		[]int{0, 2, 4},
		[]int{0, 1, 0, 2},
		[]float64{1, 0, 0, 4},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	e := m.EliminateZeros()
	fmt.Println("nnz before:", m.NNZ())
	fmt.Println("nnz after: ", e.NNZ())
	fmt.Println("data:      ", e.Data())
	// Output:
	// nnz before: 4
	// nnz after:  2
	// data:       [1 4]
}

// ExampleTransposeCSR swaps the row and column roles of a CSR matrix.
func ExampleTransposeCSR() {
	m, err := sparse.NewCSR(2, 3,
		[]int{0, 2, 3},
		[]int{0, 2, 1},
		[]float64{1, 2, 3},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tr, err := sparse.TransposeCSR(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("shape: %dx%d\n", tr.Rows(), tr.Cols())
	fmt.Println("indptr: ", tr.Indptr())
	fmt.Println("indices:", tr.Indices())
	fmt.Println("data:   ", tr.Data())
	// Output:
	// shape: 3x2
	// indptr:  [0 1 2 3]
	// indices: [0 1 0]
	// data:    [1 3 2]
}
