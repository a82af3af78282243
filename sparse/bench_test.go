package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/nmtrmail/decades-documentation/sparse"
)

// buildRandomCOO generates nnz random triples in an n x n shape with a fixed
// seed so every run benches the same workload.
func buildRandomCOO(b *testing.B, n, nnz int) *sparse.COO {
	b.Helper()
	r := rand.New(rand.NewSource(42))

	rowIdx := make([]int, nnz)
	colIdx := make([]int, nnz)
	data := make([]float64, nnz)
	for k := 0; k < nnz; k++ {
		rowIdx[k] = r.Intn(n)
		colIdx[k] = r.Intn(n)
		data[k] = r.Float64()
	}

	m, err := sparse.NewCOO(n, n, rowIdx, colIdx, data)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// BenchmarkCOOToCSR measures compression of 50k random triples in 1000x1000.
func BenchmarkCOOToCSR(b *testing.B) {
	coo := buildRandomCOO(b, 1000, 50_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sparse.COOToCSR(coo)
	}
}

// BenchmarkTransposeCSR measures recompression onto the opposite axis.
func BenchmarkTransposeCSR(b *testing.B) {
	coo := buildRandomCOO(b, 1000, 50_000)
	csr, err := sparse.COOToCSR(coo)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sparse.TransposeCSR(csr)
	}
}

// BenchmarkCSR_EliminateZeros measures the compaction pass with one quarter
// of the stored entries set to zero.
func BenchmarkCSR_EliminateZeros(b *testing.B) {
	coo := buildRandomCOO(b, 1000, 50_000)
	data := coo.Data()
	for k := range data {
		if k%4 == 0 {
			data[k] = 0
		}
	}
	csr, err := sparse.COOToCSR(coo)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = csr.EliminateZeros()
	}
}
