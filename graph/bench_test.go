package graph_test

import (
	"math/rand"
	"testing"

	"github.com/nmtrmail/decades-documentation/graph"
	"github.com/nmtrmail/decades-documentation/sparse"
)

// buildRandomGraph chains n nodes for connectivity, then adds extra random
// edges, each mirrored into both endpoint rows. Seeded for reproducibility.
func buildRandomGraph(b *testing.B, n, extra int) *graph.Graph {
	b.Helper()
	r := rand.New(rand.NewSource(42))

	rowIdx := make([]int, 0, 2*(n-1+extra))
	colIdx := make([]int, 0, 2*(n-1+extra))
	data := make([]float64, 0, 2*(n-1+extra))
	addEdge := func(u, v int, w float64) {
		rowIdx = append(rowIdx, u, v)
		colIdx = append(colIdx, v, u)
		data = append(data, w, w)
	}

	// 1. Chain V0-V1-...-V(n-1) so the graph is connected.
	for i := 1; i < n; i++ {
		addEdge(i-1, i, 1+r.Float64()*9)
	}

	// 2. Extra random edges, skipping self-loops.
	for k := 0; k < extra; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		addEdge(u, v, 1+r.Float64()*99)
		k++
	}

	coo, err := sparse.NewCOO(n, n, rowIdx, colIdx, data)
	if err != nil {
		b.Fatal(err)
	}
	adj, err := sparse.COOToCSR(coo)
	if err != nil {
		b.Fatal(err)
	}
	g, err := graph.NewGraph(adj)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkMinimumSpanningTree measures Kruskal on 1000 nodes with about
// 5000 undirected edges.
func BenchmarkMinimumSpanningTree(b *testing.B) {
	g := buildRandomGraph(b, 1000, 4000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := graph.MinimumSpanningTree(g); err != nil {
			b.Fatal(err)
		}
	}
}
