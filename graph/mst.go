package graph

import (
	"fmt"
	"math"
	"sort"
)

// Edge is one selected spanning edge with its weight.
type Edge struct {
	U, V   int
	Weight float64
}

// MinimumSpanningTree runs Kruskal's algorithm over the stored adjacency
// entries and returns the selected edges with their total weight.
//
// Every stored off-diagonal entry (u,v,w) is a candidate edge, so an
// undirected graph stored symmetrically needs no pre-deduplication: the
// mirrored copy reaches the cycle check after its twin and is skipped.
// Candidates sort ascending by weight with a stable sort, so equal weights
// keep their stored order and the result is deterministic.
//
// A disconnected graph is not an error: the result is the minimum spanning
// forest, one tree per component, with len(edges) == nodes - components.
// An empty graph yields no edges and total 0.
//
// NaN or infinite weights abort with ErrBadWeight before any selection.
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func MinimumSpanningTree(g *Graph) ([]Edge, float64, error) {
	const op = "graph.MinimumSpanningTree"
	if g == nil {
		return nil, 0, graphErrorf(op, ErrNilGraph)
	}

	n := g.Nodes()
	adj := g.Adjacency()
	indptr, indices, data := adj.Indptr(), adj.Indices(), adj.Data()

	// 1. Collect candidates in stored order, skipping self-loops.
	candidates := make([]Edge, 0, adj.NNZ())
	for u := 0; u < n; u++ {
		for p := indptr[u]; p < indptr[u+1]; p++ {
			v := indices[p]
			if v == u {
				continue
			}
			w := data[p]
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, 0, fmt.Errorf("%s: edge (%d,%d) weight %v: %w", op, u, v, w, ErrBadWeight)
			}
			candidates = append(candidates, Edge{U: u, V: v, Weight: w})
		}
	}

	// 2. Sort ascending by weight; stable keeps ties in stored order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	// 3. Union-find over array-backed parent/rank.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression: point u at its grandparent
			u = parent[u]
		}

		return u
	}

	// 4. Select edges joining distinct components; early exit at n-1 kept.
	forest := make([]Edge, 0, max(n-1, 0))
	var total float64
	for _, e := range candidates {
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}

		// Union by rank: attach the shallower root under the deeper one.
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		forest = append(forest, e)
		total += e.Weight
		if len(forest) == n-1 {
			break
		}
	}

	// Fewer than n-1 selections means multiple components; the forest is
	// the documented result, not a failure.
	return forest, total, nil
}
