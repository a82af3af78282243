// Package decades is the runtime support library for sparse numerical
// kernels — container formats, format conversions, elementwise and
// matrix-vector math, graph analysis, and tiled parallel execution.
//
// 🚀 What is decades?
//
//	A compact, kernel-oriented library that brings together:
//		• Sparse containers: CSR, CSC, COO and strict-upper Triangular
//		• Conversions: every format pair, duplicates preserved
//		• Arithmetic: add, subtract, divide, Hadamard, matrix-vector, scale
//		• Graph analysis: Kruskal spanning forests, sorted-list intersection
//		• Tiling: counting barriers and phased worker pools
//		• Kernel metadata: per-container argument signatures for codegen
//
// ✨ Why decades?
//
//   - Format-explicit – every operation names the pair it accepts
//   - Predictable sparsity – union, intersection and pattern-carry rules
//     are part of each operation's contract
//   - Pure Go math core – dense interop through gonum, nothing hidden
//
// Everything is organized under five subpackages:
//
//	sparse/ — CSR, CSC, COO, Triangular containers & conversions
//	ops/    — per-format-pair arithmetic + the any-typed dispatchers
//	graph/  — adjacency & all-pairs wrappers, spanning forests
//	tile/   — Barrier & Pool for phased multi-threaded kernels
//	kernel/ — signature descriptors consumed by the kernel compiler
//
// Quick sketch:
//
//	a, _ := sparse.NewCSR(...)   // build a container
//	b, _ := sparse.CSRToCSC(a)   // convert it
//	y, _ := ops.DotCSRVec(a, x)  // run a kernel primitive
//
// Dive into the subpackage docs for contracts, error taxonomy and
// complexity notes.
//
//	go get github.com/nmtrmail/decades-documentation
package decades
