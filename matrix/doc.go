// SPDX-License-Identifier: MIT

// Package matrix converts attribute-bearing graphs to and from dense,
// structured, and sparse adjacency-matrix representations.
//
// What & Why:
//
//	Graphs and matrices are two views of the same adjacency structure. This
//	package provides the bidirectional mapping between a sparse multigraph
//	model (core.Graph, or anything satisfying GraphSource) and numeric
//	matrix encodings:
//
//		• ToDense / FromDense           - dense float64 adjacency (encode+decode)
//		• ToStructured                  - dense matrix of named-field records (encode only)
//		• ToSparse / FromSparse         - sparse triple representation (encode+decode)
//
//	The encode direction is governed by an explicit per-call Options value:
//	node ordering, multi-edge weight reducer (sum/min/max), weight attribute
//	key, and nonedge sentinel. During accumulation every cell is tracked as
//	an explicit unset-or-value pair so that a real zero-weight edge is never
//	confused with "no edge", and min/max reducers are not corrupted by a
//	false zero; unset cells are swept to the nonedge sentinel at the end.
//
//	The decode direction enumerates nonzero cells as candidate edges,
//	creates one node per row index (isolated nodes included), and - for
//	integer-kind matrices targeting a multigraph with WithParallelEdges() -
//	expands each cell value into that many unit-weight parallel edges.
//
// Sparse layouts:
//
//	Four storage layouts are supported for decoding, each with its own
//	triple traversal: COO (coordinate), CSR (row-grouped), CSC
//	(column-grouped), and DOK (key-value, ordered). Any other layout
//	participates by implementing SparseMatrix or converting to COO first.
//
// Determinism:
//
//	Node order defaults to the graph's insertion order; edge iteration is
//	the graph's stable edge order. Identical inputs and options always
//	produce identical matrices.
//
// Errors:
//
//	All failure modes are package-level sentinels matched via errors.Is
//	(ErrAmbiguousOrdering, ErrNonSquare, ErrMultigraphUnsupported,
//	ErrUnknownReducer, ErrEmptyGraph, ErrUnknownElementType,
//	ErrMissingField, ...). A failed conversion never returns a partially
//	built graph or matrix.
package matrix
