// SPDX-License-Identifier: MIT
// Package matrix - sparse adjacency codec (graph → COO, SparseMatrix → graph).
//
// Deliverables:
//  1. Encoding emits one coordinate triple per edge and leans on COO's
//     duplicate-summing materialization: parallel multigraph edges become
//     duplicate (row, col) triples, so their weights sum implicitly.
//  2. Undirected encodes symmetrize by also emitting the swapped triple,
//     then cancel the doubled diagonal with one (i, i, -w) triple per
//     self-loop - a self-loop counts once, not twice.
//  3. A graph with zero nodes has no meaningful shape and is rejected; a
//     node-only graph encodes to an n×n matrix with zero triples.
//  4. Decoding consumes any SparseMatrix through its triple traversal, so
//     all four layouts (and foreign implementations) decode identically.

package matrix

import (
	"fmt"
	"strconv"

	"github.com/korvyl/gmat/core"
)

// ToSparse encodes a graph as a coordinate sparse matrix. Convert the
// result with ToCSR/ToCSC/ToDOK/ToDense to reach the other layouts.
// Implementation:
//   - Stage 1: validate the graph; resolve ordering and index; reject an
//     empty ordering (ErrEmptyGraph) - a 0×0 sparse matrix has no shape
//     worth returning.
//   - Stage 2: emit (i, j, weight) per edge with both endpoints present.
//     Parallel edges emit duplicate triples; summation happens when the
//     matrix is materialized.
//   - Stage 3: undirected graphs also emit (j, i, weight), plus the
//     (i, i, -weight) diagonal correction for each self-loop.
//
// Options honored: WithNodeOrder, WithWeightKey / WithoutWeightKey,
// WithDefaultWeight.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, ErrAmbiguousOrdering, ErrInvalidWeight.
//
// Complexity:
//   - Time O(n + E), Space O(E) triples (2E + loops for undirected).
func ToSparse(g GraphSource, opts ...Option) (*COO, error) {
	if g == nil {
		return nil, fmt.Errorf("ToSparse: %w", ErrGraphNil)
	}
	o := gatherOptions(opts...)

	order := nodeOrdering(g, o)
	idx, err := NewNodeIndex(order)
	if err != nil {
		return nil, fmt.Errorf("ToSparse: %w", err)
	}
	n := len(order)
	if n == 0 {
		return nil, fmt.Errorf("ToSparse: %w", ErrEmptyGraph)
	}

	undirected := !g.Directed()
	edges := g.Edges()
	row := make([]int, 0, len(edges))
	col := make([]int, 0, len(edges))
	val := make([]float64, 0, len(edges))

	var (
		e    *core.Edge
		i, j int
		ok   bool
		w    float64
	)
	for _, e = range edges {
		if i, ok = idx[e.From]; !ok {
			continue // endpoint excluded by ordering: induced subgraph
		}
		if j, ok = idx[e.To]; !ok {
			continue
		}
		if w, err = weightOf(e.Attrs, o); err != nil {
			return nil, fmt.Errorf("ToSparse: edge %q->%q: %w", e.From, e.To, err)
		}
		row = append(row, i)
		col = append(col, j)
		val = append(val, w)
		if undirected {
			// Symmetrize; the diagonal correction keeps a self-loop's
			// weight at w instead of the doubled 2w the mirror creates.
			row = append(row, j)
			col = append(col, i)
			val = append(val, w)
			if i == j {
				row = append(row, i)
				col = append(col, i)
				val = append(val, -w)
			}
		}
	}

	return &COO{rows: n, cols: n, row: row, col: col, val: val}, nil
}

// FromSparse decodes a sparse adjacency matrix into a graph. Any
// SparseMatrix works: the decoder only consumes the shape and the triple
// traversal, so all four layouts decode through the same path.
// Implementation:
//   - Stage 1: require a square matrix and a known element kind.
//   - Stage 2: create one node per row index, "0".."n-1" (isolated nodes
//     included).
//   - Stage 3: collapse the stored triples to one summed value per
//     (row, col) pair - duplicates are an encoding artifact, never extra
//     edges - then emit edges. Integer-kind matrices targeting a
//     multigraph with WithParallelEdges() expand each value into that many
//     unit-weight parallel edges; otherwise one edge per pair carrying
//     the value cast to the declared kind.
//   - Stage 4: undirected multigraph targets keep only pairs with
//     row ≤ col so the symmetric half cannot duplicate edges.
//
// Precondition (documented, not validated): when the target is an
// undirected multigraph, the stored triples must be symmetric - entries
// below the diagonal are dropped without comparison against their mirror.
//
// Options honored: WithDirected/WithUndirected, WithMultigraph,
// WithParallelEdges, WithDType, WithEdgeAttr.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnknownElementType.
//
// Complexity:
//   - Time O(n + nnz + E'), Space O(n + E') for the produced graph.
func FromSparse(a SparseMatrix, opts ...Option) (*core.Graph, error) {
	if a == nil {
		return nil, fmt.Errorf("FromSparse: %w", ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	n, m := a.Shape()
	if n != m {
		return nil, fmt.Errorf("FromSparse: shape %dx%d: %w", n, m, ErrNonSquare)
	}
	if _, err := o.dtype.attrValue(0); err != nil {
		return nil, fmt.Errorf("FromSparse: dtype %d: %w", o.dtype, err)
	}

	g := newTargetGraph(o)
	for i := 0; i < n; i++ {
		if err := g.AddNode(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("FromSparse: %w", err)
		}
	}

	expand := o.parallelEdges && o.multigraph && o.dtype.integer()
	skipLower := o.multigraph && !o.directed
	row, col, val := ToCOO(a).collapse()
	for k := range val {
		if skipLower && row[k] > col[k] {
			continue // symmetric half of an undirected multigraph
		}
		if err := emitEdges(g, row[k], col[k], val[k], expand, o); err != nil {
			return nil, fmt.Errorf("FromSparse: entry (%d,%d): %w", row[k], col[k], err)
		}
	}

	return g, nil
}
