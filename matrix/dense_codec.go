// SPDX-License-Identifier: MIT
// Package matrix - dense adjacency codec (graph → Dense, Dense → graph).
//
// Deliverables:
//  1. Unset-tagged accumulation: cells start as "no data", not as the
//     nonedge value, so zero-weight edges survive and min/max reducers are
//     never corrupted by a phantom zero. The sweep to the nonedge sentinel
//     happens once, at the end.
//  2. Multigraph encodes combine parallel-edge weights via the configured
//     reducer; simple-graph encodes direct-assign (one edge per pair).
//  3. Undirected encodes mirror [u,v] into [v,u]; a self-loop occupies
//     exactly one diagonal cell and is NOT doubled.
//  4. Partial orderings yield the induced subgraph: edges touching excluded
//     nodes are silently dropped, never an error.
//  5. Decodes create one node per row index (isolated nodes included) and,
//     for integer matrices targeting multigraphs with WithParallelEdges(),
//     expand cell values into that many unit-weight parallel edges.

package matrix

import (
	"fmt"
	"strconv"

	"github.com/korvyl/gmat/core"
)

// ToDense encodes a graph as a dense adjacency matrix.
// Implementation:
//   - Stage 1: validate graph and reducer; resolve node ordering and build
//     the node index (ErrAmbiguousOrdering fires before allocation).
//   - Stage 2: allocate an n×n accumulation grid of unset cells.
//   - Stage 3: fold every edge with both endpoints in the ordering:
//     multigraphs accumulate via the reducer, simple graphs direct-assign;
//     undirected graphs mirror into the transposed cell.
//   - Stage 4: sweep remaining unset cells to the nonedge sentinel.
//
// Options honored: WithNodeOrder, WithReducer, WithWeightKey /
// WithoutWeightKey, WithDefaultWeight, WithNonedge.
//
// Errors:
//   - ErrGraphNil, ErrUnknownReducer, ErrAmbiguousOrdering, ErrInvalidWeight.
//
// Complexity:
//   - Time O(n² + E), Space O(n²).
func ToDense(g GraphSource, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("ToDense: %w", ErrGraphNil)
	}
	o := gatherOptions(opts...)
	if !o.reducer.valid() {
		return nil, fmt.Errorf("ToDense: reducer %d: %w", o.reducer, ErrUnknownReducer)
	}

	order := nodeOrdering(g, o)
	idx, err := NewNodeIndex(order)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	n := len(order)

	// Accumulation grid: every slot starts unset ("no data yet").
	cells := make([]cell, n*n)
	undirected := !g.Directed()
	multi := g.Multigraph()

	var (
		e    *core.Edge
		i, j int
		ok   bool
		w    float64
	)
	for _, e = range g.Edges() {
		if i, ok = idx[e.From]; !ok {
			continue // endpoint excluded by ordering: induced subgraph
		}
		if j, ok = idx[e.To]; !ok {
			continue
		}
		if w, err = weightOf(e.Attrs, o); err != nil {
			return nil, fmt.Errorf("ToDense: edge %q->%q: %w", e.From, e.To, err)
		}
		if multi {
			if cells[i*n+j], err = combine(cells[i*n+j], w, o.reducer); err != nil {
				return nil, fmt.Errorf("ToDense: %w", err)
			}
		} else {
			// Simple graph: one edge per pair, direct assignment.
			cells[i*n+j] = cell{val: w, set: true}
		}
		if undirected {
			// Mirror the accumulated value; the diagonal mirrors onto
			// itself, so a self-loop stays a single cell.
			cells[j*n+i] = cells[i*n+j]
		}
	}

	// Sweep: unset slots become the nonedge sentinel.
	out, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	for k, c := range cells {
		if c.set {
			out.data[k] = c.val
		} else {
			out.data[k] = o.nonedge
		}
	}

	return out, nil
}

// FromDense decodes a dense adjacency matrix into a graph.
// Implementation:
//   - Stage 1: require a square matrix and a known element kind.
//   - Stage 2: create one node per row index, "0".."n-1" (isolated nodes
//     included).
//   - Stage 3: enumerate nonzero cells as candidate edges. Integer-kind
//     matrices targeting a multigraph with WithParallelEdges() expand each
//     cell into int(value) unit-weight parallel edges; otherwise one edge
//     per cell carrying the value cast to the declared kind.
//   - Stage 4: undirected multigraph targets keep only cells with row ≤ col
//     so the mirror half cannot duplicate edges.
//
// Precondition (documented, not validated): when the target is an
// undirected multigraph, the input must be symmetric - cells below the
// diagonal are dropped without comparison against their mirror. Simple
// undirected targets instead rely on AddEdge idempotence for the mirrored
// half.
//
// Options honored: WithDirected/WithUndirected, WithMultigraph,
// WithParallelEdges, WithDType, WithEdgeAttr.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnknownElementType.
//
// Complexity:
//   - Time O(n² + E'), Space O(n + E') for the produced graph.
func FromDense(a *Dense, opts ...Option) (*core.Graph, error) {
	if a == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	n, m := a.Shape()
	if n != m {
		return nil, fmt.Errorf("FromDense: shape %dx%d: %w", n, m, ErrNonSquare)
	}
	if _, err := o.dtype.attrValue(0); err != nil {
		return nil, fmt.Errorf("FromDense: dtype %d: %w", o.dtype, err)
	}

	g := newTargetGraph(o)
	for i := 0; i < n; i++ {
		if err := g.AddNode(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("FromDense: %w", err)
		}
	}

	expand := o.parallelEdges && o.multigraph && o.dtype.integer()
	skipLower := o.multigraph && !o.directed
	var (
		i, j, base int
		v          float64
		err        error
	)
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			v = a.data[base+j]
			if v == 0 {
				continue // nonedge (NaN-valued edges survive: NaN != 0)
			}
			if skipLower && i > j {
				continue // mirror half of an undirected multigraph
			}
			if err = emitEdges(g, i, j, v, expand, o); err != nil {
				return nil, fmt.Errorf("FromDense: cell (%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// newTargetGraph builds the decode target with the configured flags.
// Complexity: O(1).
func newTargetGraph(o Options) *core.Graph {
	gOpts := make([]core.GraphOption, 0, 2)
	gOpts = append(gOpts, core.WithDirected(o.directed))
	if o.multigraph {
		gOpts = append(gOpts, core.WithMultiEdges())
	}

	return core.NewGraph(gOpts...)
}

// emitEdges writes the edge(s) for one nonzero cell into the target graph.
// With expansion, the cell value is a non-negative parallel-edge count and
// each emitted edge carries a unit weight of the declared kind; otherwise
// exactly one edge carries the cell value cast to the declared kind.
// Complexity: O(1) without expansion, O(value) with.
func emitEdges(g *core.Graph, row, col int, v float64, expand bool, o Options) error {
	u, w := strconv.Itoa(row), strconv.Itoa(col)
	if expand {
		unit, err := o.dtype.attrValue(1)
		if err != nil {
			return err
		}
		for k := 0; k < int(v); k++ {
			if err = g.AddEdge(u, w, map[string]any{o.edgeAttr: unit}); err != nil {
				return err
			}
		}

		return nil
	}

	av, err := o.dtype.attrValue(v)
	if err != nil {
		return err
	}

	return g.AddEdge(u, w, map[string]any{o.edgeAttr: av})
}
