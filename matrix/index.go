// SPDX-License-Identifier: MIT

// Package matrix: node index construction (node ID → matrix row/col).

package matrix

import "fmt"

// NewNodeIndex maps an ordered node sequence to consecutive positions.
// Implementation:
//   - Stage 1: single pass over order, assigning position = first-seen rank.
//   - Stage 2: a repeated identifier aborts with ErrAmbiguousOrdering
//     (sequence length vs deduplicated size disagree).
//
// Behavior highlights:
//   - Runs before any matrix allocation; a duplicate ordering never costs
//     an n×n buffer.
//
// Returns:
//   - map[string]int of length len(order) on success.
//
// Errors:
//   - ErrAmbiguousOrdering on duplicates.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewNodeIndex(order []string) (map[string]int, error) {
	idx := make(map[string]int, len(order))
	for i, id := range order {
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("NewNodeIndex: node %q repeats: %w", id, ErrAmbiguousOrdering)
		}
		idx[id] = i
	}

	return idx, nil
}

// nodeOrdering resolves the effective ordering: the explicit option when
// supplied, otherwise the graph's natural node iteration order.
// Complexity: O(V) when falling back to the graph.
func nodeOrdering(g GraphSource, o Options) []string {
	if o.nodeOrder != nil {
		return o.nodeOrder
	}

	return g.Nodes()
}
