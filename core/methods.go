// SPDX-License-Identifier: MIT

// Package core: Graph methods. Every exported method documents complexity
// and locking. Reads return snapshots; stored maps are never handed out.

package core

import "fmt"

// copyAttrs returns an independent shallow copy of attrs (nil-safe).
// Complexity: O(len(attrs)).
func copyAttrs(attrs map[string]any) map[string]any {
	cp := make(map[string]any, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}

	return cp
}

// pairOf builds the normalized endpoint key for pairIndex lookups.
// Directed graphs use the ordered pair; undirected graphs normalize to
// {min,max} so (u,v) and (v,u) address the same edge.
// Complexity: O(1).
func (g *Graph) pairOf(u, v string) [2]string {
	if g.directed || u <= v {
		return [2]string{u, v}
	}

	return [2]string{v, u}
}

// Directed reports whether edges are oriented.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Multigraph reports whether parallel edges are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.multi
}

// Name returns the graph-level name.
// Complexity: O(1).
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// SetName assigns the graph-level name.
// Complexity: O(1).
func (g *Graph) SetName(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.name = name
}

// Attr returns the graph-level attribute stored under key.
// Complexity: O(1).
func (g *Graph) Attr(key string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.attrs[key]

	return v, ok
}

// SetAttr stores a graph-level attribute (e.g. the reserved DOT default
// blocks under "graph", "node", "edge").
// Complexity: O(1).
func (g *Graph) SetAttr(key string, value any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attrs[key] = value
}

// AddNode inserts a node if absent. Adding an existing node is a no-op.
// Returns ErrEmptyNodeID for the empty identifier.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return fmt.Errorf("AddNode: %w", ErrEmptyNodeID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id)

	return nil
}

// addNodeLocked inserts id into node storage; caller holds g.mu.
func (g *Graph) addNodeLocked(id string) {
	if _, ok := g.nodeAttrs[id]; ok {
		return
	}
	g.nodeAttrs[id] = make(map[string]any)
	g.nodeOrder = append(g.nodeOrder, id)
}

// AddNodeAttrs inserts the node if absent and merges attrs into its
// attribute map (later values overwrite earlier ones per key).
// Complexity: O(len(attrs)).
func (g *Graph) AddNodeAttrs(id string, attrs map[string]any) error {
	if id == "" {
		return fmt.Errorf("AddNodeAttrs: %w", ErrEmptyNodeID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(id)
	dst := g.nodeAttrs[id]
	for k, v := range attrs {
		dst[k] = v
	}

	return nil
}

// HasNode reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodeAttrs[id]

	return ok
}

// Nodes returns node identifiers in insertion order (fresh slice).
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// NodeAttrs returns a copy of the node's attribute map, or false if the
// node does not exist.
// Complexity: O(len(attrs)).
func (g *Graph) NodeAttrs(id string) (map[string]any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	attrs, ok := g.nodeAttrs[id]
	if !ok {
		return nil, false
	}

	return copyAttrs(attrs), true
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodeOrder)
}

// AddEdge inserts an edge between u and v carrying a copy of attrs, creating
// missing endpoints on the fly.
//
// Multigraphs append unconditionally. Non-multigraphs are idempotent per
// endpoint pair (unordered when undirected): re-adding an existing pair
// merges attrs into the stored edge instead of creating a second edge. The
// dense decode path relies on this overwrite behavior for the mirrored half
// of symmetric matrices.
//
// Returns ErrEmptyNodeID when either endpoint is empty.
// Complexity: O(1) amortized plus O(len(attrs)).
func (g *Graph) AddEdge(u, v string, attrs map[string]any) error {
	if u == "" || v == "" {
		return fmt.Errorf("AddEdge %q->%q: %w", u, v, ErrEmptyNodeID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(u)
	g.addNodeLocked(v)

	if !g.multi {
		key := g.pairOf(u, v)
		if at, ok := g.pairIndex[key]; ok {
			// Existing pair: merge attributes into the stored edge.
			dst := g.edges[at].Attrs
			for k, val := range attrs {
				dst[k] = val
			}

			return nil
		}
		g.pairIndex[key] = len(g.edges)
	}
	g.edges = append(g.edges, &Edge{From: u, To: v, Attrs: copyAttrs(attrs)})

	return nil
}

// AddEdges inserts every edge of the sequence via AddEdge, stopping at the
// first error.
// Complexity: O(len(edges)).
func (g *Graph) AddEdges(edges []Edge) error {
	for i := range edges {
		if err := g.AddEdge(edges[i].From, edges[i].To, edges[i].Attrs); err != nil {
			return fmt.Errorf("AddEdges[%d]: %w", i, err)
		}
	}

	return nil
}

// Edges returns the edge list in insertion order (fresh slice of the stored
// edge pointers). Callers must treat the edges as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// SelfLoops returns the edges whose endpoints coincide, in insertion order.
// Complexity: O(E).
func (g *Graph) SelfLoops() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []*Edge
	for _, e := range g.edges {
		if e.From == e.To {
			out = append(out, e)
		}
	}

	return out
}

// NumberOfEdges returns the edge count (parallel edges counted separately).
// Complexity: O(1).
func (g *Graph) NumberOfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NumberOfSelfLoops returns the number of self-loop edges.
// Complexity: O(E).
func (g *Graph) NumberOfSelfLoops() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, e := range g.edges {
		if e.From == e.To {
			n++
		}
	}

	return n
}
