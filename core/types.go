// SPDX-License-Identifier: MIT

// Package core: Graph, Edge, GraphOption, sentinel errors, and the NewGraph
// constructor. Methods live in methods.go.

package core

import (
	"errors"
	"sync"
)

// ErrEmptyNodeID indicates that a node identifier is the empty string.
var ErrEmptyNodeID = errors.New("core: node id is empty")

// Edge represents a connection between two nodes.
//
// From and To are node identifiers; for undirected graphs the pair is
// unordered and (From, To) merely records insertion orientation. Attrs is
// the edge's attribute map; it is owned by the edge and never shared with
// another edge instance.
type Edge struct {
	// From is the source node ID (first endpoint for undirected graphs).
	From string

	// To is the destination node ID (second endpoint for undirected graphs).
	To string

	// Attrs stores arbitrary named attribute values for this edge.
	Attrs map[string]any
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges (true = directed).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same node pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.multi = true }
}

// WithName sets the graph-level name (used by the DOT bridge).
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// Graph is the in-memory attribute multigraph.
//
// Nodes and edges iterate in insertion order. Per-edge attribute maps are
// independent: AddEdge copies the supplied map. Self-loops are permitted
// unconditionally. The directed and multi flags are fixed at construction.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	// Configuration flags (immutable after construction).
	directed bool // edge orientation matters
	multi    bool // parallel edges permitted

	// Graph-level metadata (name and attribute map, e.g. DOT defaults).
	name  string
	attrs map[string]any

	// Storage. nodeOrder preserves insertion order; nodeAttrs holds
	// per-node attribute maps keyed by node ID.
	nodeOrder []string
	nodeAttrs map[string]map[string]any

	// edges in insertion order. pairIndex maps a normalized endpoint pair
	// to its position in edges for non-multigraphs (idempotent AddEdge).
	edges     []*Edge
	pairIndex map[[2]string]int
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected and rejects parallel edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		attrs:     make(map[string]any),
		nodeAttrs: make(map[string]map[string]any),
		pairIndex: make(map[[2]string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
