// SPDX-License-Identifier: MIT

// Package dot bridges the core graph container and the DOT text language.
//
// What this package provides:
//   - Marshal / MarshalString: render a graph as DOT. The strict keyword is
//     emitted exactly when the graph has no parallel edges and no
//     self-loops; directed graphs render as digraph with "->" edges,
//     undirected as graph with "--".
//   - Unmarshal / UnmarshalString: parse a DOT document into a graph. The
//     result permits parallel edges unless the document is strict; edge
//     chains (a -> b -> c) expand into one edge per hop.
//
// Graph-level default blocks (graph [...], node [...], edge [...]) survive
// round-trips in the graph's attribute map under the reserved keys "graph",
// "node" and "edge". Top-level assignments (rankdir=LR;) merge into the
// "graph" block.
//
// Attribute values parse as float64 when they look numeric, otherwise they
// stay strings. Rendering is deterministic: nodes and edges in insertion
// order, attribute keys sorted.
//
// The dialect is the plain graph/digraph subset: subgraphs, ports and HTML
// strings are out of scope.
package dot
