// SPDX-License-Identifier: MIT

// Package dot - DOT text → core.Graph lowering.

package dot

import (
	"fmt"
	"strconv"

	"github.com/korvyl/gmat/core"
)

// Reserved graph-attribute keys holding the default blocks.
const (
	attrKeyGraph = "graph"
	attrKeyNode  = "node"
	attrKeyEdge  = "edge"
)

// Unmarshal parses a DOT document into a graph.
// Implementation:
//   - Stage 1: parse into the AST (parse failures wrap ErrMalformed).
//   - Stage 2: construct the target. digraph ⇒ directed; the graph permits
//     parallel edges unless the document is strict.
//   - Stage 3: lower statements in document order. Default blocks land in
//     the graph attribute map under "graph"/"node"/"edge"; top-level
//     assignments merge into the "graph" block; edge chains expand into
//     one edge per hop, each carrying its own copy of the attribute block.
//   - Stage 4: reject edge operators inconsistent with the graph kind
//     ("--" inside digraph and vice versa) as ErrMalformed.
//
// Errors: ErrMalformed.
// Complexity: O(len(data) + statements).
func Unmarshal(data []byte) (*core.Graph, error) {
	return UnmarshalString(string(data))
}

// UnmarshalString is Unmarshal for a string input.
func UnmarshalString(text string) (*core.Graph, error) {
	ast, err := dotParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("dot.Unmarshal: %w: %v", ErrMalformed, err)
	}

	directed := ast.Directed == "digraph"
	gOpts := []core.GraphOption{core.WithDirected(directed), core.WithName(ast.Name)}
	if !ast.Strict {
		gOpts = append(gOpts, core.WithMultiEdges())
	}
	g := core.NewGraph(gOpts...)

	wantOp := "--"
	if directed {
		wantOp = "->"
	}
	for _, stmt := range ast.Stmts {
		switch {
		case stmt.Defaults != nil:
			mergeDefaults(g, stmt.Defaults.Target, stmt.Defaults.Attrs)
		case stmt.Assign != nil:
			mergeDefaults(g, attrKeyGraph, []*dotAttr{stmt.Assign})
		case stmt.Edge != nil:
			if err = addChain(g, stmt.Edge, wantOp); err != nil {
				return nil, err
			}
		case stmt.Node != nil:
			if err = g.AddNodeAttrs(stmt.Node.ID, attrMap(stmt.Node.Attrs)); err != nil {
				return nil, fmt.Errorf("dot.Unmarshal: node %q: %w", stmt.Node.ID, err)
			}
		}
	}

	return g, nil
}

// mergeDefaults folds a default block into the reserved graph attribute,
// creating the map on first use.
func mergeDefaults(g *core.Graph, target string, attrs []*dotAttr) {
	var dst map[string]any
	if v, ok := g.Attr(target); ok {
		dst, _ = v.(map[string]any)
	}
	if dst == nil {
		dst = make(map[string]any, len(attrs))
	}
	for _, a := range attrs {
		dst[a.Key] = attrValue(a.Value)
	}
	g.SetAttr(target, dst)
}

// addChain expands an edge chain into one edge per hop.
func addChain(g *core.Graph, e *dotEdgeStmt, wantOp string) error {
	from := e.From
	for _, hop := range e.Hops {
		if hop.Op != wantOp {
			return fmt.Errorf("dot.Unmarshal: edge %q %s %q: %w: operator mismatch",
				from, hop.Op, hop.To, ErrMalformed)
		}
		// Each hop owns its attribute map; AddEdge copies anyway, but an
		// explicit per-hop map keeps later mutation of one edge isolated.
		if err := g.AddEdge(from, hop.To, attrMap(e.Attrs)); err != nil {
			return fmt.Errorf("dot.Unmarshal: edge %q->%q: %w", from, hop.To, err)
		}
		from = hop.To
	}

	return nil
}

// attrMap lowers an attribute block into a fresh map (nil for empty blocks).
func attrMap(attrs []*dotAttr) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for _, a := range attrs {
		out[a.Key] = attrValue(a.Value)
	}

	return out
}

// attrValue types a raw attribute value: numeric-looking text becomes
// float64 so the matrix codecs can read weights directly; everything else
// stays a string.
func attrValue(raw string) any {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}

	return raw
}
