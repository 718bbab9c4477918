// Package dot_test exercises the DOT bridge: strictness rules, edge chains,
// default blocks, quoting, operator validation, and round-trips.
package dot_test

import (
	"testing"

	"github.com/korvyl/gmat/core"
	"github.com/korvyl/gmat/dot"
	"github.com/stretchr/testify/require"
)

// TestMarshal_NilGraph verifies the nil guard.
func TestMarshal_NilGraph(t *testing.T) {
	t.Parallel()
	_, err := dot.Marshal(nil)
	require.ErrorIs(t, err, dot.ErrGraphNil)
}

// TestMarshal_Strictness emits strict exactly when the graph is simple and
// loop-free.
func TestMarshal_Strictness(t *testing.T) {
	t.Parallel()

	type scenario struct {
		name       string
		build      func(t *testing.T) *core.Graph
		wantStrict bool
	}

	tests := []scenario{
		{
			name: "SimpleNoLoops",
			build: func(t *testing.T) *core.Graph {
				g := core.NewGraph()
				require.NoError(t, g.AddEdge("a", "b", nil))

				return g
			},
			wantStrict: true,
		},
		{
			name: "Multigraph",
			build: func(t *testing.T) *core.Graph {
				return core.NewGraph(core.WithMultiEdges())
			},
			wantStrict: false,
		},
		{
			name: "SelfLoop",
			build: func(t *testing.T) *core.Graph {
				g := core.NewGraph()
				require.NoError(t, g.AddEdge("a", "a", nil))

				return g
			},
			wantStrict: false,
		},
	}

	for _, sc := range tests {
		sc := sc // capture
		t.Run(sc.name, func(t *testing.T) {
			t.Parallel()
			text, err := dot.MarshalString(sc.build(t))
			require.NoError(t, err)
			if sc.wantStrict {
				require.Contains(t, text, "strict graph")
			} else {
				require.NotContains(t, text, "strict")
			}
		})
	}
}

// TestMarshal_Rendering checks headers, default blocks, node and edge lines
// for a directed graph with metadata.
func TestMarshal_Rendering(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithDirected(true), core.WithName("net"))
	g.SetAttr("graph", map[string]any{"rankdir": "LR"})
	g.SetAttr("node", map[string]any{"shape": "box"})
	require.NoError(t, g.AddNodeAttrs("a", map[string]any{"color": "red"}))
	require.NoError(t, g.AddEdge("a", "b", map[string]any{"weight": 2.0}))

	text, err := dot.MarshalString(g)
	require.NoError(t, err)
	require.Contains(t, text, "strict digraph net {")
	require.Contains(t, text, "graph [rankdir=LR];")
	require.Contains(t, text, "node [shape=box];")
	require.Contains(t, text, "a [color=red];")
	require.Contains(t, text, "a -> b [weight=2];")
}

// TestUnmarshal_Basics parses a digraph with a chain, defaults, and a
// top-level assignment.
func TestUnmarshal_Basics(t *testing.T) {
	t.Parallel()
	g, err := dot.UnmarshalString(`
		digraph net {
			rankdir = LR;
			node [shape=box];
			a -> b -> c [weight=2];
			d;
		}`)
	require.NoError(t, err)

	require.True(t, g.Directed())
	require.True(t, g.Multigraph(), "non-strict documents decode as multigraphs")
	require.Equal(t, "net", g.Name())
	require.Equal(t, []string{"a", "b", "c", "d"}, g.Nodes())

	// Chain expands per hop, each hop carrying the block.
	require.Equal(t, 2, g.NumberOfEdges())
	for _, e := range g.Edges() {
		require.Equal(t, 2.0, e.Attrs["weight"])
	}

	raw, ok := g.Attr("graph")
	require.True(t, ok)
	require.Equal(t, map[string]any{"rankdir": "LR"}, raw)
	raw, ok = g.Attr("node")
	require.True(t, ok)
	require.Equal(t, map[string]any{"shape": "box"}, raw)
}

// TestUnmarshal_Strict decodes a strict document as a simple graph.
func TestUnmarshal_Strict(t *testing.T) {
	t.Parallel()
	g, err := dot.UnmarshalString(`strict graph { a -- b; a -- b; }`)
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.False(t, g.Multigraph())
	require.Equal(t, 1, g.NumberOfEdges(), "strict collapses the repeated pair")
}

// TestUnmarshal_Malformed rejects parse failures and operator mismatches.
func TestUnmarshal_Malformed(t *testing.T) {
	t.Parallel()

	type scenario struct {
		name string
		text string
	}

	tests := []scenario{
		{name: "Truncated", text: `digraph {`},
		{name: "NotDot", text: `hello world`},
		{name: "UndirectedOpInDigraph", text: `digraph { a -- b; }`},
		{name: "DirectedOpInGraph", text: `graph { a -> b; }`},
	}

	for _, sc := range tests {
		sc := sc // capture
		t.Run(sc.name, func(t *testing.T) {
			t.Parallel()
			_, err := dot.UnmarshalString(sc.text)
			require.ErrorIs(t, err, dot.ErrMalformed)
		})
	}
}

// TestUnmarshal_QuotedAndComments handles quoted identifiers, escapes, and
// all three comment styles.
func TestUnmarshal_QuotedAndComments(t *testing.T) {
	t.Parallel()
	g, err := dot.UnmarshalString(`
		// line comment
		graph "my graph" {
			# shell comment
			"node one" -- "two \"quoted\""; /* block
			comment */
		}`)
	require.NoError(t, err)
	require.Equal(t, "my graph", g.Name())
	require.Equal(t, []string{"node one", `two "quoted"`}, g.Nodes())
}

// TestDot_RoundTrip marshals a graph, parses it back, and compares nodes,
// edges, attributes, and metadata.
func TestDot_RoundTrip(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithName("rt"))
	g.SetAttr("graph", map[string]any{"rankdir": "LR"})
	require.NoError(t, g.AddNodeAttrs("x y", map[string]any{"label": "X Y"}))
	require.NoError(t, g.AddEdge("x y", "z", map[string]any{"weight": 1.5}))
	require.NoError(t, g.AddEdge("x y", "z", map[string]any{"weight": 2.5}))
	require.NoError(t, g.AddEdge("z", "z", nil))

	text, err := dot.MarshalString(g)
	require.NoError(t, err)

	back, err := dot.UnmarshalString(text)
	require.NoError(t, err)
	require.Equal(t, "rt", back.Name())
	require.True(t, back.Directed())
	require.True(t, back.Multigraph())
	require.Equal(t, g.Nodes(), back.Nodes())
	require.Equal(t, g.NumberOfEdges(), back.NumberOfEdges())
	require.Equal(t, 1, back.NumberOfSelfLoops())

	attrs, ok := back.NodeAttrs("x y")
	require.True(t, ok)
	require.Equal(t, "X Y", attrs["label"])

	weights := []any{back.Edges()[0].Attrs["weight"], back.Edges()[1].Attrs["weight"]}
	require.Equal(t, []any{1.5, 2.5}, weights)

	raw, ok := back.Attr("graph")
	require.True(t, ok)
	require.Equal(t, map[string]any{"rankdir": "LR"}, raw)
}
