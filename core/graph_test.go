// Package core_test verifies the attribute multigraph container: insertion
// order, idempotent AddEdge on simple graphs, attribute-map independence,
// and self-loop accounting.
package core_test

import (
	"testing"

	"github.com/korvyl/gmat/core"
	"github.com/stretchr/testify/require"
)

// TestGraph_Defaults checks the zero-option construction flags.
func TestGraph_Defaults(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	require.False(t, g.Directed())
	require.False(t, g.Multigraph())
	require.Empty(t, g.Name())
}

// TestGraph_Options checks the construction flags and graph metadata.
func TestGraph_Options(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithName("G"))
	require.True(t, g.Directed())
	require.True(t, g.Multigraph())
	require.Equal(t, "G", g.Name())

	g.SetName("H")
	require.Equal(t, "H", g.Name())

	g.SetAttr("rankdir", "LR")
	v, ok := g.Attr("rankdir")
	require.True(t, ok)
	require.Equal(t, "LR", v)
	_, ok = g.Attr("missing")
	require.False(t, ok)
}

// TestGraph_NodeInsertionOrder requires Nodes() to report insertion order,
// including endpoints auto-added by AddEdge.
func TestGraph_NodeInsertionOrder(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	require.NoError(t, g.AddNode("z"))
	require.NoError(t, g.AddEdge("m", "a", nil))
	require.NoError(t, g.AddNode("z")) // duplicate: no-op, keeps position

	require.Equal(t, []string{"z", "m", "a"}, g.Nodes())
	require.Equal(t, 3, g.NodeCount())
	require.True(t, g.HasNode("m"))
	require.False(t, g.HasNode("q"))
}

// TestGraph_EmptyIDs rejects empty node identifiers everywhere.
func TestGraph_EmptyIDs(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	require.ErrorIs(t, g.AddNode(""), core.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddNodeAttrs("", nil), core.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddEdge("", "b", nil), core.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddEdge("a", "", nil), core.ErrEmptyNodeID)
}

// TestGraph_NodeAttrs merges attribute maps per key and hands out copies.
func TestGraph_NodeAttrs(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	require.NoError(t, g.AddNodeAttrs("a", map[string]any{"color": "red", "size": 1}))
	require.NoError(t, g.AddNodeAttrs("a", map[string]any{"size": 2}))

	attrs, ok := g.NodeAttrs("a")
	require.True(t, ok)
	require.Equal(t, "red", attrs["color"])
	require.Equal(t, 2, attrs["size"])

	// Returned map is a copy: mutation must not leak back.
	attrs["color"] = "blue"
	again, _ := g.NodeAttrs("a")
	require.Equal(t, "red", again["color"])

	_, ok = g.NodeAttrs("missing")
	require.False(t, ok)
}

// TestGraph_AddEdge_SimpleIdempotent merges attrs into the stored edge when
// the same pair is re-added on a non-multigraph, unordered when undirected.
func TestGraph_AddEdge_SimpleIdempotent(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", map[string]any{"weight": 1.0}))
	require.NoError(t, g.AddEdge("b", "a", map[string]any{"weight": 7.0, "color": "red"}))

	require.Equal(t, 1, g.NumberOfEdges())
	e := g.Edges()[0]
	require.Equal(t, 7.0, e.Attrs["weight"])
	require.Equal(t, "red", e.Attrs["color"])
}

// TestGraph_AddEdge_DirectedPairs keeps (u,v) and (v,u) distinct on
// directed simple graphs.
func TestGraph_AddEdge_DirectedPairs(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("a", "b", nil))
	require.NoError(t, g.AddEdge("b", "a", nil))
	require.Equal(t, 2, g.NumberOfEdges())
}

// TestGraph_AddEdge_Multigraph appends parallel edges unconditionally.
func TestGraph_AddEdge_Multigraph(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddEdge("a", "b", map[string]any{"weight": 1.0}))
	require.NoError(t, g.AddEdge("a", "b", map[string]any{"weight": 2.0}))
	require.Equal(t, 2, g.NumberOfEdges())
}

// TestGraph_AttrCopy verifies the supplied attribute map is copied, never
// aliased by the stored edge.
func TestGraph_AttrCopy(t *testing.T) {
	t.Parallel()
	attrs := map[string]any{"weight": 1.0}
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", attrs))

	attrs["weight"] = 99.0
	require.Equal(t, 1.0, g.Edges()[0].Attrs["weight"])
}

// TestGraph_SelfLoops counts and lists coincident-endpoint edges.
func TestGraph_SelfLoops(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddEdge("a", "a", nil))
	require.NoError(t, g.AddEdge("a", "b", nil))
	require.NoError(t, g.AddEdge("b", "b", nil))

	require.Equal(t, 2, g.NumberOfSelfLoops())
	loops := g.SelfLoops()
	require.Len(t, loops, 2)
	require.Equal(t, "a", loops[0].From)
	require.Equal(t, "b", loops[1].From)
}

// TestGraph_AddEdges inserts a sequence and stops at the first error.
func TestGraph_AddEdges(t *testing.T) {
	t.Parallel()
	g := core.NewGraph()
	err := g.AddEdges([]core.Edge{
		{From: "a", To: "b"},
		{From: "", To: "c"},
	})
	require.ErrorIs(t, err, core.ErrEmptyNodeID)
	require.Equal(t, 1, g.NumberOfEdges())
}
