// Package table_test exercises the Arrow edge-list bridge: schema shape,
// null handling for absent attributes, type validation, column selection,
// and round-trips.
package table_test

import (
	"testing"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/korvyl/gmat/core"
	"github.com/korvyl/gmat/table"
)

// wiredGraph builds the shared directed fixture: two edges, one missing
// the weight attribute.
func wiredGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("a", "b", map[string]any{"weight": 2.5, "label": "ab"}))
	require.NoError(t, g.AddEdge("b", "c", nil))

	return g
}

// TestToTable_NilGraph verifies the nil guard.
func TestToTable_NilGraph(t *testing.T) {
	t.Parallel()
	_, err := table.ToTable(nil)
	require.ErrorIs(t, err, table.ErrGraphNil)
}

// TestToTable_DefaultSchema encodes with the default single weight column
// and checks values plus the null for the attribute-less edge.
func TestToTable_DefaultSchema(t *testing.T) {
	t.Parallel()
	rec, err := table.ToTable(wiredGraph(t))
	require.NoError(t, err)
	defer rec.Release()

	require.Equal(t, int64(2), rec.NumRows())
	require.Equal(t, int64(3), rec.NumCols())
	require.Equal(t, "source", rec.Schema().Field(0).Name)
	require.Equal(t, "target", rec.Schema().Field(1).Name)
	require.Equal(t, "weight", rec.Schema().Field(2).Name)

	src := rec.Column(0).(*array.String)
	dst := rec.Column(1).(*array.String)
	w := rec.Column(2).(*array.Float64)
	require.Equal(t, "a", src.Value(0))
	require.Equal(t, "b", dst.Value(0))
	require.Equal(t, 2.5, w.Value(0))
	require.False(t, w.IsNull(0))
	require.True(t, w.IsNull(1), "edge without the attribute yields null")
}

// TestToTable_TypedColumns covers every column kind plus the kind-mismatch
// and unknown-kind errors.
func TestToTable_TypedColumns(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("a", "b", map[string]any{
		"cost":   3,
		"hops":   int64(4),
		"active": true,
		"label":  "trunk",
	}))

	rec, err := table.ToTable(g, table.WithColumns(
		table.Column{Name: "cost", Kind: table.Float64},
		table.Column{Name: "hops", Kind: table.Int64},
		table.Column{Name: "active", Kind: table.Bool},
		table.Column{Name: "label", Kind: table.String},
	))
	require.NoError(t, err)
	defer rec.Release()

	require.Equal(t, 3.0, rec.Column(2).(*array.Float64).Value(0))
	require.Equal(t, int64(4), rec.Column(3).(*array.Int64).Value(0))
	require.True(t, rec.Column(4).(*array.Boolean).Value(0))
	require.Equal(t, "trunk", rec.Column(5).(*array.String).Value(0))

	_, err = table.ToTable(g, table.WithColumns(table.Column{Name: "label", Kind: table.Float64}))
	require.ErrorIs(t, err, table.ErrColumnType)

	_, err = table.ToTable(g, table.WithColumns(table.Column{Name: "cost", Kind: table.Kind(9)}))
	require.ErrorIs(t, err, table.ErrUnknownKind)
}

// TestFromTable_Validation covers nil records, missing columns, and
// endpoint type mismatches.
func TestFromTable_Validation(t *testing.T) {
	t.Parallel()

	t.Run("Nil", func(t *testing.T) {
		t.Parallel()
		_, err := table.FromTable(nil)
		require.ErrorIs(t, err, table.ErrNilRecord)
	})

	t.Run("MissingEndpoint", func(t *testing.T) {
		t.Parallel()
		rec, err := table.ToTable(wiredGraph(t))
		require.NoError(t, err)
		defer rec.Release()

		_, err = table.FromTable(rec, table.WithSourceColumn("origin"))
		require.ErrorIs(t, err, table.ErrMissingColumn)
	})

	t.Run("EndpointNotString", func(t *testing.T) {
		t.Parallel()
		schema := arrow.NewSchema([]arrow.Field{
			{Name: "source", Type: arrow.PrimitiveTypes.Int64},
			{Name: "target", Type: arrow.BinaryTypes.String},
		}, nil)
		b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
		defer b.Release()
		rec := b.NewRecord()
		defer rec.Release()

		_, err := table.FromTable(rec)
		require.ErrorIs(t, err, table.ErrColumnType)
	})

	t.Run("MissingAttrColumn", func(t *testing.T) {
		t.Parallel()
		rec, err := table.ToTable(wiredGraph(t))
		require.NoError(t, err)
		defer rec.Release()

		_, err = table.FromTable(rec, table.WithAttrColumns("latency"))
		require.ErrorIs(t, err, table.ErrMissingColumn)
	})
}

// TestFromTable_Basics decodes the default encoding back into a graph with
// the right flags, attributes, and null omission.
func TestFromTable_Basics(t *testing.T) {
	t.Parallel()
	rec, err := table.ToTable(wiredGraph(t), table.WithColumns(
		table.Column{Name: "weight", Kind: table.Float64},
		table.Column{Name: "label", Kind: table.String},
	))
	require.NoError(t, err)
	defer rec.Release()

	g, err := table.FromTable(rec, table.WithDirected())
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.False(t, g.Multigraph())
	require.Equal(t, 2, g.NumberOfEdges())

	first := g.Edges()[0]
	require.Equal(t, "a", first.From)
	require.Equal(t, 2.5, first.Attrs["weight"])
	require.Equal(t, "ab", first.Attrs["label"])

	second := g.Edges()[1]
	_, hasWeight := second.Attrs["weight"]
	require.False(t, hasWeight, "null cells decode to absent attributes")
}

// TestFromTable_AttrSelection narrows decoding to a column subset.
func TestFromTable_AttrSelection(t *testing.T) {
	t.Parallel()
	rec, err := table.ToTable(wiredGraph(t), table.WithColumns(
		table.Column{Name: "weight", Kind: table.Float64},
		table.Column{Name: "label", Kind: table.String},
	))
	require.NoError(t, err)
	defer rec.Release()

	g, err := table.FromTable(rec, table.WithDirected(), table.WithAttrColumns("label"))
	require.NoError(t, err)

	first := g.Edges()[0]
	require.Equal(t, "ab", first.Attrs["label"])
	_, hasWeight := first.Attrs["weight"]
	require.False(t, hasWeight)
}

// TestFromTable_Multigraph keeps duplicate rows as parallel edges.
func TestFromTable_Multigraph(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	require.NoError(t, g.AddEdge("a", "b", map[string]any{"weight": 1.0}))
	require.NoError(t, g.AddEdge("a", "b", map[string]any{"weight": 2.0}))

	rec, err := table.ToTable(g)
	require.NoError(t, err)
	defer rec.Release()

	multi, err := table.FromTable(rec, table.WithDirected(), table.WithMultigraph())
	require.NoError(t, err)
	require.Equal(t, 2, multi.NumberOfEdges())

	simple, err := table.FromTable(rec, table.WithDirected())
	require.NoError(t, err)
	require.Equal(t, 1, simple.NumberOfEdges(), "simple target collapses duplicate rows")
	require.Equal(t, 2.0, simple.Edges()[0].Attrs["weight"], "last row wins the merge")
}

// TestTable_RoundTrip encodes, decodes, and compares edges and endpoints.
func TestTable_RoundTrip(t *testing.T) {
	t.Parallel()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("x", "y", map[string]any{"weight": 0.5}))
	require.NoError(t, g.AddEdge("y", "z", map[string]any{"weight": 1.5}))
	require.NoError(t, g.AddEdge("z", "x", map[string]any{"weight": 2.5}))

	rec, err := table.ToTable(g)
	require.NoError(t, err)
	defer rec.Release()

	back, err := table.FromTable(rec, table.WithDirected())
	require.NoError(t, err)
	require.Equal(t, g.NumberOfEdges(), back.NumberOfEdges())
	for i, e := range g.Edges() {
		be := back.Edges()[i]
		require.Equal(t, e.From, be.From)
		require.Equal(t, e.To, be.To)
		require.Equal(t, e.Attrs["weight"], be.Attrs["weight"])
	}
}
