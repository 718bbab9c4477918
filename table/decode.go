// SPDX-License-Identifier: MIT

// Package table - arrow.Record → core.Graph decoding.

package table

import (
	"fmt"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"

	"github.com/korvyl/gmat/core"
)

// FromTable decodes an Arrow edge-list record into a graph.
// Implementation:
//   - Stage 1: resolve the endpoint columns (ErrMissingColumn) and require
//     them to be string columns (ErrColumnType).
//   - Stage 2: select attribute columns - every remaining column, or the
//     WithAttrColumns subset - and require supported Arrow types.
//   - Stage 3: walk rows in order, adding one edge per row; null attribute
//     cells are omitted from the edge's attribute map.
//
// The record is read-only; the caller keeps ownership.
//
// Options honored: WithSourceColumn, WithTargetColumn, WithAttrColumns,
// WithDirected, WithMultigraph.
//
// Errors: ErrNilRecord, ErrMissingColumn, ErrColumnType.
// Complexity: O(rows · C) for C attribute columns.
func FromTable(rec arrow.Record, opts ...Option) (*core.Graph, error) {
	if rec == nil {
		return nil, fmt.Errorf("FromTable: %w", ErrNilRecord)
	}
	o := gatherOptions(opts...)

	src, err := endpointColumn(rec, o.sourceCol)
	if err != nil {
		return nil, fmt.Errorf("FromTable: %w", err)
	}
	dst, err := endpointColumn(rec, o.targetCol)
	if err != nil {
		return nil, fmt.Errorf("FromTable: %w", err)
	}

	attrs, err := selectAttrColumns(rec, o)
	if err != nil {
		return nil, fmt.Errorf("FromTable: %w", err)
	}

	gOpts := []core.GraphOption{core.WithDirected(o.directed)}
	if o.multigraph {
		gOpts = append(gOpts, core.WithMultiEdges())
	}
	g := core.NewGraph(gOpts...)

	rows := int(rec.NumRows())
	for r := 0; r < rows; r++ {
		m := make(map[string]any, len(attrs))
		for _, ac := range attrs {
			if ac.col.IsNull(r) {
				continue
			}
			m[ac.name] = cellValue(ac.col, r)
		}
		if err = g.AddEdge(src.Value(r), dst.Value(r), m); err != nil {
			return nil, fmt.Errorf("FromTable: row %d: %w", r, err)
		}
	}

	return g, nil
}

// attrColumn pairs a selected column with its name.
type attrColumn struct {
	name string
	col  arrow.Array
}

// endpointColumn resolves a named column and requires the string type.
func endpointColumn(rec arrow.Record, name string) (*array.String, error) {
	idx := rec.Schema().FieldIndices(name)
	if len(idx) == 0 {
		return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
	}
	col, ok := rec.Column(idx[0]).(*array.String)
	if !ok {
		return nil, fmt.Errorf("column %q is %s, want string: %w",
			name, rec.Column(idx[0]).DataType(), ErrColumnType)
	}

	return col, nil
}

// selectAttrColumns picks the attribute columns per the options and
// validates their Arrow types against the supported set.
func selectAttrColumns(rec arrow.Record, o Options) ([]attrColumn, error) {
	schema := rec.Schema()

	var names []string
	if o.attrColumns != nil {
		names = o.attrColumns
	} else {
		for _, f := range schema.Fields() {
			if f.Name == o.sourceCol || f.Name == o.targetCol {
				continue
			}
			names = append(names, f.Name)
		}
	}

	out := make([]attrColumn, 0, len(names))
	for _, name := range names {
		idx := schema.FieldIndices(name)
		if len(idx) == 0 {
			return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
		}
		col := rec.Column(idx[0])
		switch col.(type) {
		case *array.Float64, *array.Int64, *array.Boolean, *array.String:
			out = append(out, attrColumn{name: name, col: col})
		default:
			return nil, fmt.Errorf("column %q has unsupported type %s: %w",
				name, col.DataType(), ErrColumnType)
		}
	}

	return out, nil
}

// cellValue extracts one non-null cell as a graph attribute value.
func cellValue(col arrow.Array, row int) any {
	switch c := col.(type) {
	case *array.Float64:
		return c.Value(row)
	case *array.Int64:
		return c.Value(row)
	case *array.Boolean:
		return c.Value(row)
	case *array.String:
		return c.Value(row)
	default:
		return nil // unreachable: selectAttrColumns filtered types
	}
}
