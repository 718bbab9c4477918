// SPDX-License-Identifier: MIT

// Package table - core.Graph → arrow.Record encoding.

package table

import (
	"fmt"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/memory"

	"github.com/korvyl/gmat/core"
)

// arrowType maps a column kind to its Arrow data type.
func arrowType(k Kind) (arrow.DataType, error) {
	switch k {
	case Float64:
		return arrow.PrimitiveTypes.Float64, nil
	case Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case Bool:
		return arrow.FixedWidthTypes.Boolean, nil
	case String:
		return arrow.BinaryTypes.String, nil
	default:
		return nil, fmt.Errorf("kind %d: %w", k, ErrUnknownKind)
	}
}

// ToTable encodes a graph as an Arrow edge-list record: one row per edge in
// insertion order, endpoint identifier columns first, then one nullable
// column per configured attribute (WithColumns; default a single float64
// "weight"). An edge lacking the attribute yields a null cell.
//
// The caller owns the returned record and must Release it.
//
// Errors:
//   - ErrGraphNil, ErrUnknownKind, ErrColumnType (attribute value
//     incompatible with the declared column kind).
//
// Complexity: O(E · C) for C attribute columns.
func ToTable(g *core.Graph, opts ...Option) (arrow.Record, error) {
	if g == nil {
		return nil, fmt.Errorf("ToTable: %w", ErrGraphNil)
	}
	o := gatherOptions(opts...)

	fields := make([]arrow.Field, 0, 2+len(o.columns))
	fields = append(fields,
		arrow.Field{Name: o.sourceCol, Type: arrow.BinaryTypes.String},
		arrow.Field{Name: o.targetCol, Type: arrow.BinaryTypes.String},
	)
	for _, col := range o.columns {
		dt, err := arrowType(col.Kind)
		if err != nil {
			return nil, fmt.Errorf("ToTable: column %q: %w", col.Name, err)
		}
		fields = append(fields, arrow.Field{Name: col.Name, Type: dt, Nullable: true})
	}
	schema := arrow.NewSchema(fields, nil)

	pool := memory.NewGoAllocator()
	b := array.NewRecordBuilder(pool, schema)
	defer b.Release()

	edges := g.Edges()
	src := b.Field(0).(*array.StringBuilder)
	dst := b.Field(1).(*array.StringBuilder)
	for _, e := range edges {
		src.Append(e.From)
		dst.Append(e.To)
		for c, col := range o.columns {
			if err := appendCell(b.Field(2+c), col, e.Attrs[col.Name]); err != nil {
				return nil, fmt.Errorf("ToTable: edge %q->%q: %w", e.From, e.To, err)
			}
		}
	}

	return b.NewRecord(), nil
}

// appendCell writes one attribute value into a column builder; nil (absent
// attribute) appends null; incompatible values are ErrColumnType.
func appendCell(fb array.Builder, col Column, raw any) error {
	if raw == nil {
		fb.AppendNull()

		return nil
	}
	switch col.Kind {
	case Float64:
		v, ok := numeric(raw)
		if !ok {
			return cellTypeError(col, raw)
		}
		fb.(*array.Float64Builder).Append(v)
	case Int64:
		v, ok := numeric(raw)
		if !ok {
			return cellTypeError(col, raw)
		}
		fb.(*array.Int64Builder).Append(int64(v))
	case Bool:
		v, ok := raw.(bool)
		if !ok {
			return cellTypeError(col, raw)
		}
		fb.(*array.BooleanBuilder).Append(v)
	case String:
		v, ok := raw.(string)
		if !ok {
			return cellTypeError(col, raw)
		}
		fb.(*array.StringBuilder).Append(v)
	default:
		return fmt.Errorf("kind %d: %w", col.Kind, ErrUnknownKind)
	}

	return nil
}

// cellTypeError builds the uniform kind-mismatch error.
func cellTypeError(col Column, raw any) error {
	return fmt.Errorf("column %q expects %v, attribute holds %T: %w",
		col.Name, col.Kind, raw, ErrColumnType)
}

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// numeric coerces a graph attribute value into float64.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
