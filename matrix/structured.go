// SPDX-License-Identifier: MIT
// Package matrix - structured (named-field record) adjacency encoder.
//
// A Structured matrix is an n×n grid whose cell is a fixed-shape record of
// named numeric components, one per requested edge attribute. Encode only:
// there is no decode direction for record matrices. Multigraphs are
// rejected - a record cell cannot represent parallel edges.

package matrix

import (
	"fmt"

	"github.com/korvyl/gmat/core"
)

// Structured is a dense n×n matrix of fixed-shape records. Storage is a
// flat row-major buffer with one float64 per record component:
// offset = (i*n + j)*len(fields) + f.
type Structured struct {
	n      int
	fields []Field
	data   []float64
}

// Rows returns the row count. Complexity: O(1).
func (s *Structured) Rows() int { return s.n }

// Cols returns the column count. Complexity: O(1).
func (s *Structured) Cols() int { return s.n }

// Fields returns the record shape (fresh slice). Complexity: O(f).
func (s *Structured) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)

	return out
}

// fieldIndex resolves a field name to its record position.
func (s *Structured) fieldIndex(name string) (int, error) {
	for f, fld := range s.fields {
		if fld.Name == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("Structured: field %q: %w", name, ErrUnknownField)
}

// At returns a copy of the record at (row, col), components in field order.
// Errors: ErrOutOfRange. Complexity: O(f).
func (s *Structured) At(row, col int) ([]float64, error) {
	if row < 0 || row >= s.n || col < 0 || col >= s.n {
		return nil, fmt.Errorf("Structured.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	f := len(s.fields)
	out := make([]float64, f)
	copy(out, s.data[(row*s.n+col)*f:(row*s.n+col)*f+f])

	return out, nil
}

// Value returns one named component of the record at (row, col).
// Errors: ErrOutOfRange, ErrUnknownField. Complexity: O(f) for the lookup.
func (s *Structured) Value(row, col int, name string) (float64, error) {
	if row < 0 || row >= s.n || col < 0 || col >= s.n {
		return 0, fmt.Errorf("Structured.Value(%d,%d): %w", row, col, ErrOutOfRange)
	}
	f, err := s.fieldIndex(name)
	if err != nil {
		return 0, err
	}

	return s.data[(row*s.n+col)*len(s.fields)+f], nil
}

// Plane extracts one named component as an independent Dense matrix
// (the analogue of reading a single field across the whole record grid).
// Errors: ErrUnknownField. Complexity: O(n²).
func (s *Structured) Plane(name string) (*Dense, error) {
	f, err := s.fieldIndex(name)
	if err != nil {
		return nil, err
	}
	out, err := NewDense(s.n, s.n)
	if err != nil {
		return nil, err
	}
	stride := len(s.fields)
	for k := 0; k < s.n*s.n; k++ {
		out.data[k] = s.data[k*stride+f]
	}

	return out, nil
}

// setRecord writes the record components at (row, col); bounds are the
// encoder's responsibility.
func (s *Structured) setRecord(row, col int, values []float64) {
	copy(s.data[(row*s.n+col)*len(s.fields):], values)
}

// ToStructured encodes a simple graph as a dense matrix of named-field
// records, one component per entry of the field list (WithFields; default
// is a single "weight" Float64 field).
// Implementation:
//   - Stage 1: reject nil graphs and multigraph inputs; resolve ordering
//     and index (ErrAmbiguousOrdering before allocation).
//   - Stage 2: allocate the zero-initialized record grid.
//   - Stage 3: for every edge with both endpoints present, read the named
//     attributes in field order - an absent attribute is ErrMissingField,
//     never a default - and write the record at [u,v], mirrored to [v,u]
//     for undirected graphs.
//
// Errors:
//   - ErrGraphNil, ErrMultigraphUnsupported, ErrAmbiguousOrdering,
//     ErrMissingField, ErrInvalidWeight (non-numeric attribute value).
//
// Complexity:
//   - Time O(n²·f + E·f), Space O(n²·f).
func ToStructured(g GraphSource, opts ...Option) (*Structured, error) {
	if g == nil {
		return nil, fmt.Errorf("ToStructured: %w", ErrGraphNil)
	}
	if g.Multigraph() {
		return nil, fmt.Errorf("ToStructured: %w", ErrMultigraphUnsupported)
	}
	o := gatherOptions(opts...)

	order := nodeOrdering(g, o)
	idx, err := NewNodeIndex(order)
	if err != nil {
		return nil, fmt.Errorf("ToStructured: %w", err)
	}
	n := len(order)
	f := len(o.fields)
	s := &Structured{n: n, fields: o.fields, data: make([]float64, n*n*f)}

	undirected := !g.Directed()
	values := make([]float64, f)
	var (
		e    *core.Edge
		i, j int
		ok   bool
	)
	for _, e = range g.Edges() {
		if i, ok = idx[e.From]; !ok {
			continue // induced subgraph on partial orderings
		}
		if j, ok = idx[e.To]; !ok {
			continue
		}
		if err = recordValues(e, o.fields, values); err != nil {
			return nil, fmt.Errorf("ToStructured: edge %q->%q: %w", e.From, e.To, err)
		}
		s.setRecord(i, j, values)
		if undirected {
			s.setRecord(j, i, values)
		}
	}

	return s, nil
}

// recordValues reads the named attributes of an edge into dst in field
// order. Absent attributes are ErrMissingField; non-numeric values are
// ErrInvalidWeight. Complexity: O(f).
func recordValues(e *core.Edge, fields []Field, dst []float64) error {
	for f, fld := range fields {
		raw, ok := e.Attrs[fld.Name]
		if !ok {
			return fmt.Errorf("attribute %q: %w", fld.Name, ErrMissingField)
		}
		v, ok := numericValue(raw)
		if !ok {
			if b, isBool := raw.(bool); isBool && fld.Kind == Bool {
				if b {
					v = 1
				}
				dst[f] = v

				continue
			}

			return fmt.Errorf("attribute %q holds %T: %w", fld.Name, raw, ErrInvalidWeight)
		}
		dst[f] = v
	}

	return nil
}
