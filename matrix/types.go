// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the codecs (graph capability
// interface, reducers, element kinds, triples, accumulation cells).
// Errors and options live in dedicated files per the package conventions.

package matrix

import "github.com/korvyl/gmat/core"

// GraphSource is the capability set the encoders consume. *core.Graph
// satisfies it; any container with deterministic node/edge iteration works.
type GraphSource interface {
	// Nodes returns node identifiers in the container's natural order.
	Nodes() []string

	// Edges returns all edges with their attribute maps, in stable order.
	Edges() []*core.Edge

	// Directed reports whether edges are oriented.
	Directed() bool

	// Multigraph reports whether parallel edges are permitted.
	Multigraph() bool

	// SelfLoops returns the edges whose endpoints coincide.
	SelfLoops() []*core.Edge

	// NumberOfEdges returns the total edge count.
	NumberOfEdges() int
}

// Reducer combines multiple parallel-edge weights into one cell value.
type Reducer uint8

// Reducers accepted by the dense encoder for multigraph inputs.
const (
	// ReduceSum totals all parallel edge weights (default).
	ReduceSum Reducer = iota

	// ReduceMin keeps the smallest parallel edge weight.
	ReduceMin

	// ReduceMax keeps the largest parallel edge weight.
	ReduceMax
)

// String implements fmt.Stringer for diagnostics.
func (r Reducer) String() string {
	switch r {
	case ReduceSum:
		return "sum"
	case ReduceMin:
		return "min"
	case ReduceMax:
		return "max"
	default:
		return "unknown"
	}
}

// valid reports whether r is a member of the closed reducer set.
func (r Reducer) valid() bool { return r == ReduceSum || r == ReduceMin || r == ReduceMax }

// DType is the declared element kind of a numeric matrix. It decides how a
// decoded cell value is materialized as a graph attribute, and whether
// parallel-edge expansion applies (integer kinds only).
type DType uint8

// Element kinds with a known mapping to graph-attribute value types.
const (
	// Float64 materializes cell values as float64 attributes (default).
	Float64 DType = iota

	// Int64 materializes cell values as int64 attributes and enables
	// parallel-edge expansion on multigraph targets.
	Int64

	// Bool materializes nonzero cell values as boolean true attributes.
	Bool
)

// String implements fmt.Stringer for diagnostics.
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Int64:
		return "int64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// integer reports whether d is an integer-like kind (gates parallel-edge
// expansion in the decoders).
func (d DType) integer() bool { return d == Int64 }

// attrValue converts a raw cell value into the attribute value dictated by
// the element kind. ErrUnknownElementType for kinds outside the closed set.
func (d DType) attrValue(v float64) (any, error) {
	switch d {
	case Float64:
		return v, nil
	case Int64:
		return int64(v), nil
	case Bool:
		return v != 0, nil
	default:
		return nil, ErrUnknownElementType
	}
}

// Field names one component of a structured-matrix record together with its
// element kind.
type Field struct {
	// Name is the edge attribute read into this record component.
	Name string

	// Kind is the numeric kind of the component.
	Kind DType
}

// Triple is one nonzero cell of a sparse matrix.
type Triple struct {
	// Row and Col are zero-based matrix coordinates.
	Row, Col int

	// Val is the stored value at (Row, Col).
	Val float64
}

// cell is one dense accumulation slot: a value plus an explicit "set" tag.
// The tag distinguishes "no data yet" from a real zero-weight edge so that
// min/max reducers treat unset as an identity element rather than a zero.
type cell struct {
	val float64
	set bool
}
