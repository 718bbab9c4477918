// SPDX-License-Identifier: MIT

// Package table: sentinel errors, column kinds, and functional
// configuration for the edge-list bridge.

package table

import "errors"

// Sentinel errors for the tabular bridge.
var (
	// ErrGraphNil indicates ToTable received a nil graph.
	ErrGraphNil = errors.New("table: graph is nil")

	// ErrNilRecord indicates FromTable received a nil record.
	ErrNilRecord = errors.New("table: record is nil")

	// ErrMissingColumn indicates a required column is absent from the schema.
	ErrMissingColumn = errors.New("table: missing column")

	// ErrColumnType indicates a column's Arrow type (or an attribute value)
	// does not match the declared kind.
	ErrColumnType = errors.New("table: column type mismatch")

	// ErrUnknownKind indicates a column kind outside the closed set.
	ErrUnknownKind = errors.New("table: unknown column kind")
)

// DEFAULTS.
const (
	// DefaultSourceColumn names the first-endpoint column.
	DefaultSourceColumn = "source"

	// DefaultTargetColumn names the second-endpoint column.
	DefaultTargetColumn = "target"
)

// Kind is the declared value kind of an attribute column.
type Kind uint8

// Column kinds with a known Arrow mapping.
const (
	// Float64 stores attribute values as a nullable float64 column (default).
	Float64 Kind = iota

	// Int64 stores attribute values as a nullable int64 column.
	Int64

	// Bool stores attribute values as a nullable boolean column.
	Bool

	// String stores attribute values as a nullable string column.
	String
)

// Column names one attribute column together with its value kind.
type Column struct {
	// Name is both the column name and the edge attribute it carries.
	Name string

	// Kind is the declared value kind of the column.
	Kind Kind
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	sourceCol string // first-endpoint column name
	targetCol string // second-endpoint column name

	// encode policy
	columns []Column // attribute columns; defaults to [{weight, Float64}]

	// decode policy
	attrColumns []string // attribute column selection; nil ⇒ all non-endpoint
	directed    bool     // decode target directedness
	multigraph  bool     // decode target multiplicity
}

// WithSourceColumn names the first-endpoint column.
func WithSourceColumn(name string) Option {
	return func(o *Options) { o.sourceCol = name }
}

// WithTargetColumn names the second-endpoint column.
func WithTargetColumn(name string) Option {
	return func(o *Options) { o.targetCol = name }
}

// WithColumns sets the attribute columns an encode emits (ordered).
func WithColumns(cols ...Column) Option {
	return func(o *Options) { o.columns = cols }
}

// WithAttrColumns restricts which record columns decode into edge
// attributes. Without it, every non-endpoint column decodes.
func WithAttrColumns(names ...string) Option {
	return func(o *Options) { o.attrColumns = names }
}

// WithDirected makes FromTable build a directed target graph.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithMultigraph makes FromTable build a multigraph target.
func WithMultigraph() Option {
	return func(o *Options) { o.multigraph = true }
}

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		sourceCol: DefaultSourceColumn,
		targetCol: DefaultTargetColumn,
		columns:   []Column{{Name: "weight", Kind: Float64}},
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
