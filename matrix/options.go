// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the graph↔matrix codecs.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no ambient defaults.
//   - Per-call configuration: reducer choice, weight key, nonedge value and
//     parallel-edge flag travel in an explicit Options value, never globals.
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultWeightKey is the edge attribute read as the scalar weight.
	DefaultWeightKey = "weight"

	// DefaultWeight is used when an edge lacks the weight attribute.
	DefaultWeight = 1.0

	// DefaultNonedge is the sentinel written into cells with no edge.
	DefaultNonedge = 0.0

	// DefaultEdgeAttr is the attribute name decoders store cell values under.
	DefaultEdgeAttr = "weight"
)

// DefaultReducer combines parallel-edge weights by summation.
const DefaultReducer = ReduceSum

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-by-field to prevent external mutation;
// public entry points accept `...Option` and resolve via gatherOptions.
type Options struct {
	// encode policy
	nodeOrder     []string // explicit row/col ordering; nil ⇒ graph order
	reducer       Reducer  // multigraph weight combination
	weightKey     string   // edge attribute holding the scalar weight
	useWeightKey  bool     // false ⇒ every edge gets defaultWeight
	defaultWeight float64  // fallback when the attribute is absent
	nonedge       float64  // sentinel for absent edges in dense encodes

	// decode policy
	parallelEdges bool   // expand integer cells into parallel edges
	directed      bool   // decode target directedness
	multigraph    bool   // decode target multiplicity
	dtype         DType  // declared element kind of the matrix
	edgeAttr      string // attribute name for decoded cell values

	// structured encode policy
	fields []Field // record shape; defaults to [{weight, Float64}]
}

// WithNodeOrder fixes the row/column ordering to the given node sequence.
// Nodes absent from the ordering are dropped from the matrix together with
// their edges (induced-subgraph semantics). Duplicates in the sequence are
// reported as ErrAmbiguousOrdering by the codec, not here.
func WithNodeOrder(nodes []string) Option {
	return func(o *Options) { o.nodeOrder = nodes }
}

// WithReducer selects how parallel-edge weights are combined on multigraph
// encodes. Values outside {ReduceSum, ReduceMin, ReduceMax} surface as
// ErrUnknownReducer when the codec runs.
func WithReducer(r Reducer) Option {
	return func(o *Options) { o.reducer = r }
}

// WithWeightKey names the edge attribute read as the scalar weight.
func WithWeightKey(key string) Option {
	return func(o *Options) {
		o.weightKey = key
		o.useWeightKey = true
	}
}

// WithoutWeightKey disables attribute lookup entirely: every edge weighs
// the default weight.
func WithoutWeightKey() Option {
	return func(o *Options) { o.useWeightKey = false }
}

// WithDefaultWeight sets the weight used when an edge lacks the weight
// attribute (or when WithoutWeightKey is in effect).
func WithDefaultWeight(w float64) Option {
	return func(o *Options) { o.defaultWeight = w }
}

// WithNonedge sets the dense-matrix sentinel for absent edges. NaN is a
// legal and common choice when real zero-weight edges must stay visible.
func WithNonedge(v float64) Option {
	return func(o *Options) { o.nonedge = v }
}

// WithParallelEdges makes decoders interpret integer cell values as counts
// of unit-weight parallel edges. Effective only when the matrix kind is an
// integer kind and the target graph is a multigraph.
func WithParallelEdges() Option {
	return func(o *Options) { o.parallelEdges = true }
}

// WithDirected makes decoders build a directed target graph.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected makes decoders build an undirected target graph (default).
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithMultigraph makes decoders build a multigraph target.
func WithMultigraph() Option {
	return func(o *Options) { o.multigraph = true }
}

// WithDType declares the element kind of the matrix being decoded. Integer
// kinds enable parallel-edge expansion; kinds outside the closed set surface
// as ErrUnknownElementType when the codec runs.
func WithDType(d DType) Option {
	return func(o *Options) { o.dtype = d }
}

// WithEdgeAttr names the attribute decoders store cell values under.
func WithEdgeAttr(name string) Option {
	return func(o *Options) { o.edgeAttr = name }
}

// WithFields sets the structured-matrix record shape (ordered named fields).
func WithFields(fields ...Field) Option {
	return func(o *Options) { o.fields = fields }
}

// NewOptions resolves option setters against the documented defaults.
// Most callers never need this; public entry points accept ...Option.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; deterministic for a given setter sequence.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		reducer:       DefaultReducer,
		weightKey:     DefaultWeightKey,
		useWeightKey:  true,
		defaultWeight: DefaultWeight,
		nonedge:       DefaultNonedge,
		dtype:         Float64,
		edgeAttr:      DefaultEdgeAttr,
		fields:        []Field{{Name: DefaultWeightKey, Kind: Float64}},
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
