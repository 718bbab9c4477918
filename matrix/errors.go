// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All codecs MUST return these sentinels and tests MUST check them
// via errors.Is. No codec panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site - callers still match via errors.Is.

var (
	// ErrAmbiguousOrdering is returned when a node ordering contains
	// duplicate identifiers. Detected before any matrix allocation.
	ErrAmbiguousOrdering = errors.New("matrix: ambiguous ordering: duplicate node ids")

	// ErrNonSquare signals that a square matrix was required but the input
	// has differing row and column counts.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrMultigraphUnsupported marks an operation that rejects multigraph
	// inputs (the structured codec encodes simple graphs only).
	ErrMultigraphUnsupported = errors.New("matrix: operation unsupported for multigraphs")

	// ErrUnknownReducer is returned when the multi-edge weight reducer is
	// not one of sum, min, max.
	ErrUnknownReducer = errors.New("matrix: reducer must be sum, min, or max")

	// ErrEmptyGraph is returned by the sparse encoder for a graph with zero
	// nodes (an edgeless graph with nodes is fine).
	ErrEmptyGraph = errors.New("matrix: graph has no nodes")

	// ErrUnknownElementType signals a declared matrix element kind with no
	// known mapping to a graph-attribute value type.
	ErrUnknownElementType = errors.New("matrix: unknown matrix element type")

	// ErrMissingField is returned by the structured encoder when an edge
	// lacks one of the named record fields (no default substitution there).
	ErrMissingField = errors.New("matrix: edge lacks required attribute field")

	// ErrInvalidWeight signals a weight attribute whose value is not a
	// numeric kind.
	ErrInvalidWeight = errors.New("matrix: edge weight is not numeric")

	// ErrGraphNil indicates that a nil graph was passed into a codec.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative (zero-sized matrices are legal for empty graphs).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadTriples indicates inconsistent parallel row/col/value slices or
	// out-of-bounds coordinates when constructing a sparse matrix.
	ErrBadTriples = errors.New("matrix: invalid sparse triples")

	// ErrUnknownField is returned when a structured-matrix accessor names a
	// field absent from the record shape.
	ErrUnknownField = errors.New("matrix: unknown record field")
)
