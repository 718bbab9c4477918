// SPDX-License-Identifier: MIT

// Package core defines the attribute-bearing Graph container consumed by the
// matrix, dot, and table conversion packages.
//
// What & Why:
//
//	A Graph holds string node identifiers, edges carrying independent
//	attribute maps, a directedness flag, and a multiplicity flag (whether
//	parallel edges between the same pair are permitted). Self-loops are
//	always allowed. Node and edge iteration follow insertion order, so every
//	conversion built on top of a Graph is deterministic.
//
// Concurrency:
//
//	All mutating and reading methods take an internal sync.RWMutex, so a
//	Graph may be built from several goroutines. Conversions elsewhere in the
//	module read a snapshot of nodes/edges and assume the caller does not
//	mutate the source concurrently during a conversion call.
//
// Errors:
//
//	ErrEmptyNodeID - a node identifier is the empty string.
package core
