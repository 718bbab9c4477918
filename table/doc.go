// SPDX-License-Identifier: MIT

// Package table bridges the core graph container and Arrow edge-list
// records (the columnar interchange format).
//
// What this package provides:
//   - ToTable: render a graph as an arrow.Record with one row per edge.
//     Endpoint columns hold node identifiers; each configured attribute
//     column holds the typed attribute value, null when the edge lacks it.
//   - FromTable: rebuild a graph from such a record. Every non-endpoint
//     column becomes an edge attribute by default; WithAttrColumns narrows
//     the selection.
//
// Row order follows edge insertion order, so encode→decode round-trips
// preserve edge order exactly. The caller owns the returned record and
// must Release it.
package table
