// SPDX-License-Identifier: MIT

// Package gmat is the umbrella module for graph ↔ matrix conversion:
//
//   - core/   - the attribute multigraph container (string node IDs,
//     per-edge attribute maps, directed/multigraph flags, insertion-order
//     iteration).
//   - matrix/ - the conversion heart: dense, structured (named-field
//     record), and sparse adjacency codecs with explicit per-call options
//     for ordering, weights, reducers, and nonedge sentinels.
//   - dot/    - the DOT text bridge (graph/digraph, strictness, default
//     blocks, edge chains).
//   - table/  - the Arrow edge-list bridge (one row per edge, typed
//     nullable attribute columns).
//
// The module root carries no code: import the concern you need.
package gmat
