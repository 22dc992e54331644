// Package holdemgrid is a small, dependency-light toolkit around the
// Texas Hold'em starting-hand matrix.
//
// 🚀 What is holdemgrid?
//
//	A pure Go library that brings together:
//		• Grid primitives: generic rectangular grids, neighbors, borders, islands
//		• The 13×13 hand matrix: 169 labels, O(1) position lookups
//		• Combination counts: 6 / 4 / 12 per label, 1326 in total
//		• Range outlines: border hands plus one layer outward
//		• Concrete combos: every label expanded into its two-card holdings
//
// ✨ Why choose holdemgrid?
//
//   - Immutable – all tables are built once at start-up, safe to share
//   - Fail-soft – unknown labels are skipped, never panicked on
//   - Small API – plain functions over maps and strings
//
// Everything is organized under two packages and one command:
//
//	gridgraph/    — generic grid-as-graph: Locate, Neighbors, Border, ExpandBorder, ConnectedComponents
//	hands/        — the hand matrix, combination counts and range operations
//	cmd/handgrid/ — terminal tool printing a range, its outline and the matrix
//
// Quick ASCII example (top-left corner of the matrix):
//
//	AA ─ AKs ─ AQs
//	│     │     │
//	AKo ─ KK ─ KQs
//
// For the range {AA} the outline is {AA, AKs, AKo}.
//
//	go get github.com/katalvlaran/holdemgrid/hands
package holdemgrid
