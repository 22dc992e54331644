// Package gridgraph treats a rectangular 2D grid of cell values as a graph,
// enabling neighbor lookups, border detection and one-layer expansions of
// member sets.
//
// What:
//
//   - GridGraph wraps a rectangular [][]T grid of comparable values.
//   - Locates a value back to its (row, col) in O(1).
//   - Lists in-bounds neighbors of a cell in a fixed order.
//   - Finds the border of a member set (members touching a non-member).
//   - Expands a member set's border by one neighbor layer.
//   - Identifies connected components ("islands") of a member set.
//
// Why:
//
//   - Strategy charts: hand matrices where adjacent cells are similar hands.
//   - Game maps: contiguous region detection, outline highlighting.
//
// Complexity:
//
//   - New:                 O(W×H), Memory: O(W×H).
//   - Neighbors:           O(d).   (d = number of neighbors, 4 or 8)
//   - Border/ExpandBorder: O(M×d), Memory: O(M). (M = member count)
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: requested cell lies outside the grid.
package gridgraph
