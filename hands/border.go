package hands

// Border returns the border hands of rng: hands in the range with at least
// one matrix neighbor outside it. Labels not on the matrix are skipped.
func Border[V any](rng map[string]V) HandSet {
	if len(rng) == 0 {
		return HandSet{}
	}
	return HandSet(grid.Border(members(rng)))
}

// BorderPlusOne returns the border hands of rng together with all of their
// matrix neighbors, whether those are in the range or not. The result is
// empty for an empty range, a range without matrix hands, and the full
// matrix (which has no border).
//
// Complexity: O(R) for a range of R hands; each hand has at most 4 neighbors.
func BorderPlusOne[V any](rng map[string]V) HandSet {
	if len(rng) == 0 {
		return HandSet{}
	}
	return HandSet(grid.ExpandBorder(members(rng)))
}

// Islands splits the matrix hands of rng into orthogonally connected
// regions. Regions are ordered by their first hand in matrix reading order,
// and hands within a region follow the same order.
func Islands[V any](rng map[string]V) [][]string {
	comps := grid.ConnectedComponents(members(rng))
	out := make([][]string, 0, len(comps))
	for _, comp := range comps {
		labels := make([]string, 0, len(comp))
		for _, idx := range comp {
			r, c := grid.Coordinate(idx)
			labels = append(labels, matrix[r][c])
		}
		out = append(out, labels)
	}
	return out
}
