package gridgraph

// Border returns the members that sit on the edge of the set: members with at
// least one in-bounds neighbor that is not itself a member. Members that do
// not occur in the grid are skipped.
//
// Behavior:
//  1. Locate each member (O(1) via the position index).
//  2. Scan its neighbors; stop at the first non-member.
//
// Complexity: O(M·d) time, O(M) memory, M = len(members).
func (gg *GridGraph[T]) Border(members map[T]struct{}) map[T]struct{} {
	border := make(map[T]struct{})
	for v := range members {
		row, col, ok := gg.Locate(v)
		if !ok {
			continue
		}
		for _, d := range gg.neighborOffsets {
			nr, nc := row+d[0], col+d[1]
			if !gg.InBounds(nr, nc) {
				continue
			}
			if _, in := members[gg.cells[nr][nc]]; !in {
				border[v] = struct{}{}
				break
			}
		}
	}
	return border
}

// ExpandBorder returns the border of members together with every neighbor
// of every border cell ("border plus one"). Neighbors are added whether or
// not they are members.
//
// An empty set, a set with no located members, or a set that covers the
// whole grid all yield an empty result.
//
// Complexity: O(M·d) time, O(M) memory.
func (gg *GridGraph[T]) ExpandBorder(members map[T]struct{}) map[T]struct{} {
	border := gg.Border(members)
	out := make(map[T]struct{}, len(border)*(len(gg.neighborOffsets)+1))
	for v := range border {
		out[v] = struct{}{}
		row, col, _ := gg.Locate(v)
		for _, n := range gg.Neighbors(row, col) {
			out[n] = struct{}{}
		}
	}
	return out
}
