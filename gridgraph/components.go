package gridgraph

import "sort"

// ConnectedComponents finds all contiguous regions ("islands") of member
// cells, according to gg.Conn connectivity.
// Returns a slice of components; each component is a sorted slice of
// cell‐indices (row‐major). Components are ordered by their first cell.
//
// To convert an index back to (row,col), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents(members map[T]struct{}) [][]int {
	isMember := func(row, col int) bool {
		_, ok := members[gg.cells[row][col]]
		return ok
	}

	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			i0 := gg.Index(r, c)
			if seen[i0] || !isMember(r, c) {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ur, uc := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vr, vc := ur+d[0], uc+d[1]
					if !gg.InBounds(vr, vc) || !isMember(vr, vc) {
						continue
					}
					vi := gg.Index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			sort.Ints(queue)
			comps = append(comps, queue)
		}
	}
	return comps
}
