package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity, ordered up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals after the orthogonal moves:
	// up-left, up-right, down-left, down-right.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a 2D grid of comparable values as a graph. It is immutable once built
// and safe for concurrent readers.
// Width and Height define dimensions; cells[row][col] holds the input value.
// positions maps each value to the row-major index of its first occurrence.
// neighborOffsets is precomputed as {dRow, dCol} pairs for adjacency lookups.
type GridGraph[T comparable] struct {
	Width, Height   int
	Conn            Connectivity
	cells           [][]T
	positions       map[T]int
	neighborOffsets [][2]int
}
