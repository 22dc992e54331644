package gridgraph

import "fmt"

var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// New constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability and indexes every value
// by its first row-major occurrence.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New[T comparable](values [][]T, opts GridOptions) (*GridGraph[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for i, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}

	cells := make([][]T, h)
	positions := make(map[T]int, w*h)
	for r := 0; r < h; r++ {
		cells[r] = make([]T, w)
		copy(cells[r], values[r])
		for c, v := range cells[r] {
			if _, dup := positions[v]; !dup {
				positions[v] = r*w + c
			}
		}
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph[T]{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		cells:           cells,
		positions:       positions,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// At returns the value stored at (row,col).
// Returns ErrOutOfBounds for coordinates outside the grid.
func (gg *GridGraph[T]) At(row, col int) (T, error) {
	if !gg.InBounds(row, col) {
		var zero T
		return zero, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, gg.Height, gg.Width)
	}
	return gg.cells[row][col], nil
}

// Cells returns a deep copy of the grid values, row by row.
func (gg *GridGraph[T]) Cells() [][]T {
	out := make([][]T, gg.Height)
	for r := range gg.cells {
		out[r] = append([]T(nil), gg.cells[r]...)
	}
	return out
}

// Locate returns the coordinates of v. For values present more than once,
// the first occurrence in row-major order wins.
// Complexity: O(1).
func (gg *GridGraph[T]) Locate(v T) (row, col int, ok bool) {
	idx, ok := gg.positions[v]
	if !ok {
		return 0, 0, false
	}
	row, col = gg.Coordinate(idx)
	return row, col, true
}

// NeighborOffsets returns a copy of the {dRow, dCol} offsets used for adjacency.
func (gg *GridGraph[T]) NeighborOffsets() [][2]int {
	return append([][2]int(nil), gg.neighborOffsets...)
}

// Neighbors returns the in-bounds neighbor values of (row,col), in the
// order of NeighborOffsets. Coordinates outside the grid yield nil.
// Complexity: O(d).
func (gg *GridGraph[T]) Neighbors(row, col int) []T {
	if !gg.InBounds(row, col) {
		return nil
	}
	out := make([]T, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if gg.InBounds(nr, nc) {
			out = append(out, gg.cells[nr][nc])
		}
	}
	return out
}

// Index maps (row,col) to a row‑major index: row*Width + col.
// Complexity: O(1).
func (gg *GridGraph[T]) Index(row, col int) int {
	return row*gg.Width + col
}

// Coordinate converts a row‑major index back to (row,col).
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) (row, col int) {
	return idx / gg.Width, idx % gg.Width
}
