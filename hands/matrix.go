package hands

import (
	"github.com/katalvlaran/holdemgrid/gridgraph"
)

// Ranks lists the 13 card ranks from strongest to weakest.
// Index 0 is the ace; rows and columns of the matrix follow this order.
const Ranks = "AKQJT98765432"

// Size is the number of ranks, and so the height and width of the matrix.
const Size = len(Ranks)

// Position locates a hand label on the matrix.
type Position struct {
	Row, Col int
}

var (
	matrix = buildMatrix()
	grid   = mustGrid(matrix)
)

// buildMatrix lays out the labels: pairs on the diagonal, suited hands
// above it and offsuit hands below it, higher rank first in every label.
func buildMatrix() [Size][Size]string {
	var m [Size][Size]string
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			switch {
			case i == j:
				m[i][j] = string([]byte{Ranks[i], Ranks[i]})
			case i < j:
				m[i][j] = string([]byte{Ranks[i], Ranks[j], 's'})
			default:
				m[i][j] = string([]byte{Ranks[j], Ranks[i], 'o'})
			}
		}
	}
	return m
}

func mustGrid(m [Size][Size]string) *gridgraph.GridGraph[string] {
	rows := make([][]string, Size)
	for i := range m {
		rows[i] = m[i][:]
	}
	gg, err := gridgraph.New(rows, gridgraph.DefaultGridOptions())
	if err != nil {
		panic(err)
	}
	return gg
}

// Matrix returns the 13×13 hand matrix. The array is returned by value.
func Matrix() [Size][Size]string {
	return matrix
}

// At returns the label at (row, col), or "" when the cell is off the matrix.
func At(row, col int) string {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return ""
	}
	return matrix[row][col]
}

// Locate returns the matrix position of hand. Unknown or malformed labels
// report false.
func Locate(hand string) (Position, bool) {
	row, col, ok := grid.Locate(hand)
	if !ok {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}

// Neighbors returns the labels orthogonally adjacent to (row, col), ordered
// up, down, left, right and clipped to the matrix: 2 for a corner, 3 on an
// edge, 4 inside. Coordinates off the matrix return nil.
func Neighbors(row, col int) []string {
	return grid.Neighbors(row, col)
}
