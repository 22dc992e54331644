package hands_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/holdemgrid/hands"
)

// MatrixSuite checks the static matrix, its position index and neighbors.
type MatrixSuite struct {
	suite.Suite
	m [hands.Size][hands.Size]string
}

func (s *MatrixSuite) SetupTest() {
	s.m = hands.Matrix()
}

// TestRanks: 13 symbols, ace first, deuce last.
func (s *MatrixSuite) TestRanks() {
	require.Equal(s.T(), 13, hands.Size)
	require.Equal(s.T(), byte('A'), hands.Ranks[0])
	require.Equal(s.T(), byte('2'), hands.Ranks[hands.Size-1])
}

// TestCellShapes: pairs on the diagonal, suited above, offsuit below.
func (s *MatrixSuite) TestCellShapes() {
	for i := 0; i < hands.Size; i++ {
		for j := 0; j < hands.Size; j++ {
			h := s.m[i][j]
			switch {
			case i == j:
				require.Len(s.T(), h, 2, "cell (%d,%d)", i, j)
				require.Equal(s.T(), h[0], h[1], "cell (%d,%d) = %q", i, j, h)
			case i < j:
				require.True(s.T(), strings.HasSuffix(h, "s"), "cell (%d,%d) = %q", i, j, h)
				require.Equal(s.T(), hands.Ranks[i], h[0])
				require.Equal(s.T(), hands.Ranks[j], h[1])
			default:
				require.True(s.T(), strings.HasSuffix(h, "o"), "cell (%d,%d) = %q", i, j, h)
				require.Equal(s.T(), hands.Ranks[j], h[0])
				require.Equal(s.T(), hands.Ranks[i], h[1])
			}
		}
	}
}

// TestDistinctLabels: 169 cells, 169 labels.
func (s *MatrixSuite) TestDistinctLabels() {
	seen := make(map[string]struct{})
	for i := range s.m {
		for _, h := range s.m[i] {
			seen[h] = struct{}{}
		}
	}
	require.Len(s.T(), seen, 169)
}

// TestKnownCells pins a few labels.
func (s *MatrixSuite) TestKnownCells() {
	require.Equal(s.T(), "AA", hands.At(0, 0))
	require.Equal(s.T(), "AKs", hands.At(0, 1))
	require.Equal(s.T(), "AKo", hands.At(1, 0))
	require.Equal(s.T(), "T9s", hands.At(4, 5))
	require.Equal(s.T(), "22", hands.At(12, 12))
	require.Equal(s.T(), "", hands.At(13, 0))
	require.Equal(s.T(), "", hands.At(0, -1))
}

// TestMatrixIsCopy: writing to the returned array leaves the package data alone.
func (s *MatrixSuite) TestMatrixIsCopy() {
	s.m[0][0] = "XX"
	require.Equal(s.T(), "AA", hands.Matrix()[0][0])
}

// TestLocateInverse: Locate(Matrix[r][c]) == (r,c) for every cell.
func (s *MatrixSuite) TestLocateInverse() {
	for r := 0; r < hands.Size; r++ {
		for c := 0; c < hands.Size; c++ {
			pos, ok := hands.Locate(s.m[r][c])
			require.True(s.T(), ok, "Locate(%q)", s.m[r][c])
			require.Equal(s.T(), hands.Position{Row: r, Col: c}, pos)
		}
	}
}

// TestLocateUnknown: malformed labels are reported absent.
func (s *MatrixSuite) TestLocateUnknown() {
	for _, h := range []string{"", "A", "KA", "AKx", "AKso", "aa", "XX"} {
		_, ok := hands.Locate(h)
		require.False(s.T(), ok, "Locate(%q)", h)
	}
}

// TestNeighborsCorners: each corner has exactly two neighbors, in up, down, left, right order.
func (s *MatrixSuite) TestNeighborsCorners() {
	cases := []struct {
		row, col int
		want     []string
	}{
		{0, 0, []string{"AKo", "AKs"}},
		{0, 12, []string{"K2s", "A3s"}},
		{12, 0, []string{"A3o", "K2o"}},
		{12, 12, []string{"32s", "32o"}},
	}
	for _, tc := range cases {
		require.Equal(s.T(), tc.want, hands.Neighbors(tc.row, tc.col), "Neighbors(%d,%d)", tc.row, tc.col)
	}
}

// TestNeighborsEdgeAndInterior: 3 on an edge, 4 inside.
func (s *MatrixSuite) TestNeighborsEdgeAndInterior() {
	require.Equal(s.T(), []string{"AA", "AQo", "KK"}, hands.Neighbors(1, 0))
	require.Len(s.T(), hands.Neighbors(0, 5), 3)
	require.Equal(s.T(), []string{"98s", "87o", "98o", "87s"}, hands.Neighbors(6, 6))
	require.Nil(s.T(), hands.Neighbors(-1, 0))
	require.Nil(s.T(), hands.Neighbors(0, 13))
}

func TestMatrixSuite(t *testing.T) {
	suite.Run(t, new(MatrixSuite))
}
