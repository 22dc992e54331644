package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/holdemgrid/gridgraph"
)

// randomGrid builds an n×n grid of distinct ints and a member set holding
// roughly a third of them.
func randomGrid(b *testing.B, n int) (*gridgraph.GridGraph[int], map[int]struct{}) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	members := make(map[int]struct{})
	for r := 0; r < n; r++ {
		grid[r] = make([]int, n)
		for c := 0; c < n; c++ {
			v := r*n + c
			grid[r][c] = v
			if rng.Intn(3) == 0 {
				members[v] = struct{}{}
			}
		}
	}
	gg, err := gridgraph.New(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return gg, members
}

// BenchmarkExpandBorder measures ExpandBorder on a 300×300 grid.
// Complexity: O(M×d)
func BenchmarkExpandBorder(b *testing.B) {
	gg, members := randomGrid(b, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ExpandBorder(members)
	}
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 300×300 grid.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, members := randomGrid(b, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents(members)
	}
}
