package main

import "github.com/katalvlaran/holdemgrid/hands"

type cellKind int

const (
	cellOut    cellKind = iota // neither in the range nor in the expansion
	cellInside                 // in the range, away from its border
	cellBorder                 // border hand of the range
	cellAdded                  // outside the range, added by the expansion
)

type report struct {
	rng       hands.HandSet
	border    hands.HandSet
	expansion hands.HandSet
	combos    int
	islands   [][]string
}

func newReport(rng hands.HandSet) report {
	return report{
		rng:       rng,
		border:    hands.Border(rng),
		expansion: hands.BorderPlusOne(rng),
		combos:    hands.RangeCombinations(rng),
		islands:   hands.Islands(rng),
	}
}

// added lists the expansion hands that are not part of the range, in matrix order.
func (r report) added() []string {
	var out []string
	for _, h := range r.expansion.Sorted() {
		if !r.rng.Has(h) {
			out = append(out, h)
		}
	}
	return out
}

func (r report) kind(hand string) cellKind {
	switch {
	case r.border.Has(hand):
		return cellBorder
	case r.rng.Has(hand):
		return cellInside
	case r.expansion.Has(hand):
		return cellAdded
	}
	return cellOut
}

// kinds classifies every matrix cell.
func (r report) kinds() [hands.Size][hands.Size]cellKind {
	var out [hands.Size][hands.Size]cellKind
	m := hands.Matrix()
	for i := range m {
		for j, h := range m[i] {
			out[i][j] = r.kind(h)
		}
	}
	return out
}
