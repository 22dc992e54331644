package hands

import (
	"fmt"
	"sort"
	"strings"
)

// HandSet is a set of hand labels. It doubles as the range type: a range is
// the set of hands a strategy plays.
type HandSet map[string]struct{}

// NewHandSet builds a set from labels.
func NewHandSet(labels ...string) HandSet {
	s := make(HandSet, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Has reports whether hand is in the set.
func (s HandSet) Has(hand string) bool {
	_, ok := s[hand]
	return ok
}

// Sorted returns the labels in matrix reading order. Labels that are not on
// the matrix come last, in lexical order.
func (s HandSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, oki := Locate(out[i])
		pj, okj := Locate(out[j])
		switch {
		case oki && okj:
			return grid.Index(pi.Row, pi.Col) < grid.Index(pj.Row, pj.Col)
		case oki != okj:
			return oki
		default:
			return out[i] < out[j]
		}
	})
	return out
}

// ParseRange reads a comma separated list of hand labels such as
// "AA, KK, AKs". Surrounding whitespace and empty entries are ignored.
// Unknown labels fail with ErrUnknownHand; input without any label fails
// with ErrEmptyRange.
func ParseRange(notation string) (HandSet, error) {
	rng := make(HandSet)
	for _, part := range strings.Split(notation, ",") {
		h := strings.TrimSpace(part)
		if h == "" {
			continue
		}
		if _, ok := Locate(h); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownHand, h)
		}
		rng[h] = struct{}{}
	}
	if len(rng) == 0 {
		return nil, ErrEmptyRange
	}
	return rng, nil
}

// RangeCombinations sums the combination counts of the matrix hands in rng.
// Unknown labels count as zero.
func RangeCombinations[V any](rng map[string]V) int {
	n := 0
	for h := range rng {
		if _, ok := Locate(h); ok {
			n += Combinations(h)
		}
	}
	return n
}

// members copies the keys of rng into the set form the grid expects.
func members[V any](rng map[string]V) map[string]struct{} {
	m := make(map[string]struct{}, len(rng))
	for h := range rng {
		m[h] = struct{}{}
	}
	return m
}
