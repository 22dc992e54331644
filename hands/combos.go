package hands

import (
	"fmt"
	"strings"

	"github.com/paulhankin/poker"
)

// TotalCombinations is the number of two-card starting hands: 52 choose 2.
// The combination counts of all 169 labels add up to it.
const TotalCombinations = 1326

var (
	all      = flatten(matrix)
	weighted = buildWeighted(all)
)

// suitSymbols are ordered clubs, diamonds, hearts, spades, matching poker.Suit.
const suitSymbols = "cdhs"

// Combinations returns the number of two-card combinations hand stands for:
// 6 for a pair, 4 for a suited hand, 12 for an offsuit hand. Any other shape
// returns 0 and is logged at debug level, since matrix labels never have it.
func Combinations(hand string) int {
	switch {
	case len(hand) == 2 && hand[0] == hand[1]:
		return 6
	case strings.HasSuffix(hand, "s"):
		return 4
	case strings.HasSuffix(hand, "o"):
		return 12
	}
	currentLogger().Debug("combination count of malformed hand label", "hand", hand)
	return 0
}

// All returns the 169 labels in matrix reading order (row-major).
func All() []string {
	return append([]string(nil), all...)
}

// Weighted returns every label repeated by its combination count, in matrix
// reading order. Its length is TotalCombinations.
func Weighted() []string {
	return append([]string(nil), weighted...)
}

func flatten(m [Size][Size]string) []string {
	out := make([]string, 0, Size*Size)
	for i := range m {
		out = append(out, m[i][:]...)
	}
	return out
}

func buildWeighted(labels []string) []string {
	out := make([]string, 0, TotalCombinations)
	for _, h := range labels {
		for n := Combinations(h); n > 0; n-- {
			out = append(out, h)
		}
	}
	return out
}

// Combo is one concrete two-card holding of a hand label, higher card first.
type Combo struct {
	Hand  string
	Cards [2]poker.Card
	text  string
}

// String renders the combo as rank and suit letters, e.g. "AsKs".
func (c Combo) String() string {
	return c.text
}

// Combos enumerates the concrete combinations of hand, ordered by the suits
// of the first and then the second card (clubs, diamonds, hearts, spades).
// The result has Combinations(hand) entries; unknown labels return
// ErrUnknownHand.
func Combos(hand string) ([]Combo, error) {
	pos, ok := Locate(hand)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHand, hand)
	}
	hi, lo := pos.Row, pos.Col
	if hi > lo {
		hi, lo = lo, hi
	}

	out := make([]Combo, 0, Combinations(hand))
	for s1 := 0; s1 < len(suitSymbols); s1++ {
		for s2 := 0; s2 < len(suitSymbols); s2++ {
			switch {
			case pos.Row == pos.Col && s2 <= s1:
				continue
			case pos.Row < pos.Col && s1 != s2:
				continue
			case pos.Row > pos.Col && s1 == s2:
				continue
			}
			c, err := makeCombo(hand, hi, s1, lo, s2)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func makeCombo(hand string, r1, s1, r2, s2 int) (Combo, error) {
	c1, err := poker.MakeCard(poker.Suit(s1), cardRank(r1))
	if err != nil {
		return Combo{}, fmt.Errorf("hands: card for %q: %w", hand, err)
	}
	c2, err := poker.MakeCard(poker.Suit(s2), cardRank(r2))
	if err != nil {
		return Combo{}, fmt.Errorf("hands: card for %q: %w", hand, err)
	}
	text := string([]byte{Ranks[r1], suitSymbols[s1], Ranks[r2], suitSymbols[s2]})
	return Combo{Hand: hand, Cards: [2]poker.Card{c1, c2}, text: text}, nil
}

// cardRank converts a matrix rank index to a poker.Rank, where the ace is 1
// and the king 13.
func cardRank(idx int) poker.Rank {
	if idx == 0 {
		return poker.Rank(1)
	}
	return poker.Rank(14 - idx)
}
