// Package hands provides the canonical 13×13 Texas Hold'em starting-hand
// matrix and the range operations built on top of it.
//
// What
//
//   - Ranks: the 13 rank symbols, strongest first ("AKQJT98765432").
//   - Matrix: 169 hand labels. Pairs on the diagonal ("AA"), suited hands
//     above it ("AKs"), offsuit hands below it ("AKo").
//   - Locate: O(1) inverse lookup from label to grid Position.
//   - Combinations: 6 combos per pair, 4 per suited, 12 per offsuit hand;
//     the 169 labels add up to TotalCombinations (1326 = 52 choose 2).
//   - Neighbors: up, down, left, right labels of a cell.
//   - BorderPlusOne: the border hands of a range plus one layer outward.
//   - Combos: concrete two-card combinations of a label.
//   - ParseRange, Islands, RangeCombinations: range helpers.
//
// Lifecycle
//
//	All derived data (matrix, position index, flat and weighted hand lists)
//	is built once at package initialization and never mutated. Every
//	function is safe for concurrent use. Accessors returning slices hand
//	out copies.
//
// Ranges
//
//	Functions taking a range accept any map keyed by hand label; values are
//	ignored, so both HandSet and map[string]string selections work. Labels
//	that are not part of the matrix are skipped silently.
//
// Usage
//
//	rng, err := hands.ParseRange("AA,KK,AKs")
//	if err != nil {
//		// ErrUnknownHand or ErrEmptyRange
//	}
//	outline := hands.BorderPlusOne(rng).Sorted()
package hands
