// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// minPruneItems is the smallest round that gets pruned
const minPruneItems = 6

// PruningAmount returns how many N-spaced offsets are removed for n items
func PruningAmount(n int) int {
	if n < minPruneItems {
		return 0
	}
	return 1 + (n-minPruneItems)/2
}

// PrunePairs removes, for each offset k in 1..PruningAmount(n), the pair
// joining every item i to item (i+k) mod n. Survivors keep their order.
// Offsets stay below n/2, so each offset removes exactly n distinct pairs.
func PrunePairs(pairs []Pair, n int) []Pair {
	amount := PruningAmount(n)
	if amount == 0 {
		return pairs
	}

	removed := make(map[Pair]bool, n*amount)
	for k := 1; k <= amount; k++ {
		for i := 0; i < n; i++ {
			removed[Pair{A: i, B: (i + k) % n}.Normalize()] = true
		}
	}

	kept := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if !removed[p.Normalize()] {
			kept = append(kept, p)
		}
	}
	return kept
}

// ExpectedScheduleSize is the total matchup count for a scheduled format.
// Ranked has no fixed schedule and returns 0.
func ExpectedScheduleSize(format Format, n int) int {
	switch format {
	case FormatFull:
		return CompleteCount(n)
	case FormatReduced:
		return CompleteCount(n) - n*PruningAmount(n)
	default:
		return 0
	}
}
