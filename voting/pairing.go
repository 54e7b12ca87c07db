// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Pair is a matchup between the items at positions A and B
type Pair struct {
	A int
	B int
}

// Normalize returns the pair with the lower index first
func (p Pair) Normalize() Pair {
	if p.A > p.B {
		return Pair{A: p.B, B: p.A}
	}
	return p
}

// Valid reports whether both indices are distinct positions below n
func (p Pair) Valid(n int) bool {
	return p.A >= 0 && p.B >= 0 && p.A < n && p.B < n && p.A != p.B
}

// GeneratePairs returns every unordered pair over n items in row-major order:
// (0,1), (0,2), ..., (0,n-1), (1,2), ...
func GeneratePairs(n int) ([]Pair, error) {
	if n < MinItems {
		return nil, ErrTooFewItems
	}

	pairs := make([]Pair, 0, CompleteCount(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{A: i, B: j})
		}
	}
	return pairs, nil
}

// CompleteCount is the number of unordered pairs over n items
func CompleteCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
