// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Option is the side of a matchup that won
type Option int

const (
	OptionA Option = 0
	OptionB Option = 1
)

// Valid reports whether o is A or B
func (o Option) Valid() bool {
	return o == OptionA || o == OptionB
}

func (o Option) String() string {
	switch o {
	case OptionA:
		return "A"
	case OptionB:
		return "B"
	default:
		return "?"
	}
}

// Vote records one decided matchup. Pair indices are positions in the
// round's items at the moment the vote was cast.
type Vote struct {
	Pair   Pair
	Winner Option
}

// WinnerIndex returns the position of the winning item
func (v Vote) WinnerIndex() int {
	if v.Winner == OptionA {
		return v.Pair.A
	}
	return v.Pair.B
}

// LoserIndex returns the position of the losing item
func (v Vote) LoserIndex() int {
	if v.Winner == OptionA {
		return v.Pair.B
	}
	return v.Pair.A
}

// Matchup is the pair of item names shown for a vote
type Matchup struct {
	A string
	B string
}
