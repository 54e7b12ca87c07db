// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Format selects how matchups are scheduled
type Format int

const (
	FormatInvalid Format = iota
	FormatFull
	FormatReduced
	FormatRanked
)

// Textual tokens, as written in saved rounds
const (
	tokenFull    = "full"
	tokenReduced = "reduced"
	tokenRanked  = "ranked"
	tokenInvalid = "invalid"
)

// String returns the textual token for the format
func (f Format) String() string {
	switch f {
	case FormatFull:
		return tokenFull
	case FormatReduced:
		return tokenReduced
	case FormatRanked:
		return tokenRanked
	default:
		return tokenInvalid
	}
}

// Char returns the single-character token ('f', 'r', 'k'), or 0 for Invalid
func (f Format) Char() byte {
	switch f {
	case FormatFull:
		return 'f'
	case FormatReduced:
		return 'r'
	case FormatRanked:
		return 'k'
	default:
		return 0
	}
}

// Valid reports whether f is an operating format
func (f Format) Valid() bool {
	return f == FormatFull || f == FormatReduced || f == FormatRanked
}

// Scheduled reports whether the format uses a precomputed pair schedule
func (f Format) Scheduled() bool {
	return f == FormatFull || f == FormatReduced
}

// ParseFormat maps an exact textual token to a Format.
// Unknown tokens return FormatInvalid.
func ParseFormat(s string) Format {
	switch s {
	case tokenFull:
		return FormatFull
	case tokenReduced:
		return FormatReduced
	case tokenRanked:
		return FormatRanked
	default:
		return FormatInvalid
	}
}

// FormatFromChar maps a single-character token to a Format
func FormatFromChar(c byte) Format {
	switch c {
	case 'f', 'F':
		return FormatFull
	case 'r', 'R':
		return FormatReduced
	case 'k', 'K':
		return FormatRanked
	default:
		return FormatInvalid
	}
}
