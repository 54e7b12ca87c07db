// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseScoreLine reads "<wins> <losses> <item name>". The name is the rest
// of the line after the two counts and may contain spaces.
func ParseScoreLine(line string) (Score, error) {
	winsTok, rest := cutField(line)
	lossesTok, name := cutField(rest)

	wins, err := strconv.ParseUint(winsTok, 10, 0)
	if err != nil {
		return Score{}, fmt.Errorf("%w: wins %q", ErrBadScoreLine, winsTok)
	}
	losses, err := strconv.ParseUint(lossesTok, 10, 0)
	if err != nil {
		return Score{}, fmt.Errorf("%w: losses %q", ErrBadScoreLine, lossesTok)
	}
	name = strings.TrimRightFunc(name, unicode.IsSpace)
	if name == "" {
		return Score{}, fmt.Errorf("%w: missing item name", ErrBadScoreLine)
	}
	return Score{Item: name, Wins: uint(wins), Losses: uint(losses)}, nil
}

// cutField splits off the first whitespace-delimited token
func cutField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

// ParseScoreLines parses a score file. Malformed lines are dropped and
// reported in errs; blank lines are skipped.
func ParseScoreLines(lines []string) (scores []Score, errs []error) {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := ParseScoreLine(line)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		scores = append(scores, s)
	}
	return scores, errs
}

// FormatScoreLines renders scores in score file layout
func FormatScoreLines(scores []Score) []string {
	lines := make([]string, len(scores))
	for i, s := range scores {
		lines[i] = fmt.Sprintf("%d %d %s", s.Wins, s.Losses, s.Item)
	}
	return lines
}
