// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Serialize renders the round as saved text, one entry per line:
//
//	<items in creation order>
//	<blank line>
//	<seed>
//	<format token>
//	<a> <b> <winner 0|1>   (one line per vote, oldest first)
//
// Vote indices are positions in the shuffled items, so the round must be
// shuffled before voting for Parse to rebuild it.
func (r *Round) Serialize() []string {
	lines := make([]string, 0, len(r.originalItems)+3+len(r.votes))
	lines = append(lines, r.originalItems...)
	lines = append(lines, "", strconv.FormatUint(uint64(r.seed), 10), r.format.String())
	for _, v := range r.votes {
		lines = append(lines, fmt.Sprintf("%d %d %d", v.Pair.A, v.Pair.B, int(v.Winner)))
	}
	return lines
}

// Parse rebuilds a round from saved text. The schedule is regenerated from
// the items, format and seed, shuffled, and the votes are replayed on it.
// The parsed round is marked saved.
func Parse(lines []string) (*Round, error) {
	lines = slices.Clone(lines)
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	sep := slices.IndexFunc(lines, func(line string) bool {
		return strings.TrimSpace(line) == ""
	})
	if sep < 0 {
		return nil, fmt.Errorf("%w: no blank line after items", ErrMissingSection)
	}
	items := lines[:sep]
	if err := validateItems(items); err != nil {
		return nil, err
	}

	rest := lines[sep+1:]
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: seed", ErrMissingSection)
	}
	seed, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w: %q", sep+2, ErrBadSeed, rest[0])
	}

	if len(rest) < 2 {
		return nil, fmt.Errorf("%w: format", ErrMissingSection)
	}
	format := ParseFormat(rest[1])
	if !format.Valid() {
		return nil, fmt.Errorf("line %d: %w: %q", sep+3, ErrInvalidFormat, rest[1])
	}

	r, err := build(items, format, uint32(seed))
	if err != nil {
		return nil, err
	}
	if err := r.Shuffle(); err != nil {
		return nil, err
	}

	limit := ExpectedScheduleSize(format, len(items))
	if format == FormatRanked {
		limit = CompleteCount(len(items))
	}

	for i, line := range rest[2:] {
		lineNo := sep + 4 + i
		if len(r.votes) >= limit {
			return nil, fmt.Errorf("line %d: %w (%d)", lineNo, ErrTooManyVotes, limit)
		}
		v, err := parseVoteLine(line, len(items))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := r.replay(v); err != nil {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, err, line)
		}
	}

	if !r.Verify() {
		return nil, ErrVerifyFailed
	}
	r.saved = true
	return r, nil
}

func parseVoteLine(line string, n int) (Vote, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Vote{}, fmt.Errorf("%w: want 3 numbers, got %q", ErrBadVote, line)
	}

	var nums [3]uint64
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return Vote{}, fmt.Errorf("%w: %q is not a non-negative integer", ErrBadVote, f)
		}
		nums[i] = v
	}

	if nums[2] > 1 {
		return Vote{}, fmt.Errorf("%w: winner must be 0 or 1, got %d", ErrBadVote, nums[2])
	}
	v := Vote{
		Pair:   Pair{A: int(nums[0]), B: int(nums[1])},
		Winner: Option(nums[2]),
	}
	if !v.Pair.Valid(n) {
		return Vote{}, fmt.Errorf("%w: indices %d and %d must differ and be below %d",
			ErrBadVote, v.Pair.A, v.Pair.B, n)
	}
	return v, nil
}
