// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "slices"

// Verify checks every structural invariant of the round. Callers needing
// a reason should rely on the errors returned by New or Parse.
func (r *Round) Verify() bool {
	if r.seed == 0 || !r.format.Valid() {
		return false
	}
	if validateItems(r.originalItems) != nil || validateItems(r.items) != nil {
		return false
	}
	if !samePermutation(r.originalItems, r.items) {
		return false
	}

	n := len(r.items)
	for _, v := range r.votes {
		if !v.Pair.Valid(n) || !v.Winner.Valid() {
			return false
		}
	}

	switch s := r.sched.(type) {
	case *pairQueue:
		if !r.format.Scheduled() {
			return false
		}
		if len(s.pending)+len(r.votes) != ExpectedScheduleSize(r.format, n) {
			return false
		}
		seen := make(map[Pair]bool, len(s.pending)+len(r.votes))
		check := func(p Pair) bool {
			if !p.Valid(n) || seen[p.Normalize()] {
				return false
			}
			seen[p.Normalize()] = true
			return true
		}
		for _, p := range s.pending {
			if !check(p) {
				return false
			}
		}
		for _, v := range r.votes {
			if !check(v.Pair) {
				return false
			}
		}
		return true

	case *insertionState:
		if r.format != FormatRanked || len(r.votes) > CompleteCount(n) {
			return false
		}
		if s.n != n || s.sorted < 1 || s.sorted > n {
			return false
		}
		return r.replaysCleanly()

	default:
		return false
	}
}

// replaysCleanly rebuilds a Ranked round from its seed and votes and
// compares the result with the live state
func (r *Round) replaysCleanly() bool {
	fresh, err := build(r.originalItems, r.format, r.seed)
	if err != nil {
		return false
	}
	if r.shuffled {
		if err := fresh.Shuffle(); err != nil {
			return false
		}
	}
	for _, v := range r.votes {
		if err := fresh.replay(v); err != nil {
			return false
		}
	}

	want, ok := fresh.sched.(*insertionState)
	got, _ := r.sched.(*insertionState)
	return ok && *want == *got && slices.Equal(fresh.items, r.items)
}

func samePermutation(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, item := range a {
		counts[item]++
	}
	for _, item := range b {
		counts[item]--
		if counts[item] < 0 {
			return false
		}
	}
	return true
}
