// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"cmp"
	"fmt"
	"slices"
)

// Score is the win/loss tally of one item
type Score struct {
	Item   string
	Wins   uint
	Losses uint
}

// Net returns wins minus losses
func (s Score) Net() int {
	return int(s.Wins) - int(s.Losses)
}

// Total returns the number of votes the item took part in
func (s Score) Total() uint {
	return s.Wins + s.Losses
}

// Result names the winner and loser of one vote
type Result struct {
	Winner string
	Loser  string
}

// CalculateScores tallies votes whose indices refer to items.
// Items never voted on are absent; output follows first appearance.
func CalculateScores(items []string, votes []Vote) ([]Score, error) {
	results := make([]Result, 0, len(votes))
	for i, v := range votes {
		if !v.Pair.Valid(len(items)) || !v.Winner.Valid() {
			return nil, fmt.Errorf("vote %d: %w", i, ErrBadVote)
		}
		results = append(results, Result{
			Winner: items[v.WinnerIndex()],
			Loser:  items[v.LoserIndex()],
		})
	}
	return TallyResults(results), nil
}

// TallyResults folds results into per-item scores
func TallyResults(results []Result) []Score {
	index := make(map[string]int)
	var scores []Score
	slot := func(item string) *Score {
		i, ok := index[item]
		if !ok {
			i = len(scores)
			index[item] = i
			scores = append(scores, Score{Item: item})
		}
		return &scores[i]
	}

	for _, res := range results {
		slot(res.Winner).Wins++
		slot(res.Loser).Losses++
	}
	return scores
}

// Results resolves every vote to item names as they stood when it was cast.
// Ranked votes move items, so their names come from undoing a copy.
func (r *Round) Results() []Result {
	results := make([]Result, len(r.votes))
	if r.format.Scheduled() {
		for i, v := range r.votes {
			results[i] = Result{Winner: r.items[v.WinnerIndex()], Loser: r.items[v.LoserIndex()]}
		}
		return results
	}

	c := r.Clone()
	for i := len(r.votes) - 1; i >= 0; i-- {
		v := r.votes[i]
		c.UndoVote()
		results[i] = Result{Winner: c.items[v.WinnerIndex()], Loser: c.items[v.LoserIndex()]}
	}
	return results
}

// Scores tallies the round's votes
func (r *Round) Scores() []Score {
	return TallyResults(r.Results())
}

// SortScores orders scores for display: higher net score first; on equal
// positive net fewer total votes first, on equal negative net more total
// votes first; then by item name.
func SortScores(scores []Score) {
	slices.SortStableFunc(scores, func(a, b Score) int {
		if c := cmp.Compare(b.Net(), a.Net()); c != 0 {
			return c
		}
		switch net := a.Net(); {
		case net > 0:
			if c := cmp.Compare(a.Total(), b.Total()); c != 0 {
				return c
			}
		case net < 0:
			if c := cmp.Compare(b.Total(), a.Total()); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Item, b.Item)
	})
}

// MergeScores sums score sets by item name. Output follows first appearance.
func MergeScores(sets ...[]Score) []Score {
	index := make(map[string]int)
	var merged []Score
	for _, set := range sets {
		for _, s := range set {
			i, ok := index[s.Item]
			if !ok {
				index[s.Item] = len(merged)
				merged = append(merged, s)
				continue
			}
			merged[i].Wins += s.Wins
			merged[i].Losses += s.Losses
		}
	}
	return merged
}
