// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func itemNames(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item%d", i+1)
	}
	return items
}

func mustRound(t *testing.T, items []string, format Format, seed uint32) *Round {
	t.Helper()
	r, err := NewWithSeed(items, format, seed)
	if err != nil {
		t.Fatalf("NewWithSeed failed: %v", err)
	}
	return r
}

func TestNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		items  []string
		format Format
		want   error
	}{
		{"no items", nil, FormatFull, ErrTooFewItems},
		{"one item", []string{"a"}, FormatFull, ErrTooFewItems},
		{"empty item", []string{"a", ""}, FormatFull, ErrEmptyItem},
		{"whitespace item", []string{"a", " \t "}, FormatFull, ErrEmptyItem},
		{"duplicate", []string{"a", "b", "a"}, FormatReduced, ErrDuplicateItem},
		{"line break", []string{"a", "b\nc"}, FormatFull, ErrInvalidItem},
		{"invalid format", []string{"a", "b"}, FormatInvalid, ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.items, tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if r != nil {
				t.Error("expected nil round on failure")
			}
		})
	}
}

func TestNewWithSeedRejectsZero(t *testing.T) {
	if _, err := NewWithSeed([]string{"a", "b"}, FormatFull, 0); !errors.Is(err, ErrBadSeed) {
		t.Errorf("error = %v, want ErrBadSeed", err)
	}
}

func TestNewGeneratesSeed(t *testing.T) {
	r, err := New([]string{"a", "b"}, FormatFull)
	if err != nil {
		t.Fatal(err)
	}
	if r.Seed() == 0 {
		t.Error("generated seed must be nonzero")
	}
	if !r.Verify() {
		t.Error("fresh round should verify")
	}
}

func TestNewCopiesItems(t *testing.T) {
	items := []string{"a", "b", "c"}
	r := mustRound(t, items, FormatFull, 1)
	items[0] = "changed"
	if r.Items()[0] != "a" || r.OriginalItems()[0] != "a" {
		t.Error("round should not alias the caller's slice")
	}
}

func TestFullScenarioScores(t *testing.T) {
	r := mustRound(t, itemNames(4), FormatFull, 1)

	total, exact := r.ScheduledVotes()
	if total != 6 || !exact {
		t.Fatalf("ScheduledVotes = %d, %v; want 6, true", total, exact)
	}

	for r.HasRemainingVotes() {
		if !r.Vote(OptionA) {
			t.Fatal("Vote returned false with votes remaining")
		}
	}
	if r.VoteCount() != 6 {
		t.Fatalf("cast %d votes, want 6", r.VoteCount())
	}

	scores := r.Scores()
	SortScores(scores)
	expected := []Score{
		{Item: "item1", Wins: 3, Losses: 0},
		{Item: "item2", Wins: 2, Losses: 1},
		{Item: "item3", Wins: 1, Losses: 2},
		{Item: "item4", Wins: 0, Losses: 3},
	}
	if !slices.Equal(scores, expected) {
		t.Errorf("scores = %v, want %v", scores, expected)
	}
}

func TestVoteOnCompletedRound(t *testing.T) {
	r := mustRound(t, []string{"a", "b"}, FormatFull, 1)
	if !r.Vote(OptionB) {
		t.Fatal("first vote should succeed")
	}
	before := r.Votes()
	if r.Vote(OptionA) {
		t.Error("vote on completed round should return false")
	}
	if !slices.Equal(r.Votes(), before) {
		t.Error("failed vote must not change history")
	}
	if _, ok := r.CurrentMatchup(); ok {
		t.Error("completed round has no matchup")
	}
}

func TestVoteRejectsInvalidOption(t *testing.T) {
	r := mustRound(t, []string{"a", "b"}, FormatFull, 1)
	if r.Vote(Option(2)) {
		t.Error("invalid option should be rejected")
	}
	if r.VoteCount() != 0 {
		t.Error("invalid option must not record a vote")
	}
}

func TestUndoWithoutVotes(t *testing.T) {
	r := mustRound(t, []string{"a", "b", "c"}, FormatRanked, 1)
	if r.UndoVote() {
		t.Error("undo with no votes should return false")
	}
}

func TestSavedFlag(t *testing.T) {
	r := mustRound(t, []string{"a", "b", "c"}, FormatFull, 1)
	if r.IsSaved() {
		t.Error("fresh round is not saved")
	}
	r.MarkSaved()
	r.Vote(OptionA)
	if r.IsSaved() {
		t.Error("vote should clear the saved flag")
	}
	r.MarkSaved()
	r.UndoVote()
	if r.IsSaved() {
		t.Error("undo should clear the saved flag")
	}
}

// walk drives a round with a deterministic answer pattern and checks that
// every vote followed by an undo restores the previous state
func walk(t *testing.T, r *Round, pattern func(step int) Option) {
	t.Helper()
	for step := 0; r.HasRemainingVotes(); step++ {
		matchup, _ := r.CurrentMatchup()
		sorted, _ := r.NumberOfSortedItems()
		items := r.Items()
		sched := r.Schedule()

		opt := pattern(step)
		if !r.Vote(opt) {
			t.Fatalf("step %d: vote failed", step)
		}
		if !r.UndoVote() {
			t.Fatalf("step %d: undo failed", step)
		}

		gotMatchup, _ := r.CurrentMatchup()
		gotSorted, _ := r.NumberOfSortedItems()
		if gotMatchup != matchup || gotSorted != sorted {
			t.Fatalf("step %d: undo restored %v/%d, want %v/%d", step, gotMatchup, gotSorted, matchup, sorted)
		}
		if !slices.Equal(r.Items(), items) || !slices.Equal(r.Schedule(), sched) {
			t.Fatalf("step %d: undo did not restore items or schedule", step)
		}

		r.Vote(opt)
		if !r.Verify() {
			t.Fatalf("step %d: round failed verification", step)
		}
	}
}

func TestVoteUndoSymmetry(t *testing.T) {
	patterns := map[string]func(int) Option{
		"always A":    func(int) Option { return OptionA },
		"always B":    func(int) Option { return OptionB },
		"alternating": func(s int) Option { return Option(s % 2) },
		"every third": func(s int) Option {
			if s%3 == 0 {
				return OptionB
			}
			return OptionA
		},
	}

	for _, format := range []Format{FormatFull, FormatReduced, FormatRanked} {
		for name, pattern := range patterns {
			t.Run(format.String()+"/"+name, func(t *testing.T) {
				r := mustRound(t, itemNames(8), format, 2024)
				if err := r.Shuffle(); err != nil {
					t.Fatal(err)
				}
				walk(t, r, pattern)
			})
		}
	}
}

func TestUndoAllRestoresFreshRound(t *testing.T) {
	for _, format := range []Format{FormatFull, FormatReduced, FormatRanked} {
		t.Run(format.String(), func(t *testing.T) {
			r := mustRound(t, itemNames(7), format, 77)
			r.Shuffle()
			fresh := r.Clone()

			for i := 0; r.HasRemainingVotes(); i++ {
				r.Vote(Option(i % 2))
			}
			for r.UndoVote() {
			}

			if !slices.Equal(r.Items(), fresh.Items()) {
				t.Errorf("items = %v, want %v", r.Items(), fresh.Items())
			}
			if !slices.Equal(r.Schedule(), fresh.Schedule()) {
				t.Error("schedule not restored")
			}
			m1, _ := r.CurrentMatchup()
			m2, _ := fresh.CurrentMatchup()
			if m1 != m2 {
				t.Errorf("matchup = %v, want %v", m1, m2)
			}
		})
	}
}

func TestShuffleDeterministic(t *testing.T) {
	for _, format := range []Format{FormatFull, FormatReduced, FormatRanked} {
		a := mustRound(t, itemNames(9), format, 31337)
		b := mustRound(t, itemNames(9), format, 31337)
		a.Shuffle()
		b.Shuffle()
		if !slices.Equal(a.Items(), b.Items()) || !slices.Equal(a.Schedule(), b.Schedule()) {
			t.Errorf("%v: same seed produced different rounds", format)
		}
	}
}

func TestShufflePinnedFull(t *testing.T) {
	r := mustRound(t, itemNames(4), FormatFull, 42)
	if err := r.Shuffle(); err != nil {
		t.Fatal(err)
	}

	expectedItems := []string{"item2", "item1", "item4", "item3"}
	expectedSchedule := []Pair{{0, 3}, {0, 1}, {2, 3}, {1, 2}, {0, 2}, {1, 3}}
	if !slices.Equal(r.Items(), expectedItems) {
		t.Errorf("items = %v, want %v", r.Items(), expectedItems)
	}
	if !slices.Equal(r.Schedule(), expectedSchedule) {
		t.Errorf("schedule = %v, want %v", r.Schedule(), expectedSchedule)
	}
	if !slices.Equal(r.OriginalItems(), itemNames(4)) {
		t.Error("shuffle must not touch the original order")
	}

	m, _ := r.CurrentMatchup()
	if m != (Matchup{A: "item2", B: "item3"}) {
		t.Errorf("matchup = %v", m)
	}
}

func TestShufflePinnedReduced(t *testing.T) {
	r := mustRound(t, itemNames(6), FormatReduced, 7)
	r.Shuffle()

	expectedItems := []string{"item1", "item6", "item5", "item2", "item3", "item4"}
	expectedSchedule := []Pair{{1, 3}, {0, 2}, {1, 5}, {0, 4}, {3, 5}, {1, 4}, {0, 3}, {2, 5}, {2, 4}}
	if !slices.Equal(r.Items(), expectedItems) {
		t.Errorf("items = %v, want %v", r.Items(), expectedItems)
	}
	if !slices.Equal(r.Schedule(), expectedSchedule) {
		t.Errorf("schedule = %v, want %v", r.Schedule(), expectedSchedule)
	}
}

func TestShuffleOnce(t *testing.T) {
	r := mustRound(t, itemNames(3), FormatFull, 5)
	if err := r.Shuffle(); err != nil {
		t.Fatal(err)
	}
	if err := r.Shuffle(); !errors.Is(err, ErrAlreadyShuffled) {
		t.Errorf("second shuffle error = %v, want ErrAlreadyShuffled", err)
	}

	r = mustRound(t, itemNames(3), FormatFull, 5)
	r.Vote(OptionA)
	if err := r.Shuffle(); !errors.Is(err, ErrVotesCast) {
		t.Errorf("shuffle after vote error = %v, want ErrVotesCast", err)
	}
}

func TestPrune(t *testing.T) {
	r := mustRound(t, itemNames(8), FormatFull, 3)
	if err := r.Prune(); err != nil {
		t.Fatal(err)
	}
	if r.Format() != FormatReduced {
		t.Errorf("format = %v, want reduced", r.Format())
	}
	if total, _ := r.ScheduledVotes(); total != 12 {
		t.Errorf("scheduled = %d, want 12", total)
	}
	if err := r.Prune(); !errors.Is(err, ErrAlreadyPruned) {
		t.Errorf("second prune error = %v, want ErrAlreadyPruned", err)
	}
	if total, _ := r.ScheduledVotes(); total != 12 {
		t.Error("failed prune must not change the schedule")
	}
}

func TestPruneRefused(t *testing.T) {
	voted := mustRound(t, itemNames(8), FormatFull, 3)
	voted.Vote(OptionA)
	if err := voted.Prune(); !errors.Is(err, ErrVotesCast) {
		t.Errorf("error = %v, want ErrVotesCast", err)
	}

	shuffled := mustRound(t, itemNames(8), FormatFull, 3)
	shuffled.Shuffle()
	if err := shuffled.Prune(); !errors.Is(err, ErrAlreadyShuffled) {
		t.Errorf("error = %v, want ErrAlreadyShuffled", err)
	}

	ranked := mustRound(t, itemNames(8), FormatRanked, 3)
	if err := ranked.Prune(); !errors.Is(err, ErrNoSchedule) {
		t.Errorf("error = %v, want ErrNoSchedule", err)
	}
}

func TestReducedBelowSixMatchesFull(t *testing.T) {
	reduced := mustRound(t, itemNames(5), FormatReduced, 9)
	full := mustRound(t, itemNames(5), FormatFull, 9)
	if reduced.Format() != FormatReduced {
		t.Error("format label should stay reduced")
	}
	if !slices.Equal(reduced.Schedule(), full.Schedule()) {
		t.Error("reduced round below 6 items should use the full schedule")
	}
}

func TestRankedMatchupSequence(t *testing.T) {
	r := mustRound(t, []string{"a", "b", "c", "d"}, FormatRanked, 99)
	r.Shuffle()
	if !slices.Equal(r.Items(), []string{"a", "c", "d", "b"}) {
		t.Fatalf("items = %v", r.Items())
	}

	m, _ := r.CurrentMatchup()
	if m != (Matchup{A: "c", B: "a"}) {
		t.Errorf("first matchup = %v, want c vs a", m)
	}

	// c beats a and reaches the front
	r.Vote(OptionA)
	if sorted, _ := r.NumberOfSortedItems(); sorted != 2 {
		t.Errorf("sorted = %d, want 2", sorted)
	}
	m, _ = r.CurrentMatchup()
	if m != (Matchup{A: "d", B: "a"}) {
		t.Errorf("matchup = %v, want d vs a", m)
	}

	// d beats a and keeps walking, now against c
	r.Vote(OptionA)
	if sorted, _ := r.NumberOfSortedItems(); sorted != 2 {
		t.Errorf("sorted = %d, want 2 while candidate walks", sorted)
	}
	m, _ = r.CurrentMatchup()
	if m != (Matchup{A: "d", B: "c"}) {
		t.Errorf("matchup = %v, want d vs c", m)
	}

	// c beats d, so d settles in the middle
	r.Vote(OptionB)
	if !slices.Equal(r.Items(), []string{"c", "d", "a", "b"}) {
		t.Errorf("items = %v", r.Items())
	}
	m, _ = r.CurrentMatchup()
	if m != (Matchup{A: "b", B: "a"}) {
		t.Errorf("matchup = %v, want b vs a", m)
	}

	expectedPairs := []Pair{{1, 0}, {2, 1}, {1, 0}}
	for i, v := range r.Votes() {
		if v.Pair != expectedPairs[i] {
			t.Errorf("vote %d pair = %v, want %v", i, v.Pair, expectedPairs[i])
		}
	}
}

func TestRankedAlwaysB(t *testing.T) {
	for n := 2; n <= 12; n++ {
		r := mustRound(t, itemNames(n), FormatRanked, 11)
		r.Shuffle()
		start := r.Items()
		for r.Vote(OptionB) {
		}
		if r.VoteCount() != n-1 {
			t.Errorf("n=%d: %d comparisons, want %d", n, r.VoteCount(), n-1)
		}
		if !slices.Equal(r.Items(), start) {
			t.Errorf("n=%d: order changed although every candidate lost", n)
		}
	}
}

// The candidate walks left while it keeps winning, so always answering A
// moves every new item to the front: the worst case of n(n-1)/2 votes,
// ending in the reverse of the shuffled order. Always B is the n-1 case.
func TestRankedAlwaysA(t *testing.T) {
	for n := 2; n <= 12; n++ {
		r := mustRound(t, itemNames(n), FormatRanked, 11)
		r.Shuffle()
		start := r.Items()
		for r.Vote(OptionA) {
		}
		if r.VoteCount() != n*(n-1)/2 {
			t.Errorf("n=%d: %d comparisons, want %d", n, r.VoteCount(), n*(n-1)/2)
		}
		slices.Reverse(start)
		if !slices.Equal(r.Items(), start) {
			t.Errorf("n=%d: items = %v, want reversed start %v", n, r.Items(), start)
		}
	}
}

// referenceInsertionSort sorts best first, counting comparisons
func referenceInsertionSort(items []string, better func(a, b string) bool) ([]string, int) {
	out := slices.Clone(items)
	comparisons := 0
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			comparisons++
			if !better(out[j], out[j-1]) {
				break
			}
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, comparisons
}

func TestRankedMatchesReferenceSort(t *testing.T) {
	for seed := uint32(1); seed <= 20; seed++ {
		items := itemNames(10)
		// hidden preference: item names compare by a seed-dependent key
		rank := make(map[string]int)
		for i, item := range items {
			rank[item] = (i*7 + int(seed)*3) % 10
		}
		better := func(a, b string) bool { return rank[a] < rank[b] }

		r := mustRound(t, items, FormatRanked, seed)
		r.Shuffle()
		want, comparisons := referenceInsertionSort(r.Items(), better)

		for {
			m, ok := r.CurrentMatchup()
			if !ok {
				break
			}
			if better(m.A, m.B) {
				r.Vote(OptionA)
			} else {
				r.Vote(OptionB)
			}
		}

		if !slices.Equal(r.Items(), want) {
			t.Errorf("seed %d: items = %v, want %v", seed, r.Items(), want)
		}
		if r.VoteCount() != comparisons {
			t.Errorf("seed %d: %d votes, reference made %d comparisons", seed, r.VoteCount(), comparisons)
		}
		if !r.Verify() {
			t.Errorf("seed %d: completed ranked round failed verification", seed)
		}
	}
}

func TestRankedScheduledVotesEstimate(t *testing.T) {
	r := mustRound(t, itemNames(8), FormatRanked, 1)
	total, exact := r.ScheduledVotes()
	if exact {
		t.Error("ranked vote count is never exact")
	}
	if total != 24 {
		t.Errorf("estimate = %d, want 24", total)
	}
	if _, ok := mustRound(t, itemNames(3), FormatFull, 1).NumberOfSortedItems(); ok {
		t.Error("full rounds have no sorted prefix")
	}
}

func TestProgressText(t *testing.T) {
	full := mustRound(t, itemNames(4), FormatFull, 1)
	if got := full.ProgressText(); got != "Matchup 1 of 6" {
		t.Errorf("progress = %q", got)
	}
	full.Vote(OptionA)
	if got := full.ProgressText(); got != "Matchup 2 of 6" {
		t.Errorf("progress = %q", got)
	}
	for full.Vote(OptionA) {
	}
	if got := full.ProgressText(); got != "Complete: 6 votes cast" {
		t.Errorf("progress = %q", got)
	}
	if full.PercentComplete() != 100 {
		t.Error("completed round should be 100% done")
	}

	ranked := mustRound(t, itemNames(8), FormatRanked, 1)
	if got := ranked.ProgressText(); got != "Matchup 1 of ~24 (1 of 8 items placed)" {
		t.Errorf("progress = %q", got)
	}

	big := mustRound(t, itemNames(50), FormatFull, 1)
	if got := big.ProgressText(); got != "Matchup 1 of 1,225" {
		t.Errorf("progress = %q", got)
	}
}

func TestRankedProgressNeverBehindVotes(t *testing.T) {
	r := mustRound(t, itemNames(8), FormatRanked, 3)
	r.Shuffle()
	for r.HasRemainingVotes() {
		var current, total int
		text := r.ProgressText()
		if _, err := fmt.Sscanf(text, "Matchup %d of ~%d", &current, &total); err != nil {
			t.Fatalf("unexpected progress %q: %v", text, err)
		}
		if current != r.VoteCount()+1 || total < current {
			t.Errorf("progress %q after %d votes", text, r.VoteCount())
		}
		r.Vote(OptionA)
	}
	if r.VoteCount() <= EstimatedRankedVotes(8) {
		t.Fatalf("always-A should exceed the estimate, got %d votes", r.VoteCount())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	r := mustRound(t, itemNames(5), FormatRanked, 8)
	r.Shuffle()
	c := r.Clone()
	c.Vote(OptionA)
	if r.VoteCount() != 0 {
		t.Error("voting on a clone changed the original")
	}
	if slices.Equal(r.Items(), c.Items()) {
		t.Error("ranked vote A should have moved items in the clone only")
	}
}
