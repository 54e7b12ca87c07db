// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements pairwise-comparison rounds: matchup scheduling,
vote history with undo, score tallies and the saved text format.

# Formats

	FormatFull     every pair of items once, n(n-1)/2 votes
	FormatReduced  Full minus n*PruningAmount(n) evenly spaced pairs
	FormatRanked   insertion sort, one comparison per vote

Tokens are "full", "reduced" and "ranked" (single characters 'f', 'r', 'k').

# Creating a Round

	r, err := voting.New(items, voting.FormatReduced)
	if err != nil {
		return err
	}
	if err := r.Shuffle(); err != nil {
		return err
	}

New derives a seed from the clock; NewWithSeed takes an explicit one. Shuffle
permutes the items and then the schedule with an MT19937 generator seeded from
the round (see package prng), so a seed always reproduces the same round.

# Voting

	for r.HasRemainingVotes() {
		m, _ := r.CurrentMatchup()
		// present m.A and m.B
		r.Vote(voting.OptionA)
	}
	r.UndoVote()

Vote returns false once the round is complete. UndoVote returns false when
there is nothing to undo; otherwise the previous matchup is shown again.

Ranked rounds keep items[:sorted] ordered best first. Each new candidate is
compared with its left neighbour and walks left while it wins; the vote count
is data dependent, so ScheduledVotes reports an n*log2(n) estimate.

# Saved Text

	item 1
	...
	item n

	<seed>
	<full|reduced|ranked>
	<a> <b> <0|1>

Serialize writes items in creation order and vote indices as positions in the
shuffled order. Parse regenerates and reshuffles the schedule, replays the
votes and runs Verify.

# Scores

	scores := r.Scores()
	voting.SortScores(scores)

Score files hold one "<wins> <losses> <item name>" line per item; see
ParseScoreLines, FormatScoreLines and MergeScores.
*/
package voting
