// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-rank/prng"
)

// MinItems is the smallest number of items a round accepts
const MinItems = 2

// Round is one pairwise-comparison poll: its items, matchup schedule and
// vote history. A Round is not safe for concurrent use.
type Round struct {
	originalItems []string
	items         []string
	seed          uint32
	format        Format
	sched         schedule
	votes         []Vote
	shuffled      bool
	saved         bool
}

// New creates a round with a seed derived from the current time
func New(items []string, format Format) (*Round, error) {
	return NewWithSeed(items, format, newSeed())
}

// NewWithSeed creates a round with the given seed. Reduced rounds are
// pruned immediately. The round is not shuffled.
func NewWithSeed(items []string, format Format, seed uint32) (*Round, error) {
	if seed == 0 {
		return nil, ErrBadSeed
	}
	if err := validateItems(items); err != nil {
		return nil, err
	}
	return build(items, format, seed)
}

// build assembles the schedule without validating the seed
func build(items []string, format Format, seed uint32) (*Round, error) {
	if !format.Valid() {
		return nil, ErrInvalidFormat
	}

	r := &Round{
		originalItems: slices.Clone(items),
		items:         slices.Clone(items),
		seed:          seed,
		format:        format,
	}

	if format == FormatRanked {
		r.sched = newInsertionState(len(items))
		return r, nil
	}

	pairs, err := GeneratePairs(len(items))
	if err != nil {
		return nil, err
	}
	if format == FormatReduced {
		pairs = PrunePairs(pairs, len(items))
	}
	r.sched = &pairQueue{pending: pairs}
	return r, nil
}

func validateItems(items []string) error {
	if len(items) < MinItems {
		return ErrTooFewItems
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return ErrEmptyItem
		}
		if strings.ContainsAny(item, "\r\n") {
			return fmt.Errorf("%w: %q", ErrInvalidItem, item)
		}
		if seen[item] {
			return fmt.Errorf("%w: %q", ErrDuplicateItem, item)
		}
		seen[item] = true
	}
	return nil
}

func newSeed() uint32 {
	seed := uint32(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Prune converts a fresh Full round into a Reduced one
func (r *Round) Prune() error {
	q, ok := r.sched.(*pairQueue)
	if !ok {
		return ErrNoSchedule
	}
	if r.format == FormatReduced {
		return ErrAlreadyPruned
	}
	if len(r.votes) > 0 {
		return ErrVotesCast
	}
	if r.shuffled {
		return ErrAlreadyShuffled
	}
	q.pending = PrunePairs(q.pending, len(r.items))
	r.format = FormatReduced
	return nil
}

// Shuffle permutes the items and then the schedule order with one MT19937
// engine seeded from the round seed. Schedule pairs keep pointing at
// positions in the items slice. Allowed once, before any vote.
func (r *Round) Shuffle() error {
	if r.shuffled {
		return ErrAlreadyShuffled
	}
	if len(r.votes) > 0 {
		return ErrVotesCast
	}

	rng := prng.New(r.seed)
	rng.Shuffle(len(r.items), func(i, j int) {
		r.items[i], r.items[j] = r.items[j], r.items[i]
	})
	if q, ok := r.sched.(*pairQueue); ok {
		rng.Shuffle(len(q.pending), func(i, j int) {
			q.pending[i], q.pending[j] = q.pending[j], q.pending[i]
		})
	}
	r.shuffled = true
	return nil
}

// CurrentMatchup returns the matchup awaiting a vote
func (r *Round) CurrentMatchup() (Matchup, bool) {
	p, ok := r.sched.next()
	if !ok {
		return Matchup{}, false
	}
	return Matchup{A: r.items[p.A], B: r.items[p.B]}, true
}

// HasRemainingVotes reports whether a matchup is still pending
func (r *Round) HasRemainingVotes() bool {
	_, ok := r.sched.next()
	return ok
}

// Vote records a decision on the current matchup.
// Returns false without changing anything when the round is complete.
func (r *Round) Vote(winner Option) bool {
	if !winner.Valid() {
		return false
	}
	if _, ok := r.sched.next(); !ok {
		return false
	}
	p := r.sched.advance(r.items, winner)
	r.votes = append(r.votes, Vote{Pair: p, Winner: winner})
	r.saved = false
	return true
}

// UndoVote reverts the most recent vote.
// Returns false when there is nothing to undo.
func (r *Round) UndoVote() bool {
	if len(r.votes) == 0 {
		return false
	}
	last := r.votes[len(r.votes)-1]
	r.votes = r.votes[:len(r.votes)-1]
	r.sched.rewind(r.items, last)
	r.saved = false
	return true
}

// ScheduledVotes returns the total number of votes in the round. For Ranked
// rounds the count depends on the answers, so an estimate of n*log2(n) is
// returned with exact == false.
func (r *Round) ScheduledVotes() (total int, exact bool) {
	if q, ok := r.sched.(*pairQueue); ok {
		return len(q.pending) + len(r.votes), true
	}
	return EstimatedRankedVotes(len(r.items)), false
}

// EstimatedRankedVotes is the display hint for Ranked rounds
func EstimatedRankedVotes(n int) int {
	if n < 2 {
		return 0
	}
	return int(math.Ceil(float64(n) * math.Log2(float64(n))))
}

// NumberOfSortedItems returns the size of the sorted prefix of a Ranked round
func (r *Round) NumberOfSortedItems() (int, bool) {
	s, ok := r.sched.(*insertionState)
	if !ok {
		return 0, false
	}
	return s.sorted, true
}

// Items returns the current item order
func (r *Round) Items() []string { return slices.Clone(r.items) }

// OriginalItems returns the items in creation order
func (r *Round) OriginalItems() []string { return slices.Clone(r.originalItems) }

// Votes returns the vote history, oldest first
func (r *Round) Votes() []Vote { return slices.Clone(r.votes) }

// Schedule returns the pending pairs of a Full or Reduced round
func (r *Round) Schedule() []Pair {
	if q, ok := r.sched.(*pairQueue); ok {
		return slices.Clone(q.pending)
	}
	return nil
}

func (r *Round) Seed() uint32 { return r.seed }
func (r *Round) Format() Format { return r.format }
func (r *Round) Shuffled() bool { return r.shuffled }
func (r *Round) IsSaved() bool { return r.saved }
func (r *Round) ItemCount() int { return len(r.items) }
func (r *Round) VoteCount() int { return len(r.votes) }

// MarkSaved flags the round as persisted; any later vote or undo clears it
func (r *Round) MarkSaved() { r.saved = true }

// Clone returns an independent copy of the round
func (r *Round) Clone() *Round {
	c := *r
	c.originalItems = slices.Clone(r.originalItems)
	c.items = slices.Clone(r.items)
	c.votes = slices.Clone(r.votes)
	c.sched = r.sched.clone()
	return &c
}

// replay applies a recorded vote, checking that it matches a matchup the
// schedule would present
func (r *Round) replay(v Vote) error {
	if !v.Pair.Valid(len(r.items)) || !v.Winner.Valid() {
		return ErrBadVote
	}
	switch s := r.sched.(type) {
	case *pairQueue:
		if !s.take(v.Pair) {
			return ErrUnscheduledVote
		}
	case *insertionState:
		p, ok := s.next()
		if !ok || p != v.Pair {
			return ErrUnscheduledVote
		}
		s.advance(r.items, v.Winner)
	}
	r.votes = append(r.votes, v)
	return nil
}
