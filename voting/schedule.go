// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// schedule decides the next matchup of a round.
// Implementations: *pairQueue (Full, Reduced) and *insertionState (Ranked).
type schedule interface {
	// next returns the pending matchup, if any
	next() (Pair, bool)
	// advance consumes the pending matchup given the winner and returns it.
	// It may reorder items.
	advance(items []string, winner Option) Pair
	// rewind restores the state from before v was cast
	rewind(items []string, v Vote)
	clone() schedule
}

// pairQueue is a precomputed list of matchups consumed front to back
type pairQueue struct {
	pending []Pair
}

func (q *pairQueue) next() (Pair, bool) {
	if len(q.pending) == 0 {
		return Pair{}, false
	}
	return q.pending[0], true
}

func (q *pairQueue) advance(_ []string, _ Option) Pair {
	p := q.pending[0]
	q.pending = q.pending[1:]
	return p
}

func (q *pairQueue) rewind(_ []string, v Vote) {
	q.pending = append([]Pair{v.Pair}, q.pending...)
}

// take removes the pending pair equal to p. Orientation must match so an
// undo puts the pair back exactly as it was scheduled.
func (q *pairQueue) take(p Pair) bool {
	for i, candidate := range q.pending {
		if candidate == p {
			q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
			return true
		}
	}
	return false
}

func (q *pairQueue) clone() schedule {
	return &pairQueue{pending: append([]Pair(nil), q.pending...)}
}

// insertionState runs an insertion sort one comparison per vote.
// items[:sorted] is ordered best first; the item at candidate is being
// inserted and is compared with its left neighbour.
type insertionState struct {
	n         int
	sorted    int
	candidate int
}

func newInsertionState(n int) *insertionState {
	return &insertionState{n: n, sorted: 1, candidate: 1}
}

func (s *insertionState) next() (Pair, bool) {
	if s.sorted >= s.n {
		return Pair{}, false
	}
	return Pair{A: s.candidate, B: s.candidate - 1}, true
}

func (s *insertionState) advance(items []string, winner Option) Pair {
	p := Pair{A: s.candidate, B: s.candidate - 1}
	if winner == OptionA {
		items[p.A], items[p.B] = items[p.B], items[p.A]
		if p.B > 0 {
			s.candidate = p.B
			return p
		}
	}
	s.sorted++
	s.candidate = s.sorted
	return p
}

func (s *insertionState) rewind(items []string, v Vote) {
	p := v.Pair
	endedInsertion := v.Winner == OptionB || p.B == 0
	if v.Winner == OptionA {
		items[p.A], items[p.B] = items[p.B], items[p.A]
	}
	if endedInsertion {
		s.sorted--
	}
	s.candidate = p.A
}

func (s *insertionState) clone() schedule {
	c := *s
	return &c
}
