// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ProgressText describes how far the round has come, e.g.
// "Matchup 4 of 45" or "Matchup 4 of ~18 (2 of 8 items placed)"
func (r *Round) ProgressText() string {
	cast := int64(len(r.votes))
	total, exact := r.ScheduledVotes()

	if !r.HasRemainingVotes() {
		return fmt.Sprintf("Complete: %s votes cast", humanize.Comma(cast))
	}

	if exact {
		return fmt.Sprintf("Matchup %s of %s",
			humanize.Comma(cast+1), humanize.Comma(int64(total)))
	}

	// the estimate can be overtaken by an unlucky answer sequence
	total = max(total, int(cast)+1)
	sorted, _ := r.NumberOfSortedItems()
	return fmt.Sprintf("Matchup %s of ~%s (%d of %d items placed)",
		humanize.Comma(cast+1), humanize.Comma(int64(total)), sorted, len(r.items))
}

// PercentComplete returns progress in [0, 100]. Ranked rounds report the
// share of items placed in the sorted prefix.
func (r *Round) PercentComplete() float64 {
	if !r.HasRemainingVotes() {
		return 100
	}
	if sorted, ok := r.NumberOfSortedItems(); ok {
		return 100 * float64(sorted) / float64(len(r.items))
	}
	total, _ := r.ScheduledVotes()
	return 100 * float64(len(r.votes)) / float64(total)
}
