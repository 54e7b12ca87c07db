// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/quickly-rank/models"
)

func writeNewRound(w io.Writer, resp models.NewRoundResponse) {
	fmt.Fprintf(w, "Created %s (%s, %d items, seed %d)\n",
		resp.Path, resp.Format, resp.Items, resp.Seed)
	if resp.Estimated {
		fmt.Fprintf(w, "About %s matchups expected\n", humanize.Comma(int64(resp.ScheduledVotes)))
	} else {
		fmt.Fprintf(w, "%s matchups scheduled\n", humanize.Comma(int64(resp.ScheduledVotes)))
	}
	writeMatchup(w, resp.Matchup)
}

func writeMatchup(w io.Writer, resp models.MatchupResponse) {
	fmt.Fprintln(w, resp.Progress)
	if resp.Status == models.StatusComplete {
		fmt.Fprintf(w, "Run 'quickly-rank scores %s' to see the results\n", resp.Path)
		return
	}
	fmt.Fprintf(w, "  a) %s\n", resp.OptionA)
	fmt.Fprintf(w, "  b) %s\n", resp.OptionB)
}

func writeVerify(w io.Writer, resp models.VerifyResponse) {
	if !resp.Valid {
		fmt.Fprintf(w, "%s: invalid (%s)\n", resp.Path, resp.Error)
		return
	}
	fmt.Fprintf(w, "%s: ok (%s, %d items, %s)\n",
		resp.Path, resp.Format, resp.Items, pluralVotes(resp.Votes))
}

func writeScores(w io.Writer, resp models.ScoresResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Rank\tWins\tLosses\tNet\t Item")
	for _, row := range resp.Scores {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%+d\t %s\n",
			humanize.Ordinal(row.Rank),
			humanize.Comma(int64(row.Wins)),
			humanize.Comma(int64(row.Losses)),
			row.Net,
			row.Item,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(resp.Ranking) > 0 {
		fmt.Fprintln(w, "\nFinal ranking:")
		for i, item := range resp.Ranking {
			fmt.Fprintf(w, "  %d. %s\n", i+1, item)
		}
	}
	if len(resp.Dropped) > 0 {
		fmt.Fprintf(w, "\nSkipped %s\n", english.Plural(len(resp.Dropped), "malformed line", "malformed lines"))
	}
	if resp.SavedTo != "" {
		fmt.Fprintf(w, "Saved scores to %s\n", resp.SavedTo)
	}
	return nil
}

func pluralVotes(n int) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(n, "vote", "")
}
