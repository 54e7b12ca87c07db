// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the quickly-rank commands.

# Handler Types

  - RoundHandler: New, Show, Vote, Undo, Verify
  - ScoreHandler: Scores, Merge

Handlers are created with the resolved configuration and the streams they
read from and write to:

	h := handlers.NewRoundHandler(cfg, os.Stdin, os.Stdout)
	err := h.Vote("round.txt", "a")

# Round Files

Every mutating command loads the round, applies one change and saves it
again through the store package. Loading replays and verifies the file, so
a hand-edited round that no longer adds up is rejected before any change.

# Output

With cfg.JSON set each command prints one models response as JSON.
Otherwise the same data is rendered as text; score tables are aligned with
text/tabwriter and numbers are formatted with go-humanize.

# Errors

	ErrRoundComplete - vote on a finished round
	ErrNothingToUndo - undo with no votes
	ErrBadChoice     - vote choice other than a/b/0/1
	ErrRoundExists   - new would overwrite a round file
*/
package handlers
