// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store keeps rounds and score tallies in plain text files.

# Rounds

A round file holds the text produced by voting.Round.Serialize:

	LoadRound(path)         // parse, replay and verify
	SaveRound(path, round)  // atomic replace, marks the round saved

Writes go to a temp file in the target directory which is then renamed over
the destination, so a crash never leaves a half-written round.

# Items

ReadItems reads one item per line from any reader (a file or stdin).
Blank lines are skipped.

# Scores

	scores, dropped, err := store.LoadScores(path)

Malformed lines are dropped and returned as errors so callers can warn about
them; err is reserved for I/O failures.

# File Names

NewRoundPath generates names like round-ranked-1b4e28ba.txt using a random
UUID prefix.
*/
package store
