// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the response types printed by the command-line tool.

With --json every command writes one of these as a single JSON document;
without it the handlers render the same data as text.

# Response Types

  - NewRoundResponse: path, format, items, seed, scheduled_votes, first matchup
  - MatchupResponse: current options, progress text, votes cast, percent
  - ScoresResponse: ranked score rows, dropped score lines
  - VerifyResponse: whether a round file replays cleanly
  - ErrorResponse: error, message

# Constants

Round status values:

	StatusInProgress = "in_progress"
	StatusComplete   = "complete"
*/
package models
