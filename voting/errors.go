// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

var (
	ErrTooFewItems     = errors.New("at least 2 items are required")
	ErrEmptyItem       = errors.New("item name is empty")
	ErrInvalidItem     = errors.New("item name contains a line break")
	ErrDuplicateItem   = errors.New("duplicate item")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrBadSeed         = errors.New("invalid seed")
	ErrBadVote         = errors.New("invalid vote")
	ErrTooManyVotes    = errors.New("more votes than scheduled matchups")
	ErrUnscheduledVote = errors.New("vote does not match a remaining matchup")
	ErrVerifyFailed    = errors.New("round failed verification")
	ErrMissingSection  = errors.New("missing section")
	ErrBadScoreLine    = errors.New("invalid score line")

	ErrAlreadyPruned   = errors.New("round is already reduced")
	ErrAlreadyShuffled = errors.New("round is already shuffled")
	ErrVotesCast       = errors.New("votes have already been cast")
	ErrNoSchedule      = errors.New("ranked rounds have no pair schedule")
)
