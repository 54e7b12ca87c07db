// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Round status constants
const (
	StatusInProgress = "in_progress"
	StatusComplete   = "complete"
)

// Response types

type NewRoundResponse struct {
	Path           string          `json:"path"`
	Format         string          `json:"format"`
	Items          int             `json:"items"`
	Seed           uint32          `json:"seed"`
	ScheduledVotes int             `json:"scheduled_votes"`
	Estimated      bool            `json:"estimated"` // Ranked rounds only know an estimate
	Matchup        MatchupResponse `json:"matchup"`
}

type MatchupResponse struct {
	Path            string  `json:"path"`
	Format          string  `json:"format"`
	Status          string  `json:"status"`
	OptionA         string  `json:"option_a,omitempty"`
	OptionB         string  `json:"option_b,omitempty"`
	Progress        string  `json:"progress"`
	VotesCast       int     `json:"votes_cast"`
	PercentComplete float64 `json:"percent_complete"`
	SortedItems     *int    `json:"sorted_items,omitempty"` // Ranked only
}

type ScoreRow struct {
	Rank   int    `json:"rank"` // 1-indexed position after sorting
	Item   string `json:"item"`
	Wins   uint   `json:"wins"`
	Losses uint   `json:"losses"`
	Net    int    `json:"net"`
}

type ScoresResponse struct {
	Sources []string   `json:"sources"`
	Scores  []ScoreRow `json:"scores"`
	Ranking []string   `json:"ranking,omitempty"` // completed Ranked rounds, best first
	Dropped []string   `json:"dropped,omitempty"` // malformed score lines that were skipped
	SavedTo string     `json:"saved_to,omitempty"`
}

type VerifyResponse struct {
	Path   string `json:"path"`
	Valid  bool   `json:"valid"`
	Format string `json:"format,omitempty"`
	Items  int    `json:"items,omitempty"`
	Votes  int    `json:"votes,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
