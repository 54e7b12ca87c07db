// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/middleware"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/store"
	"github.com/danielhkuo/quickly-rank/voting"
)

var (
	ErrRoundComplete = errors.New("round is complete")
	ErrNothingToUndo = errors.New("no votes to undo")
	ErrBadChoice     = errors.New("choice must be a or b")
	ErrRoundExists   = errors.New("round file already exists")
)

// StdinSource names standard input as the items source
const StdinSource = "-"

type RoundHandler struct {
	cfg cliparse.Config
	in  io.Reader
	out io.Writer
}

func NewRoundHandler(cfg cliparse.Config, in io.Reader, out io.Writer) *RoundHandler {
	return &RoundHandler{cfg: cfg, in: in, out: out}
}

type NewRoundOptions struct {
	Source string // items file, or StdinSource
	Out    string // round file; generated in the save directory when empty
	Seed   uint32 // 0 picks a fresh seed
}

// New creates, shuffles and saves a round from a list of items
func (h *RoundHandler) New(opts NewRoundOptions) error {
	items, err := h.readItems(opts.Source)
	if err != nil {
		return err
	}

	format := h.cfg.Format()
	var round *voting.Round
	if opts.Seed == 0 {
		round, err = voting.New(items, format)
	} else {
		round, err = voting.NewWithSeed(items, format, opts.Seed)
	}
	if err != nil {
		return fmt.Errorf("failed to create round: %w", err)
	}
	if err := round.Shuffle(); err != nil {
		return fmt.Errorf("failed to shuffle round: %w", err)
	}

	path := opts.Out
	if path == "" {
		path = store.NewRoundPath(h.cfg.SaveDir, format)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrRoundExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	if err := store.SaveRound(path, round); err != nil {
		return err
	}

	total, exact := round.ScheduledVotes()
	slog.Info("round created",
		"path", path,
		"format", format.String(),
		"items", round.ItemCount(),
		"seed", round.Seed(),
	)

	resp := models.NewRoundResponse{
		Path:           path,
		Format:         format.String(),
		Items:          round.ItemCount(),
		Seed:           round.Seed(),
		ScheduledVotes: total,
		Estimated:      !exact,
		Matchup:        matchupResponse(path, round),
	}
	if h.cfg.JSON {
		return middleware.JSONResponse(h.out, resp)
	}
	writeNewRound(h.out, resp)
	return nil
}

func (h *RoundHandler) readItems(source string) ([]string, error) {
	if source == StdinSource {
		return store.ReadItems(h.in)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open items: %w", err)
	}
	defer f.Close()
	return store.ReadItems(f)
}

// Show prints the current matchup of a saved round
func (h *RoundHandler) Show(path string) error {
	round, err := store.LoadRound(path)
	if err != nil {
		return err
	}
	return h.writeMatchup(path, round, "")
}

// Vote records a choice on the current matchup and saves the round
func (h *RoundHandler) Vote(path, choice string) error {
	winner, err := ParseChoice(choice)
	if err != nil {
		return err
	}

	round, err := store.LoadRound(path)
	if err != nil {
		return err
	}
	matchup, ok := round.CurrentMatchup()
	if !ok {
		return fmt.Errorf("%w: %s", ErrRoundComplete, round.ProgressText())
	}
	round.Vote(winner)

	if err := store.SaveRound(path, round); err != nil {
		return err
	}

	picked, other := matchup.A, matchup.B
	if winner == voting.OptionB {
		picked, other = other, picked
	}
	slog.Info("vote recorded", "path", path, "winner", picked, "loser", other)

	return h.writeMatchup(path, round, fmt.Sprintf("Picked %s over %s", picked, other))
}

// Undo reverts the most recent vote and saves the round
func (h *RoundHandler) Undo(path string) error {
	round, err := store.LoadRound(path)
	if err != nil {
		return err
	}
	if !round.UndoVote() {
		return ErrNothingToUndo
	}
	if err := store.SaveRound(path, round); err != nil {
		return err
	}

	slog.Info("vote undone", "path", path, "votes", round.VoteCount())
	return h.writeMatchup(path, round, "Undid last vote")
}

// Verify checks that a round file replays cleanly
func (h *RoundHandler) Verify(path string) error {
	resp := models.VerifyResponse{Path: path}

	round, err := store.LoadRound(path)
	if err == nil && !round.Verify() {
		err = voting.ErrVerifyFailed
	}
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Valid = true
		resp.Format = round.Format().String()
		resp.Items = round.ItemCount()
		resp.Votes = round.VoteCount()
	}

	if h.cfg.JSON {
		if encErr := middleware.JSONResponse(h.out, resp); encErr != nil {
			return encErr
		}
	} else {
		writeVerify(h.out, resp)
	}

	if err != nil {
		return middleware.Reported(err)
	}
	return nil
}

func (h *RoundHandler) writeMatchup(path string, round *voting.Round, note string) error {
	resp := matchupResponse(path, round)
	if h.cfg.JSON {
		return middleware.JSONResponse(h.out, resp)
	}
	if note != "" {
		fmt.Fprintln(h.out, note)
	}
	writeMatchup(h.out, resp)
	return nil
}

// ParseChoice accepts a/b (either case) or the serialized 0/1
func ParseChoice(s string) (voting.Option, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "0":
		return voting.OptionA, nil
	case "b", "1":
		return voting.OptionB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadChoice, s)
	}
}

func matchupResponse(path string, round *voting.Round) models.MatchupResponse {
	resp := models.MatchupResponse{
		Path:            path,
		Format:          round.Format().String(),
		Status:          models.StatusComplete,
		Progress:        round.ProgressText(),
		VotesCast:       round.VoteCount(),
		PercentComplete: round.PercentComplete(),
	}
	if m, ok := round.CurrentMatchup(); ok {
		resp.Status = models.StatusInProgress
		resp.OptionA = m.A
		resp.OptionB = m.B
	}
	if sorted, ok := round.NumberOfSortedItems(); ok {
		resp.SortedItems = &sorted
	}
	return resp
}
