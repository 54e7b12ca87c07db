// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/middleware"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/store"
	"github.com/danielhkuo/quickly-rank/voting"
)

type ScoreHandler struct {
	cfg cliparse.Config
	out io.Writer
}

func NewScoreHandler(cfg cliparse.Config, out io.Writer) *ScoreHandler {
	return &ScoreHandler{cfg: cfg, out: out}
}

// Scores tallies a round and optionally writes a score file
func (h *ScoreHandler) Scores(path, outPath string) error {
	round, err := store.LoadRound(path)
	if err != nil {
		return err
	}

	scores := round.Scores()
	voting.SortScores(scores)

	resp := models.ScoresResponse{
		Sources: []string{path},
		Scores:  scoreRows(scores),
	}
	if round.Format() == voting.FormatRanked && !round.HasRemainingVotes() {
		resp.Ranking = round.Items()
	}
	return h.finish(resp, scores, outPath)
}

// Merge sums score files by item name. Malformed lines are skipped with a
// warning.
func (h *ScoreHandler) Merge(paths []string, outPath string) error {
	resp := models.ScoresResponse{Sources: paths}

	sets := make([][]voting.Score, 0, len(paths))
	for _, p := range paths {
		scores, dropped, err := store.LoadScores(p)
		if err != nil {
			return err
		}
		for _, d := range dropped {
			slog.Warn("skipping malformed score line", "file", p, "error", d)
			resp.Dropped = append(resp.Dropped, fmt.Sprintf("%s: %v", p, d))
		}
		sets = append(sets, scores)
	}

	merged := voting.MergeScores(sets...)
	voting.SortScores(merged)
	resp.Scores = scoreRows(merged)
	return h.finish(resp, merged, outPath)
}

func (h *ScoreHandler) finish(resp models.ScoresResponse, scores []voting.Score, outPath string) error {
	if outPath != "" {
		if err := store.SaveScores(outPath, scores); err != nil {
			return err
		}
		resp.SavedTo = outPath
		slog.Info("scores saved", "path", outPath, "items", len(scores))
	}

	if h.cfg.JSON {
		return middleware.JSONResponse(h.out, resp)
	}
	return writeScores(h.out, resp)
}

func scoreRows(scores []voting.Score) []models.ScoreRow {
	rows := make([]models.ScoreRow, len(scores))
	for i, s := range scores {
		rows[i] = models.ScoreRow{
			Rank:   i + 1,
			Item:   s.Item,
			Wins:   s.Wins,
			Losses: s.Losses,
			Net:    s.Net(),
		}
	}
	return rows
}
