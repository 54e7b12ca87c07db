// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-rank/voting"
)

// ErrNoItems is returned by ReadItems when the input has no item lines
var ErrNoItems = errors.New("no items found")

const maxLineLength = 1 << 20

// ReadLines splits r into lines without their terminators
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}

func readFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadItems reads one item per line. Surrounding whitespace is trimmed and
// blank lines are skipped.
func ReadItems(r io.Reader) ([]string, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

// LoadRound parses the round saved at path
func LoadRound(path string) (*voting.Round, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open round: %w", err)
	}
	round, err := voting.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to parse round %s: %w", path, err)
	}
	return round, nil
}

// SaveRound writes the round to path and marks it saved
func SaveRound(path string, round *voting.Round) error {
	if err := writeLines(path, round.Serialize()); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}
	round.MarkSaved()
	return nil
}

// LoadScores reads a score file. Malformed lines are dropped and returned in
// dropped; err is only set when the file cannot be read.
func LoadScores(path string) (scores []voting.Score, dropped []error, err error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open scores: %w", err)
	}
	scores, dropped = voting.ParseScoreLines(lines)
	return scores, dropped, nil
}

// SaveScores writes scores in score file layout
func SaveScores(path string, scores []voting.Score) error {
	if err := writeLines(path, voting.FormatScoreLines(scores)); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}
	return nil
}

// NewRoundPath returns a fresh file name for a round in dir
func NewRoundPath(dir string, format voting.Format) string {
	id := uuid.NewString()[:8]
	return filepath.Join(dir, fmt.Sprintf("round-%s-%s.txt", format, id))
}

// writeLines replaces path with lines via a temp file in the same directory
func writeLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
