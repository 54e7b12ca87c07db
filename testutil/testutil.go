// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/store"
	"github.com/danielhkuo/quickly-rank/voting"
)

// GetTestConfig returns a configuration that saves into a fresh temp dir
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	cfg := cliparse.Defaults()
	cfg.SaveDir = t.TempDir()
	cfg.LogLevel = "error"
	cfg.LogFormat = cliparse.LogFormatText
	return cfg
}

// WriteItemsFile writes one item per line and returns the file path
func WriteItemsFile(t *testing.T, dir string, items ...string) string {
	t.Helper()
	return WriteFile(t, dir, "items.txt", strings.Join(items, "\n")+"\n")
}

// WriteFile writes content to dir/name and returns the path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// CreateTestRound creates a shuffled round, saves it in dir and returns the
// path along with the in-memory round
func CreateTestRound(t *testing.T, dir string, items []string, format voting.Format, seed uint32) (string, *voting.Round) {
	t.Helper()

	round, err := voting.NewWithSeed(items, format, seed)
	if err != nil {
		t.Fatalf("Failed to create test round: %v", err)
	}
	if err := round.Shuffle(); err != nil {
		t.Fatalf("Failed to shuffle test round: %v", err)
	}

	path := filepath.Join(dir, "round-"+format.String()+".txt")
	if err := store.SaveRound(path, round); err != nil {
		t.Fatalf("Failed to save test round: %v", err)
	}
	return path, round
}

// CastTestVotes applies votes to the round saved at path
func CastTestVotes(t *testing.T, path string, votes ...voting.Option) *voting.Round {
	t.Helper()

	round := LoadTestRound(t, path)
	for i, v := range votes {
		if !round.Vote(v) {
			t.Fatalf("Vote %d (%s) was rejected", i, v)
		}
	}
	if err := store.SaveRound(path, round); err != nil {
		t.Fatalf("Failed to save test round: %v", err)
	}
	return round
}

// LoadTestRound loads a saved round, failing the test on error
func LoadTestRound(t *testing.T, path string) *voting.Round {
	t.Helper()
	round, err := store.LoadRound(path)
	if err != nil {
		t.Fatalf("Failed to load round: %v", err)
	}
	return round
}

// AssertContains checks that output contains every fragment
func AssertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, f := range fragments {
		if !strings.Contains(output, f) {
			t.Errorf("Expected output to contain %q, got:\n%s", f, output)
		}
	}
}

// AssertJSON decodes the buffer into the provided struct
func AssertJSON(t *testing.T, buf *bytes.Buffer, v any) {
	t.Helper()
	if err := json.NewDecoder(buf).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON output %q: %v", buf.String(), err)
	}
}
