// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickly-rank command.

quickly-rank ranks a list of items by asking one question at a time: which
of these two do you prefer? Rounds are plain text files, so a round can be
paused, copied, inspected and resumed at any point.

# Usage

	quickly-rank new items.txt --format ranked
	quickly-rank show round-ranked-1b4e28ba.txt
	quickly-rank vote round-ranked-1b4e28ba.txt a
	quickly-rank undo round-ranked-1b4e28ba.txt
	quickly-rank scores round-ranked-1b4e28ba.txt -o scores.txt
	quickly-rank merge alice.txt bob.txt
	quickly-rank verify round-ranked-1b4e28ba.txt

# Formats

  - full: every pair of items once
  - reduced: a balanced subset of pairs for six or more items
  - ranked: insertion sort driven by the votes

# Configuration

Settings come from ~/.quickly-rank/config.yaml (or --config), a .env file,
QUICKLY_RANK_* environment variables and flags, in increasing precedence.

  - QUICKLY_RANK_SAVE_DIR (--save-dir): where new rounds are written
  - QUICKLY_RANK_FORMAT (-f, --format): default voting format
  - QUICKLY_RANK_LOG_LEVEL (--log-level): debug, info, warn, error
  - QUICKLY_RANK_LOG_FORMAT (--log-format): auto, text, json
  - QUICKLY_RANK_JSON (--json): print results as JSON

# Architecture

  - voting: rounds, schedules, votes, scores and the text formats
  - prng: the Mersenne Twister used for deterministic shuffles
  - store: round and score files on disk
  - handlers: one method per command
  - router: cobra command tree
  - middleware: logging, JSON and error output
  - models: response types
  - cliparse: configuration loading

See package documentation for each component.
*/
package main
