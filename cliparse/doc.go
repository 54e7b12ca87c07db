// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flags and configuration.

# Configuration

BindFlags registers the global flags and ParseFlags resolves a Config once
the flags have been parsed:

	cliparse.BindFlags(root.PersistentFlags())
	cfg, err := cliparse.ParseFlags(cmd.Flags())

# Config Fields

  - SaveDir: directory for new round files (default: .)
  - DefaultFormat: full, reduced or ranked (default: reduced)
  - LogLevel: debug, info, warn, error (default: warn)
  - LogFormat: auto, text, json (default: auto)
  - JSON: print results as JSON

# Sources

Later sources override earlier ones:

 1. Built-in defaults
 2. YAML file from --config, or ~/.quickly-rank/config.yaml
 3. .env in the working directory (never overrides the real environment)
 4. Environment variables
 5. Flags given on the command line

# CLI Flags

	--config          YAML config file
	--save-dir        Save directory
	-f, --format      Voting format
	--log-level       Log level
	--log-format      Log format
	--json            JSON output

# Environment Variables

	QUICKLY_RANK_SAVE_DIR   → --save-dir
	QUICKLY_RANK_FORMAT     → --format
	QUICKLY_RANK_LOG_LEVEL  → --log-level
	QUICKLY_RANK_LOG_FORMAT → --log-format
	QUICKLY_RANK_JSON       → --json

# Config File

	saveDir: ~/rounds
	defaultFormat: ranked
	logLevel: info

# Context

The resolved Config is carried in the command context:

	ctx = cliparse.WithContext(ctx, cfg)
	cfg := cliparse.FromContext(ctx)
*/
package cliparse
