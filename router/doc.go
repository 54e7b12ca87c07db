// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the quickly-rank command tree.

# Command Registration

NewRouter returns the root cobra command with every subcommand attached:

	root := router.NewRouter()
	err := root.ExecuteContext(ctx)

# Commands

Round lifecycle:

	new <items-file|->   - Create and shuffle a round (--seed, --out)
	show <round>         - Current matchup and progress
	vote <round> <a|b>   - Record a vote and save
	undo <round>         - Revert the last vote and save
	verify <round>       - Replay a round file and report the result

Results:

	scores <round>       - Sorted win/loss table (--out writes a score file)
	merge <scorefile>... - Sum score files by item name

Global flags are registered by cliparse.BindFlags and resolved once per
invocation before the command runs. The resolved Config travels in the
command context.

# Handler Initialization

Each command builds its handler from the resolved configuration and the
command's streams:

	handlers.NewRoundHandler(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	handlers.NewScoreHandler(cfg, cmd.OutOrStdout())

Handler errors are printed (as text or JSON) and marked reported so main
only prints errors that cobra raised itself.
*/
package router
