// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/handlers"
	"github.com/danielhkuo/quickly-rank/middleware"
)

const flagOut = "out"

// NewRouter builds the quickly-rank command tree
func NewRouter() *cobra.Command {
	root := &cobra.Command{
		Use:   "quickly-rank",
		Short: "Rank a list of items by voting on pairwise matchups",
		Long: `quickly-rank runs pairwise voting rounds stored in plain text files.

Create a round from a list of items, vote on one matchup at a time, and
tally the wins and losses of every item when you are done.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: configure,
	}
	cliparse.BindFlags(root.PersistentFlags())

	// Round lifecycle
	root.AddCommand(newCommand())
	root.AddCommand(&cobra.Command{
		Use:   "show <round>",
		Short: "Show the current matchup",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, cfg cliparse.Config, args []string) error {
			return roundHandler(cmd, cfg).Show(args[0])
		}),
	})
	root.AddCommand(&cobra.Command{
		Use:   "vote <round> <a|b>",
		Short: "Vote on the current matchup",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, cfg cliparse.Config, args []string) error {
			return roundHandler(cmd, cfg).Vote(args[0], args[1])
		}),
	})
	root.AddCommand(&cobra.Command{
		Use:   "undo <round>",
		Short: "Undo the most recent vote",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, cfg cliparse.Config, args []string) error {
			return roundHandler(cmd, cfg).Undo(args[0])
		}),
	})
	root.AddCommand(&cobra.Command{
		Use:   "verify <round>",
		Short: "Check that a round file replays cleanly",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, cfg cliparse.Config, args []string) error {
			return roundHandler(cmd, cfg).Verify(args[0])
		}),
	})

	// Results
	scores := &cobra.Command{
		Use:   "scores <round>",
		Short: "Tally wins and losses for a round",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, cfg cliparse.Config, args []string) error {
			out, _ := cmd.Flags().GetString(flagOut)
			return scoreHandler(cmd, cfg).Scores(args[0], out)
		}),
	}
	scores.Flags().StringP(flagOut, "o", "", "also write a score file")
	root.AddCommand(scores)

	merge := &cobra.Command{
		Use:   "merge <scorefile>...",
		Short: "Combine score files by item name",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, cfg cliparse.Config, args []string) error {
			out, _ := cmd.Flags().GetString(flagOut)
			return scoreHandler(cmd, cfg).Merge(args, out)
		}),
	}
	merge.Flags().StringP(flagOut, "o", "", "write the merged score file")
	root.AddCommand(merge)

	return root
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <items-file|->",
		Short: "Create a round from a list of items, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, cfg cliparse.Config, args []string) error {
			out, _ := cmd.Flags().GetString(flagOut)
			seed, _ := cmd.Flags().GetUint32("seed")
			return roundHandler(cmd, cfg).New(handlers.NewRoundOptions{
				Source: args[0],
				Out:    out,
				Seed:   seed,
			})
		}),
	}
	cmd.Flags().StringP(flagOut, "o", "", "round file (default: generated in the save directory)")
	cmd.Flags().Uint32("seed", 0, "shuffle seed (default: random)")
	return cmd
}

// configure resolves the configuration and installs the logger
func configure(cmd *cobra.Command, args []string) error {
	cfg, err := cliparse.ParseFlags(cmd.Flags())
	if err != nil {
		return err
	}
	slog.SetDefault(middleware.NewLogger(cmd.ErrOrStderr(), cfg))
	cmd.SetContext(cliparse.WithContext(cmd.Context(), cfg))
	return nil
}

// run adds logging and error reporting to a handler call
func run(fn func(cmd *cobra.Command, cfg cliparse.Config, args []string) error) middleware.RunFunc {
	return middleware.WithLogging(func(cmd *cobra.Command, args []string) error {
		cfg := cliparse.FromContext(cmd.Context())
		err := fn(cmd, cfg, args)
		if err != nil && !middleware.IsReported(err) {
			middleware.ErrorResponse(cmd.ErrOrStderr(), cfg.JSON, err)
			return middleware.Reported(err)
		}
		return err
	})
}

func roundHandler(cmd *cobra.Command, cfg cliparse.Config) *handlers.RoundHandler {
	return handlers.NewRoundHandler(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
}

func scoreHandler(cmd *cobra.Command, cfg cliparse.Config) *handlers.ScoreHandler {
	return handlers.NewScoreHandler(cfg, cmd.OutOrStdout())
}
