// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/voting"
)

// RunFunc matches cobra's RunE
type RunFunc func(cmd *cobra.Command, args []string) error

// WithLogging wraps a command with start and completion logging
func WithLogging(next RunFunc) RunFunc {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		slog.Debug("command started",
			"command", cmd.Name(),
			"args", args,
		)

		err := next(cmd, args)

		duration := time.Since(start)
		if err != nil {
			slog.Info("command failed",
				"command", cmd.Name(),
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
			return err
		}
		slog.Info("command completed",
			"command", cmd.Name(),
			"duration_ms", duration.Milliseconds(),
		)
		return nil
	}
}

// NewLogger builds the process logger. With the auto log format the text
// handler is used when w is a terminal and the JSON handler otherwise.
func NewLogger(w io.Writer, cfg cliparse.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if opts.Level == slog.LevelDebug {
		opts.AddSource = true
	}

	useText := cfg.LogFormat == cliparse.LogFormatText
	if cfg.LogFormat == cliparse.LogFormatAuto {
		useText = isTerminal(w)
	}

	if useText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// JSONResponse writes data as an indented JSON document
func JSONResponse(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		return err
	}
	return nil
}

// ErrorResponse reports err to the user, as JSON when asJSON is set
func ErrorResponse(w io.Writer, asJSON bool, err error) {
	resp := models.ErrorResponse{
		Error:   ErrorKind(err),
		Message: err.Error(),
	}
	if asJSON {
		JSONResponse(w, resp)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", resp.Message)
}

// ErrorKind names the category of err
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "Not Found"
	case errors.Is(err, voting.ErrVerifyFailed),
		errors.Is(err, voting.ErrMissingSection),
		errors.Is(err, voting.ErrBadSeed),
		errors.Is(err, voting.ErrBadVote),
		errors.Is(err, voting.ErrTooManyVotes),
		errors.Is(err, voting.ErrUnscheduledVote):
		return "Invalid Round"
	case errors.Is(err, voting.ErrTooFewItems),
		errors.Is(err, voting.ErrEmptyItem),
		errors.Is(err, voting.ErrInvalidItem),
		errors.Is(err, voting.ErrDuplicateItem),
		errors.Is(err, voting.ErrInvalidFormat):
		return "Invalid Input"
	default:
		return "Error"
	}
}

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as already shown to the user
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was marked by Reported
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
