// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides command wrappers and output helpers.

# Command Logging

Wrap cobra RunE functions with logging:

	cmd.RunE = middleware.WithLogging(handler)

Logs command start (command, args) at debug level and completion
(duration_ms, error) at info level.

# Logger

NewLogger builds the slog logger from the configuration. The "auto" log
format picks the text handler when the destination is a terminal and the
JSON handler otherwise.

# Output Helpers

Write JSON responses:

	middleware.JSONResponse(w, data)

Report errors as text or models.ErrorResponse:

	middleware.ErrorResponse(os.Stderr, cfg.JSON, err)

ErrorKind maps voting and file system errors onto a short category such as
"Invalid Round" or "Not Found". Errors that have already been shown are
marked with Reported so main does not print them twice.
*/
package middleware
