// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"os"

	"github.com/danielhkuo/quickly-rank/middleware"
	"github.com/danielhkuo/quickly-rank/router"
)

func main() {
	root := router.NewRouter()
	if err := root.Execute(); err != nil {
		// Handler errors were already printed in the configured format
		if !middleware.IsReported(err) {
			middleware.ErrorResponse(os.Stderr, false, err)
		}
		os.Exit(1)
	}
}
