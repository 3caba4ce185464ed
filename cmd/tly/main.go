// Package main is the entry point for the tly CLI.
package main

import (
	"os"

	"github.com/tlyhq/tly-cli/cmd/tly/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(app.ExitCode(err))
	}
}
