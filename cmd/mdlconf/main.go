// Package main is the entry point for the mdlconf CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/mdlconf/internal/cli"
	"github.com/yaklabco/mdlconf/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrConfigInvalid - the problems were already rendered.
		if errors.Is(err, cli.ErrConfigInvalid) {
			return cli.ExitConfigError
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitInternalError
	}

	return cli.ExitSuccess
}
