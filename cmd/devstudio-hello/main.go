// Package main is the entry point for the devstudio-hello CLI tool.
// devstudio-hello prints a greeting and basic runtime information to
// confirm that a development environment is set up.
package main

import (
	"os"

	"github.com/devstudio/devstudio-hello/internal/cli"
)

var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
