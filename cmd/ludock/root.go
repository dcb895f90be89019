package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via -ldflags; "dev" otherwise.
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:          "ludock",
	Short:        "A headless Roblox-like runtime for AI agents",
	Version:      Version,
	SilenceUsage: true,
	SilenceErrors: true,
}

// Execute runs the root command, translating a *pipeline.Error into the
// CLI's documented process exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps err to the CLI's exit code, defaulting to 5 (unknown)
// for anything that isn't a *pipeline.Error.
func exitCodeFor(err error) int {
	fmt.Fprintln(os.Stderr, "Error:", err)
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	return 5
}
