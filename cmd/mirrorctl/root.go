package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mirrorctl",
	Short: "Invoke the mirror skill locally",
	Long: `Invoke the mirror voice skill without deploying it.

Request envelopes are read from JSON files (or stdin) and dispatched through
the same handlers, interceptors and store the Lambda function uses. Several
files given to one invoke call share a store, so multi-turn conversations can
be replayed with the in-memory store.

Quick Start:
  mirrorctl routes                          # Show handler evaluation order
  mirrorctl invoke launch.json ask.json     # Replay two turns
  mirrorctl invoke -o yaml < request.json   # Read stdin, print YAML`,
	Version: version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
}
