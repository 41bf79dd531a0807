package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "intentctl",
		Short: "Parse free-text quick orders from the command line",
		Long: `intentctl runs the quick-order parser locally.

It extracts quantity, platform, service type and target from free text
such as "1k instagram seguidores @username" and reports a match score.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("keywords", "", "Keywords YAML file to merge over the built-in dictionary")
	rootCmd.PersistentFlags().Int("threshold", 0, "Preview threshold (defaults to PREVIEW_THRESHOLD or 50)")

	rootCmd.AddCommand(
		newParseCmd(),
		newNamesCmd(),
		newPreviewCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
