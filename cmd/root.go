package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prforge",
	Short: "Open GitHub pull requests from programmatically supplied files",
	Long: `prforge assembles a pull request on GitHub without a local clone:
it resolves the base branch, creates a branch, uploads file contents as
blobs, builds a tree and commit on top of the base, and opens the PR.`,
}

func Execute() error {
	return rootCmd.Execute()
}
