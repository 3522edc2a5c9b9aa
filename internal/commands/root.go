package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priyanshbendre/cashflow/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cashflow",
		Short:   "Classify bank exports and track personal cash flow",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newMergeCommand())
	rootCmd.AddCommand(newChartCommand())

	return rootCmd
}
