package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendsight-dev/spendsight/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "spendsight",
		Short:   "Categorize bank transactions into spending buckets",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCategorizeCommand())
	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newRunsCommand())

	return rootCmd
}
