package commands

import (
	"github.com/spf13/cobra"

	"github.com/spendsight-dev/spendsight/internal/vocab"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print the built-in category labels",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, label := range vocab.DefaultLabels() {
				cmd.Println(label)
			}
		},
	}
}
