package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/spendsight-dev/spendsight/internal/runlog"
)

func newRunsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List past categorization runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			entries, err := runlog.Read(cfg.RunLog.Path)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("No runs recorded.")
				return nil
			}

			for _, e := range entries {
				cmd.Printf("%s  %s  rows=%d categories=%d uncategorized=%d\n",
					e.Timestamp.Format(time.DateTime), e.SourceFile, e.Rows, e.VocabularySize, e.Uncategorized)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", configFileName, "config file path")

	return cmd
}
