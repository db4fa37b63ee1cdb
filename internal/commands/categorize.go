package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendsight-dev/spendsight/internal/config"
	"github.com/spendsight-dev/spendsight/internal/log"
	"github.com/spendsight-dev/spendsight/internal/pipeline"
)

func newCategorizeCommand() *cobra.Command {
	var categories []string
	var numCategories int
	var output string
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "categorize <file>",
		Short: "Label every transaction in a statement file",
		Long: `Categorize reads a CSV, TSV/TXT, or XLSX statement with Date, Description,
and Transaction Amount columns, assigns a category to every row, and writes
the labeled table as CSV sorted by date descending.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numSet := cmd.Flags().Changed("num-categories")
			if len(categories) > 0 && numSet {
				return fmt.Errorf("--categories and --num-categories are mutually exclusive")
			}
			// Negative values flow through to the engine, which rejects them;
			// an explicit zero would otherwise read as "not set".
			if numSet && numCategories == 0 {
				return fmt.Errorf("--num-categories must be positive")
			}
			return runCategorize(cmd, args[0], categorizeParams{
				categories:    categories,
				numCategories: numCategories,
				output:        output,
				configPath:    configPath,
				verbose:       verbose,
			})
		},
	}

	cmd.Flags().StringSliceVar(&categories, "categories", nil, "comma-separated category labels")
	cmd.Flags().IntVar(&numCategories, "num-categories", 0, "derive this many categories from the data")
	cmd.Flags().StringVarP(&output, "output", "o", "labeled_transactions.csv", "output CSV path")
	cmd.Flags().StringVar(&configPath, "config", configFileName, "config file path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

type categorizeParams struct {
	categories    []string
	numCategories int
	output        string
	configPath    string
	verbose       bool
}

func runCategorize(cmd *cobra.Command, inputPath string, params categorizeParams) error {
	cfg, err := loadConfig(params.configPath)
	if err != nil {
		return err
	}

	logger := log.Discard()
	if params.verbose {
		logger = log.New(cmd.ErrOrStderr(), true)
	}

	svc := pipeline.NewService(logger)
	batch, err := svc.Run(pipeline.Request{
		InputPath:          inputPath,
		OutputPath:         params.output,
		Config:             cfg,
		ExplicitCategories: params.categories,
		NumCategories:      params.numCategories,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Labeled %d transactions into %d categories (%d uncategorized)\n",
		len(batch.Transactions), len(batch.Vocabulary), batch.UncategorizedCount())
	cmd.Printf("Categories: %s\n", strings.Join(batch.Vocabulary, ", "))
	cmd.Printf("Wrote %s\n", params.output)
	return nil
}

// loadConfig reads the config file, falling back to defaults when the default
// path is absent. An explicit missing path is still an error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if path == configFileName && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config %s not found", path)
		}
		return nil, err
	}
	return cfg, nil
}
