// Package pipeline wires ingestion, categorization, enrichment, and export
// into one run per uploaded file.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spendsight-dev/spendsight/internal/cache"
	"github.com/spendsight-dev/spendsight/internal/config"
	"github.com/spendsight-dev/spendsight/internal/engine"
	"github.com/spendsight-dev/spendsight/internal/enrich"
	"github.com/spendsight-dev/spendsight/internal/export"
	"github.com/spendsight-dev/spendsight/internal/ingest"
	"github.com/spendsight-dev/spendsight/internal/log"
	"github.com/spendsight-dev/spendsight/internal/model"
	"github.com/spendsight-dev/spendsight/internal/runlog"
)

// Cache sizing for repeated runs over the same upload.
const (
	cacheSize = 32
	cacheTTL  = 30 * time.Minute
)

// Service runs the categorization pipeline.
type Service struct {
	registry *ingest.Registry
	results  *cache.LRU[model.Batch]
	logger   *log.Logger
}

// NewService creates a pipeline Service.
func NewService(logger *log.Logger) *Service {
	return &Service{
		registry: ingest.DefaultRegistry(),
		results:  cache.New[model.Batch](cacheSize, cacheTTL),
		logger:   logger.WithComponent("pipeline"),
	}
}

// Request describes one run. CLI flags override the config file.
type Request struct {
	InputPath          string
	OutputPath         string
	Config             *config.Config
	ExplicitCategories []string
	NumCategories      int
}

// options merges the config file and request overrides into engine Options.
func (r Request) options() engine.Options {
	opts := engine.DefaultOptions()
	cfg := r.Config

	if cfg.Engine.MinSimilarity > 0 {
		opts.MinSimilarity = cfg.Engine.MinSimilarity
	}
	if cfg.Engine.MinClusterSize > 0 {
		opts.MinClusterSize = cfg.Engine.MinClusterSize
	}
	opts.ParallelCutoff = cfg.Engine.ParallelCutoff

	opts.ExplicitCategories = cfg.CategoryNames()
	opts.NumCategories = cfg.NumCategories
	for _, cat := range cfg.Categories {
		if len(cat.Keywords) == 0 {
			continue
		}
		if opts.ExtraTerms == nil {
			opts.ExtraTerms = make(map[string][]string)
		}
		opts.ExtraTerms[cat.Name] = cat.Keywords
	}
	if len(r.ExplicitCategories) > 0 {
		opts.ExplicitCategories = r.ExplicitCategories
		opts.NumCategories = 0
	}
	if r.NumCategories != 0 {
		// Negative counts pass through so Resolve rejects them.
		opts.NumCategories = r.NumCategories
		opts.ExplicitCategories = nil
	}

	if cfg.Income.Enabled {
		opts.Rules = append(opts.Rules, engine.SignRule{Label: cfg.Income.Label})
	}
	return opts
}

// Run ingests the input file, labels every row, and writes the labeled table.
func (s *Service) Run(req Request) (model.Batch, error) {
	txns, err := ingest.ParseFile(s.registry, req.InputPath)
	if err != nil {
		return model.Batch{}, err
	}
	s.logger.Debug("parsed statement", "file", req.InputPath, "rows", len(txns))

	batch, err := s.Categorize(txns, req.options())
	if err != nil {
		return model.Batch{}, err
	}

	if req.Config.RunLog.Enabled {
		entry := runlog.Entry{
			Timestamp:      time.Now(),
			SourceFile:     filepath.Base(req.InputPath),
			Rows:           len(batch.Transactions),
			VocabularySize: len(batch.Vocabulary),
			Uncategorized:  batch.UncategorizedCount(),
			Fingerprint:    batch.Fingerprint,
		}
		if err := runlog.Append(req.Config.RunLog.Path, []runlog.Entry{entry}); err != nil {
			return model.Batch{}, fmt.Errorf("recording run: %w", err)
		}
	}

	if req.OutputPath != "" {
		if err := s.writeOutput(req.OutputPath, batch); err != nil {
			return model.Batch{}, err
		}
	}
	return batch, nil
}

// Categorize labels a batch, consulting the content-addressed result cache.
func (s *Service) Categorize(txns []model.Transaction, opts engine.Options) (model.Batch, error) {
	fingerprint := engine.Fingerprint(txns, opts)
	if cached, ok := s.results.Get(fingerprint); ok {
		s.logger.Debug("cache hit", "fingerprint", fingerprint)
		return cached, nil
	}

	v, err := engine.Resolve(txns, opts)
	if err != nil {
		return model.Batch{}, err
	}

	labeled, err := engine.Categorize(txns, v, opts)
	if err != nil {
		return model.Batch{}, err
	}

	labeled = enrich.ApplyAll(labeled)
	// Most recent first, the table display convention.
	sort.SliceStable(labeled, func(i, j int) bool { return labeled[j].Less(labeled[i]) })

	batch := model.NewBatch(labeled, v.Labels(), fingerprint)
	s.results.Set(fingerprint, batch)
	s.logger.Debug("categorized batch",
		"rows", len(labeled),
		"vocabulary", len(batch.Vocabulary),
		"uncategorized", batch.UncategorizedCount(),
	)
	return batch, nil
}

func (s *Service) writeOutput(path string, batch model.Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	if err := export.WriteTransactions(f, batch.Transactions); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
