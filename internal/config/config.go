package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level spendsight.yaml configuration.
type Config struct {
	Categories    []Category   `yaml:"categories,omitempty"`
	NumCategories int          `yaml:"num_categories,omitempty"`
	Engine        EngineConfig `yaml:"engine"`
	Income        IncomeConfig `yaml:"income"`
	RunLog        RunLogConfig `yaml:"run_log"`
}

// Category is one user-defined label plus optional matching keywords.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// EngineConfig controls scoring and clustering thresholds.
type EngineConfig struct {
	MinSimilarity  float64 `yaml:"min_similarity"`
	MinClusterSize int     `yaml:"min_cluster_size"`
	ParallelCutoff int     `yaml:"parallel_cutoff"`
}

// IncomeConfig controls the signed-amount rule that forces credits into a
// fixed bucket before similarity scoring.
type IncomeConfig struct {
	Enabled bool   `yaml:"enabled"`
	Label   string `yaml:"label"`
}

// RunLogConfig controls the categorization audit log.
type RunLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// Load reads a spendsight.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			MinSimilarity:  0.5,
			MinClusterSize: 1,
			ParallelCutoff: 500,
		},
		Income: IncomeConfig{
			Enabled: false,
			Label:   "Income",
		},
		RunLog: RunLogConfig{
			Enabled: true,
			Path:    "spendsight-runs.csv",
		},
	}
}

// CategoryNames returns the configured label list in order.
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}
