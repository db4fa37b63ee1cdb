// Package engine assigns a spending category to every transaction in a batch.
//
// Two strategies are supported: closed-set assignment against a fixed
// vocabulary, and open-set derivation that clusters descriptions into at most
// k buckets. Both are pure functions of their inputs: no wall-clock, no
// randomness, no map-iteration-order dependence, so repeated runs on the same
// batch produce identical labels.
package engine

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/spendsight-dev/spendsight/internal/model"
	"github.com/spendsight-dev/spendsight/internal/vocab"
)

// ErrInvalidArgument reports a caller contract violation: empty batch, empty
// vocabulary, or an unsatisfiable category count.
var ErrInvalidArgument = errors.New("invalid argument")

// Options configures one categorization run.
type Options struct {
	// ExplicitCategories, when non-empty, fixes the vocabulary (closed set).
	ExplicitCategories []string
	// NumCategories, when > 0 and no explicit categories are given, bounds
	// open-set derivation. Mutually exclusive in effect with explicit labels.
	NumCategories int

	// MinSimilarity is the confidence floor below which a row falls back to
	// the reserved label.
	MinSimilarity float64
	// MinClusterSize controls open-set derivation: clusters smaller than
	// this are merged into their nearest neighbor. 1 keeps singletons.
	MinClusterSize int

	// ExtraTerms adds caller-supplied keywords to a label's reference term
	// set, keyed by label name.
	ExtraTerms map[string][]string

	// Rules run before similarity scoring; first match wins the row.
	Rules []Rule

	// ParallelCutoff is the batch size at which scoring fans out across
	// workers. Zero disables parallel scoring.
	ParallelCutoff int
}

// Auto-derivation bounds when the caller gives neither labels nor a count.
const (
	autoMinCategories = 3
	autoMaxCategories = 15
)

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		MinSimilarity:  0.5,
		MinClusterSize: 1,
		ParallelCutoff: 500,
	}
}

// Resolve produces the vocabulary for a batch. Explicit categories win;
// otherwise labels are derived by clustering descriptions, either to the
// requested count or to an automatically bounded one.
func Resolve(txns []model.Transaction, opts Options) (vocab.Vocabulary, error) {
	if len(txns) == 0 {
		return vocab.Vocabulary{}, fmt.Errorf("%w: empty transaction batch", ErrInvalidArgument)
	}

	if len(opts.ExplicitCategories) > 0 {
		v := vocab.New(opts.ExplicitCategories)
		if v.IsEmpty() {
			return vocab.Vocabulary{}, fmt.Errorf("%w: explicit categories resolve to an empty vocabulary", ErrInvalidArgument)
		}
		for label, terms := range opts.ExtraTerms {
			v.AddTerms(label, terms...)
		}
		return v, nil
	}

	distinct := distinctDescriptions(txns)
	k := opts.NumCategories
	if k != 0 {
		if k < 1 {
			return vocab.Vocabulary{}, fmt.Errorf("%w: num_categories must be positive, got %d", ErrInvalidArgument, k)
		}
		if k > distinct {
			return vocab.Vocabulary{}, fmt.Errorf("%w: num_categories %d exceeds %d distinct descriptions", ErrInvalidArgument, k, distinct)
		}
	} else {
		k = distinct
		if k > autoMaxCategories {
			k = autoMaxCategories
		}
		if k < autoMinCategories && distinct >= autoMinCategories {
			k = autoMinCategories
		}
	}

	labels := deriveLabels(txns, k, opts.MinClusterSize)
	return vocab.New(labels), nil
}

// Categorize assigns a vocabulary label (or the reserved fallback) to every
// transaction. Input order is preserved; the returned slice is a copy.
func Categorize(txns []model.Transaction, v vocab.Vocabulary, opts Options) ([]model.Transaction, error) {
	if len(txns) == 0 {
		return nil, fmt.Errorf("%w: empty transaction batch", ErrInvalidArgument)
	}
	if v.IsEmpty() {
		return nil, fmt.Errorf("%w: empty vocabulary", ErrInvalidArgument)
	}

	// Labels are scored in lexicographic order so that equal scores resolve
	// to the smallest label regardless of vocabulary order.
	labels := v.Labels()
	sort.Strings(labels)

	out := make([]model.Transaction, len(txns))
	assign := func(i int) {
		out[i] = txns[i]
		out[i].Category = assignOne(txns[i], v, labels, opts)
	}

	if opts.ParallelCutoff > 0 && len(txns) >= opts.ParallelCutoff {
		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		chunk := (len(txns) + runtime.NumCPU() - 1) / runtime.NumCPU()
		for start := 0; start < len(txns); start += chunk {
			end := min(start+chunk, len(txns))
			start := start
			g.Go(func() error {
				for i := start; i < end; i++ {
					assign(i)
				}
				return nil
			})
		}
		// Workers never fail; per-row ambiguity maps to the fallback label.
		_ = g.Wait()
	} else {
		for i := range txns {
			assign(i)
		}
	}
	return out, nil
}

// assignOne picks the category for a single row: rules first, then best
// similarity, then the reserved fallback.
func assignOne(txn model.Transaction, v vocab.Vocabulary, sortedLabels []string, opts Options) string {
	for _, rule := range opts.Rules {
		if label, ok := rule.Apply(txn, v); ok {
			return label
		}
	}

	normDesc := Normalize(txn.Description)
	descTokens := tokenSet(txn.Description)

	bestLabel := model.Uncategorized
	bestScore := 0.0
	for _, label := range sortedLabels {
		s := scoreLabel(normDesc, descTokens, v, label)
		if s > bestScore {
			bestScore = s
			bestLabel = label
		}
	}
	if bestScore < opts.MinSimilarity {
		return model.Uncategorized
	}
	return bestLabel
}

func distinctDescriptions(txns []model.Transaction) int {
	seen := make(map[string]bool, len(txns))
	for _, t := range txns {
		seen[Normalize(t.Description)] = true
	}
	return len(seen)
}
