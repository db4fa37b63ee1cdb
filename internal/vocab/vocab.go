// Package vocab holds the active set of category labels for a batch.
package vocab

import (
	"strings"

	"github.com/spendsight-dev/spendsight/internal/model"
)

// Vocabulary is an ordered set of category labels with case-insensitive
// uniqueness. The reserved fallback label is never a member.
type Vocabulary struct {
	labels []string
	terms  map[string][]string // lowercase label -> reference terms
}

// New builds a Vocabulary from labels: trimmed, case-insensitively deduplicated,
// order preserved. Blank entries and the reserved fallback label are dropped.
// Each label's reference term set starts from the label text itself plus the
// built-in lexicon entry for matching canonical buckets.
func New(labels []string) Vocabulary {
	v := Vocabulary{terms: make(map[string][]string)}
	seen := make(map[string]bool)
	for _, label := range labels {
		label = strings.TrimSpace(label)
		key := strings.ToLower(label)
		if label == "" || seen[key] || strings.EqualFold(label, model.Uncategorized) {
			continue
		}
		seen[key] = true
		v.labels = append(v.labels, label)
		v.terms[key] = append([]string{label}, lexicon[key]...)
	}
	return v
}

// Labels returns the labels in resolution order.
func (v Vocabulary) Labels() []string {
	out := make([]string, len(v.labels))
	copy(out, v.labels)
	return out
}

// Len returns the number of labels.
func (v Vocabulary) Len() int { return len(v.labels) }

// IsEmpty reports whether the vocabulary has no labels.
func (v Vocabulary) IsEmpty() bool { return len(v.labels) == 0 }

// Canonical returns the stored spelling for a label, matched case-insensitively.
func (v Vocabulary) Canonical(label string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	if _, ok := v.terms[key]; !ok {
		return "", false
	}
	for _, l := range v.labels {
		if strings.ToLower(l) == key {
			return l, true
		}
	}
	return "", false
}

// Contains reports whether label is a member, case-insensitively.
func (v Vocabulary) Contains(label string) bool {
	_, ok := v.Canonical(label)
	return ok
}

// Terms returns the reference term set used to score descriptions against label.
func (v Vocabulary) Terms(label string) []string {
	return v.terms[strings.ToLower(strings.TrimSpace(label))]
}

// AddTerms appends extra reference terms (e.g. user keywords from config) to an
// existing label. Unknown labels are ignored.
func (v Vocabulary) AddTerms(label string, extra ...string) {
	key := strings.ToLower(strings.TrimSpace(label))
	if _, ok := v.terms[key]; !ok {
		return
	}
	v.terms[key] = append(v.terms[key], extra...)
}
