package engine

import (
	"github.com/spendsight-dev/spendsight/internal/model"
	"github.com/spendsight-dev/spendsight/internal/vocab"
)

// Rule is a pre-scoring categorization hook. Rules run in order before
// similarity scoring; the first rule to return ok wins the row. Rules must be
// pure functions of the transaction and vocabulary.
type Rule interface {
	Apply(txn model.Transaction, v vocab.Vocabulary) (label string, ok bool)
}

// SignRule forces all positive amounts into a fixed bucket, e.g. "Income".
// Disabled unless the target label is a vocabulary member.
type SignRule struct {
	Label string
}

// Apply assigns the rule's label to credits.
func (r SignRule) Apply(txn model.Transaction, v vocab.Vocabulary) (string, bool) {
	if !txn.Amount.IsPositive() {
		return "", false
	}
	canonical, ok := v.Canonical(r.Label)
	if !ok {
		return "", false
	}
	return canonical, true
}
