package model

import "github.com/google/uuid"

// Batch is a fully labeled set of transactions plus the vocabulary that
// produced the labels. One Batch exists per upload; a new upload replaces it.
type Batch struct {
	ID           uuid.UUID
	Transactions []Transaction
	Vocabulary   []string // labels in resolution order, excluding the fallback
	Fingerprint  string   // content hash of input rows + configuration
}

// Uncategorized is the reserved fallback label. It is never a vocabulary
// member and is assigned when no label scores above the confidence floor.
const Uncategorized = "Uncategorized"

// NewBatch assigns a fresh ID to a labeled result.
func NewBatch(txns []Transaction, vocabulary []string, fingerprint string) Batch {
	return Batch{
		ID:           uuid.New(),
		Transactions: txns,
		Vocabulary:   vocabulary,
		Fingerprint:  fingerprint,
	}
}

// UncategorizedCount returns how many rows fell back to the reserved label.
func (b Batch) UncategorizedCount() int {
	n := 0
	for _, t := range b.Transactions {
		if t.Category == Uncategorized {
			n++
		}
	}
	return n
}
