package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendsight-dev/spendsight/internal/model"
)

func TestFingerprint_StableAcrossRowOrder(t *testing.T) {
	txns := sampleBatch()
	reversed := make([]model.Transaction, len(txns))
	for i, tx := range txns {
		reversed[len(txns)-1-i] = tx
	}

	opts := DefaultOptions()
	assert.Equal(t, Fingerprint(txns, opts), Fingerprint(reversed, opts))
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	opts := DefaultOptions()
	base := Fingerprint(sampleBatch(), opts)

	changed := sampleBatch()
	changed[0].Amount = dec("-99.00")
	assert.NotEqual(t, base, Fingerprint(changed, opts))
}

func TestFingerprint_ChangesWithConfig(t *testing.T) {
	txns := sampleBatch()
	base := Fingerprint(txns, DefaultOptions())

	withLabels := DefaultOptions()
	withLabels.ExplicitCategories = []string{"Coffee", "Shopping"}
	assert.NotEqual(t, base, Fingerprint(txns, withLabels))

	withK := DefaultOptions()
	withK.NumCategories = 2
	assert.NotEqual(t, base, Fingerprint(txns, withK))

	withTerms := DefaultOptions()
	withTerms.ExtraTerms = map[string][]string{"Coffee": {"latte"}}
	assert.NotEqual(t, base, Fingerprint(txns, withTerms))
}

func TestFingerprint_IgnoresExistingLabels(t *testing.T) {
	txns := sampleBatch()
	labeled := sampleBatch()
	for i := range labeled {
		labeled[i].Category = "Coffee"
	}
	opts := DefaultOptions()
	assert.Equal(t, Fingerprint(txns, opts), Fingerprint(labeled, opts))
}
