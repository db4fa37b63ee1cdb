package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/spendsight-dev/spendsight/internal/model"
)

// Fingerprint returns a content hash over the normalized input batch plus the
// vocabulary configuration. Equal fingerprints mean Categorize would produce
// an identical result, which makes the hash safe to memoize on.
func Fingerprint(txns []model.Transaction, opts Options) string {
	rows := make([]string, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, fmt.Sprintf("%s|%s|%s", t.Date.Format("2006-01-02"), Normalize(t.Description), t.Amount.String()))
	}
	// Row order does not affect labels, so the hash ignores it too.
	sort.Strings(rows)

	h := sha256.New()
	for _, row := range rows {
		h.Write([]byte(row))
		h.Write([]byte{'\n'})
	}
	h.Write([]byte(configKey(opts)))
	return hex.EncodeToString(h.Sum(nil))
}

// configKey folds the label-affecting options into a stable string.
func configKey(opts Options) string {
	var b strings.Builder
	b.WriteString("categories=")
	b.WriteString(strings.Join(opts.ExplicitCategories, ","))
	fmt.Fprintf(&b, ";k=%d;minsim=%g;mincluster=%d;rules=%v",
		opts.NumCategories, opts.MinSimilarity, opts.MinClusterSize, opts.Rules)

	labels := make([]string, 0, len(opts.ExtraTerms))
	for label := range opts.ExtraTerms {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintf(&b, ";terms[%s]=%s", label, strings.Join(opts.ExtraTerms[label], ","))
	}
	return b.String()
}
