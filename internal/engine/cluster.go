package engine

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spendsight-dev/spendsight/internal/model"
)

// joinThreshold is the minimum Jaccard similarity for a transaction to join
// an existing cluster during the greedy pass.
const joinThreshold = 0.3

// descCluster is one group of similar descriptions under construction.
type descCluster struct {
	tokens    map[string]bool // union of member token sets
	tokenFreq map[string]int  // token -> member occurrence count
	members   []model.Transaction
}

// deriveLabels clusters descriptions into at most k groups and synthesizes a
// human-readable label per group. Deterministic: transactions are visited in
// stable key order and every merge decision has a total tie-break.
func deriveLabels(txns []model.Transaction, k, minClusterSize int) []string {
	ordered := make([]model.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })

	clusters := greedyCluster(ordered)
	clusters = mergeToLimit(clusters, k)
	if minClusterSize > 1 {
		clusters = mergeSmall(clusters, minClusterSize)
	}
	return synthesizeLabels(clusters)
}

// greedyCluster assigns each transaction to the most similar existing cluster
// or opens a new one. Ties prefer the earliest cluster.
func greedyCluster(ordered []model.Transaction) []*descCluster {
	var clusters []*descCluster
	for _, txn := range ordered {
		toks := tokenSet(txn.Description)

		best := -1
		bestSim := 0.0
		for i, c := range clusters {
			sim := jaccard(toks, c.tokens)
			if sim > bestSim {
				bestSim = sim
				best = i
			}
		}

		if best >= 0 && bestSim >= joinThreshold {
			clusters[best].add(txn, toks)
			continue
		}
		c := &descCluster{tokens: make(map[string]bool), tokenFreq: make(map[string]int)}
		c.add(txn, toks)
		clusters = append(clusters, c)
	}
	return clusters
}

func (c *descCluster) add(txn model.Transaction, toks map[string]bool) {
	c.members = append(c.members, txn)
	for tok := range toks {
		c.tokens[tok] = true
	}
	for _, tok := range Tokens(txn.Description) {
		c.tokenFreq[tok]++
	}
}

// mergeInto folds src into dst.
func (c *descCluster) mergeInto(dst *descCluster) {
	dst.members = append(dst.members, c.members...)
	for tok := range c.tokens {
		dst.tokens[tok] = true
	}
	for tok, n := range c.tokenFreq {
		dst.tokenFreq[tok] += n
	}
}

// mergeToLimit merges the most similar cluster pair until at most k remain.
// Pair ties resolve to the lowest index pair, keeping the result reproducible.
func mergeToLimit(clusters []*descCluster, k int) []*descCluster {
	for len(clusters) > k {
		bi, bj := 0, 1
		bestSim := -1.0
		for i := 0; i < len(clusters); i++ {
			for j := i + 1; j < len(clusters); j++ {
				sim := jaccard(clusters[i].tokens, clusters[j].tokens)
				if sim > bestSim {
					bestSim = sim
					bi, bj = i, j
				}
			}
		}
		clusters[bj].mergeInto(clusters[bi])
		clusters = append(clusters[:bj], clusters[bj+1:]...)
	}
	return clusters
}

// mergeSmall folds clusters below minSize into their nearest neighbor, most
// similar first. At least one cluster always survives.
func mergeSmall(clusters []*descCluster, minSize int) []*descCluster {
	for len(clusters) > 1 {
		small := -1
		for i, c := range clusters {
			if len(c.members) < minSize {
				small = i
				break
			}
		}
		if small < 0 {
			break
		}

		nearest := -1
		bestSim := -1.0
		for i, c := range clusters {
			if i == small {
				continue
			}
			sim := jaccard(clusters[small].tokens, c.tokens)
			if sim > bestSim {
				bestSim = sim
				nearest = i
			}
		}
		clusters[small].mergeInto(clusters[nearest])
		clusters = append(clusters[:small], clusters[small+1:]...)
	}
	return clusters
}

var labelCaser = cases.Title(language.English)

// synthesizeLabels names each cluster after its most frequent token, falling
// back to the most common leading word, then to a positional name. Labels are
// unique within the returned list.
func synthesizeLabels(clusters []*descCluster) []string {
	taken := make(map[string]bool)
	labels := make([]string, 0, len(clusters))
	for i, c := range clusters {
		label := pickLabel(c, taken)
		if label == "" {
			label = fmt.Sprintf("Group %d", i+1)
		}
		taken[label] = true
		labels = append(labels, label)
	}
	return labels
}

// pickLabel tries cluster tokens by descending frequency, then leading words.
func pickLabel(c *descCluster, taken map[string]bool) string {
	type freq struct {
		tok string
		n   int
	}
	ranked := make([]freq, 0, len(c.tokenFreq))
	for tok, n := range c.tokenFreq {
		ranked = append(ranked, freq{tok, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return ranked[i].tok < ranked[j].tok
	})
	for _, f := range ranked {
		label := labelCaser.String(f.tok)
		if !taken[label] {
			return label
		}
	}

	leads := make(map[string]int)
	for _, m := range c.members {
		if w := leadingWord(m.Description); w != "" {
			leads[w]++
		}
	}
	ranked = ranked[:0]
	for tok, n := range leads {
		ranked = append(ranked, freq{tok, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return ranked[i].tok < ranked[j].tok
	})
	for _, f := range ranked {
		label := labelCaser.String(f.tok)
		if !taken[label] {
			return label
		}
	}
	return ""
}
