package engine

import (
	"strings"

	"github.com/spendsight-dev/spendsight/internal/vocab"
)

// Similarity weights. A whole reference term found inside the normalized
// description is a full match; partial token overlap is discounted so it
// can never outrank a term hit.
const (
	termHitScore    = 1.0
	tokenOverlapCap = 0.8
)

// scoreLabel returns the similarity between a normalized description and a
// label's reference term set. Pure and stateless, so rows can be scored on
// any goroutine without changing the result.
func scoreLabel(normDesc string, descTokens map[string]bool, v vocab.Vocabulary, label string) float64 {
	best := 0.0
	for _, term := range v.Terms(label) {
		normTerm := Normalize(term)
		if normTerm == "" {
			continue
		}
		if containsTerm(normDesc, normTerm) {
			return termHitScore
		}

		termTokens := Tokens(term)
		if len(termTokens) == 0 {
			continue
		}
		overlap := 0
		for _, tok := range termTokens {
			if descTokens[tok] {
				overlap++
			}
		}
		s := tokenOverlapCap * float64(overlap) / float64(len(termTokens))
		if s > best {
			best = s
		}
	}
	return best
}

// containsTerm reports whether term occurs in desc on token boundaries.
func containsTerm(desc, term string) bool {
	if desc == "" || term == "" {
		return false
	}
	start := 0
	for {
		i := strings.Index(desc[start:], term)
		if i < 0 {
			return false
		}
		i += start
		beforeOK := i == 0 || desc[i-1] == ' '
		after := i + len(term)
		afterOK := after == len(desc) || desc[after] == ' '
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
}

// jaccard computes set similarity between two token sets.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
