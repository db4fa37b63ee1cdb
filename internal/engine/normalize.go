package engine

import "strings"

// stopwords are tokens that carry no merchant signal in bank descriptions.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "inc": true, "llc": true,
	"com": true, "www": true, "pos": true, "ach": true, "eft": true,
	"ref": true, "debit": true, "credit": true, "card": true,
	"purchase": true, "payment": true, "online": true, "web": true,
	"transaction": true, "pending": true, "recurring": true,
}

// Normalize lowercases a description, strips digits, punctuation, and
// transaction-ID noise, and collapses whitespace. Never fails; an
// unintelligible description normalizes to "".
func Normalize(desc string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, desc)
	return strings.Join(strings.Fields(mapped), " ")
}

// Tokens returns the normalized, stopword-free tokens of a description.
func Tokens(desc string) []string {
	var out []string
	for _, tok := range strings.Fields(Normalize(desc)) {
		if len(tok) < 2 || stopwords[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// tokenSet returns Tokens as a set.
func tokenSet(desc string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokens(desc) {
		set[tok] = true
	}
	return set
}

// leadingWord returns the first whitespace-separated word of the raw
// description, used as a last-resort cluster label.
func leadingWord(desc string) string {
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return ""
	}
	return Normalize(fields[0])
}
