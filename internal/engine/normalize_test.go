package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"STARBUCKS #123", "starbucks"},
		{"AMAZON.COM*A1B2C3", "amazon com a b c"},
		{"  Trader   Joe's  ", "trader joe s"},
		{"###unintelligible###", "unintelligible"},
		{"12345 67890", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestTokens_DropsNoise(t *testing.T) {
	got := Tokens("POS DEBIT CARD PURCHASE - SHELL OIL 998877 REF 12")
	assert.Equal(t, []string{"shell", "oil"}, got)
}

func TestTokens_Unintelligible(t *testing.T) {
	assert.Empty(t, Tokens("### 123 !!!"))
}

func TestLeadingWord(t *testing.T) {
	assert.Equal(t, "venmo", leadingWord("VENMO Payment 123"))
	assert.Equal(t, "", leadingWord("   "))
}
