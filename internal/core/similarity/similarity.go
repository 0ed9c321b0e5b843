// Package similarity implements the similarity metric used to compare
// response bodies: a token-set ratio over space separated words, with a
// character level fallback for texts made of a single token.
package similarity

import (
	"fmt"
	"strings"
)

// CharacterMode selects the character level fallback.
type CharacterMode int

const (
	// QuickRatioMode scores by byte multiset intersection (see QuickRatio).
	QuickRatioMode CharacterMode = iota
	// MatchingBlocksMode scores by greedy longest matching blocks (see MatchingBlocksRatio).
	MatchingBlocksMode
)

// String returns the flag spelling of the mode.
func (m CharacterMode) String() string {
	switch m {
	case QuickRatioMode:
		return "quick"
	case MatchingBlocksMode:
		return "blocks"
	default:
		return fmt.Sprintf("CharacterMode(%d)", int(m))
	}
}

// ParseCharacterMode parses "quick" or "blocks".
func ParseCharacterMode(s string) (CharacterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "quick", "quick_ratio":
		return QuickRatioMode, nil
	case "blocks", "matching_blocks":
		return MatchingBlocksMode, nil
	}
	return 0, fmt.Errorf("unknown character mode %q", s)
}

// Metric scores pairs of texts. The zero value uses QuickRatioMode.
// A Metric holds no mutable state and is safe for concurrent use.
type Metric struct {
	mode CharacterMode
}

// NewMetric returns a Metric using the given character fallback.
func NewMetric(mode CharacterMode) Metric {
	return Metric{mode: mode}
}

// Mode returns the character fallback in use.
func (m Metric) Mode() CharacterMode {
	return m.mode
}

// Score returns the similarity of a and b in [0, 1].
//
// Both texts are split on single spaces into sets of distinct tokens. If
// either set has at most one element the character fallback scores the raw
// bytes; otherwise the score is |A∩B| / max(|A|, |B|).
func (m Metric) Score(a, b string) float64 {
	a, b = canonical(a, b)
	if InCharacterRegime(a, b) {
		return m.character(a, b)
	}

	setA, setB := tokenSet(a), tokenSet(b)
	small, large := setA, setB
	if len(small) > len(large) {
		small, large = large, small
	}
	common := 0
	for tok := range small {
		if _, ok := large[tok]; ok {
			common++
		}
	}
	return float64(common) / float64(len(large))
}

func (m Metric) character(a, b string) float64 {
	if m.mode == MatchingBlocksMode {
		return MatchingBlocksRatio(a, b)
	}
	return QuickRatio(a, b)
}

// canonical orders a pair shorter first, byte-wise smaller first on equal
// lengths, so that every fallback is symmetric.
func canonical(a, b string) (string, string) {
	if len(b) < len(a) || (len(a) == len(b) && b < a) {
		return b, a
	}
	return a, b
}

var defaultMetric Metric

// Similarity scores a and b with the default metric.
func Similarity(a, b string) float64 {
	return defaultMetric.Score(a, b)
}
