// Package fuzzycompare measures how alike two strings are and decides,
// cheaply, whether they are similar enough. It is meant for spotting near
// duplicate HTTP response bodies, for instance when diffing the responses to
// a true and a false condition during blind SQL injection testing.
//
// The similarity of two texts is the share of distinct space separated
// tokens they have in common:
//
//	|A ∩ B| / max(|A|, |B|)
//
// Texts made of a single token (minified or compressed bodies) fall back to
// a byte level quick ratio, 2*matches/(len(a)+len(b)).
//
// IsSimilarEnough answers similarity(a, b) >= threshold but skips the
// metric whenever the ratio of the two lengths already caps the reachable
// similarity below the threshold. The shortcut never changes the answer.
package fuzzycompare

import (
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/decision"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/similarity"
)

// DefaultThreshold is the threshold used by Similar and NotSimilar.
const DefaultThreshold = 0.6

var decider = decision.New(nil, nil)

// Similarity returns the similarity of a and b in [0, 1].
func Similarity(a, b string) float64 {
	return similarity.Similarity(a, b)
}

// IsSimilarEnough reports whether Similarity(a, b) >= threshold, avoiding
// the computation when the lengths alone decide it. A threshold of exactly 1
// means a == b.
func IsSimilarEnough(a, b string, threshold float64) bool {
	return decider.IsSimilarEnough(a, b, threshold)
}

// FuzzyEqual reports whether a and b are similar at threshold.
func FuzzyEqual(a, b string, threshold float64) bool {
	return IsSimilarEnough(a, b, threshold)
}

// FuzzyNotEqual reports whether the similarity of a and b is below threshold.
func FuzzyNotEqual(a, b string, threshold float64) bool {
	return !IsSimilarEnough(a, b, threshold)
}

// Similar is FuzzyEqual at DefaultThreshold.
func Similar(a, b string) bool {
	return FuzzyEqual(a, b, DefaultThreshold)
}

// NotSimilar is FuzzyNotEqual at DefaultThreshold.
func NotSimilar(a, b string) bool {
	return FuzzyNotEqual(a, b, DefaultThreshold)
}
