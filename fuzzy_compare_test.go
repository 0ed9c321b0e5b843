package fuzzycompare

import (
	"strings"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"token sets", "the quick fox", "the quick dog", 2.0 / 3.0},
		{"single blobs", "ecd", "ckdp", 4.0 / 7.0},
		{"both empty", "", "", 1},
		{"identical", "<html>", "<html>", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Similarity(tc.a, tc.b); got != tc.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestIsSimilarEnough(t *testing.T) {
	long20k := strings.Repeat("a", 20000)
	long25k := strings.Repeat("a", 25000)

	tests := []struct {
		name      string
		a, b      string
		threshold float64
		expected  bool
	}{
		{"short blobs below threshold", "ecd", "ckdp", 0.6, false},
		{"identical long bodies", long25k, long25k, 0.999, true},
		{"length ratio too large", long20k, long25k, 0.9, false},
		{"length ratio allows match", long20k, long25k, 0.85, true},
		{"zero threshold", "abc", "", 0, true},
		{"exact threshold needs equality", "a b", "b a", 1, false},
		{"empty pair", "", "", 0.7, true},
		{"empty and non-empty", "", "nonempty", 0.1, false},
		{"any text matches itself", "same text", "same text", 0.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSimilarEnough(tc.a, tc.b, tc.threshold); got != tc.expected {
				t.Errorf("IsSimilarEnough = %v, want %v", got, tc.expected)
			}
			if got := FuzzyNotEqual(tc.a, tc.b, tc.threshold); got == tc.expected {
				t.Errorf("FuzzyNotEqual = %v, want %v", got, !tc.expected)
			}
		})
	}
}

func TestDefaultThresholdWrappers(t *testing.T) {
	if !Similar("the quick fox", "the quick dog") {
		t.Error("expected 2/3 overlap to pass the default threshold")
	}
	if !NotSimilar("ecd", "ckdp") {
		t.Error("expected 4/7 to fail the default threshold")
	}
	if FuzzyEqual("ecd", "ckdp", DefaultThreshold) != Similar("ecd", "ckdp") {
		t.Error("Similar must use DefaultThreshold")
	}
}
