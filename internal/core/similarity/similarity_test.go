package similarity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityTokenSets(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"shared two of three", "the quick fox", "the quick dog", 2.0 / 3.0},
		{"same words reordered", "fox quick the", "the quick fox", 1},
		{"duplicates collapse", "the the quick fox", "the quick fox fox", 1},
		{"disjoint", "alpha beta", "gamma delta", 0},
		{"larger set divides", "a b", "a b c d", 0.5},
		{"double space is an empty token", "a  b", "a b", 2.0 / 3.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Similarity(tc.a, tc.b), 1e-12)
		})
	}
}

func TestSimilarityCharacterFallback(t *testing.T) {
	// "ecd" vs "ckdp": c and d match, 2*2/7.
	assert.Equal(t, 4.0/7.0, Similarity("ecd", "ckdp"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("", "abc"))
	// "a a a" has a single distinct token so bytes are compared.
	assert.Equal(t, QuickRatio("a a a", "a b c"), Similarity("a a a", "a b c"))
	assert.Equal(t, 2.0*4/float64(4+10), Similarity("mmmm", strings.Repeat("m", 10)))
}

func TestSimilarityIdentityAndSymmetry(t *testing.T) {
	samples := []string{
		"", " ", "  ", "x", "abc", "the quick fox", "<html><body>1</body></html>",
		"a b a b", "ümlaut wörds", strings.Repeat("ab ", 50),
	}
	modes := []CharacterMode{QuickRatioMode, MatchingBlocksMode}

	for _, mode := range modes {
		m := NewMetric(mode)
		for _, a := range samples {
			assert.Equal(t, 1.0, m.Score(a, a), "mode %v identity of %q", mode, a)
			for _, b := range samples {
				assert.Equal(t, m.Score(a, b), m.Score(b, a), "mode %v symmetry of %q, %q", mode, a, b)
			}
		}
	}
}

func TestQuickRatio(t *testing.T) {
	assert.Equal(t, 1.0, QuickRatio("", ""))
	assert.Equal(t, 1.0, QuickRatio("abc", "cba"))
	assert.Equal(t, 0.0, QuickRatio("abc", "xyz"))
	assert.Equal(t, 2.0*2/6, QuickRatio("aab", "abb"))
}

func TestMatchingBlocksRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"abc", "", 0},
		{"abcd", "bcde", 6.0 / 8.0},
		// Order matters: only one of the two letters can be matched.
		{"ab", "ba", 2.0 / 4.0},
		{"abxcd", "abycd", 8.0 / 10.0},
		{"private Thread currentThread;", "private volatile Thread currentThread;", 2.0 * 29 / 67},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, MatchingBlocksRatio(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
	assert.LessOrEqual(t, MatchingBlocksRatio("ecd", "ckdp"), QuickRatio("ecd", "ckdp"))
}

func TestMatchingBlocksCountsBytes(t *testing.T) {
	// "é" and "è" share their leading UTF-8 byte.
	assert.Equal(t, 0.5, MatchingBlocksRatio("é", "è"))
	assert.Equal(t, 0.5, QuickRatio("é", "è"))
}

func TestQuickRatioAgreesWithSequenceMatcher(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	alphabets := []string{"abcd", "ab ", "m", "<>/p", "\xff\x00a"}
	random := func(alpha string, n int) string {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(alpha[rng.Intn(len(alpha))])
		}
		return sb.String()
	}

	pairs := [][2]string{{"", ""}, {"", "x"}, {"ecd", "ckdp"}, {"ümlaut", "umlaut"}}
	for i := 0; i < 2000; i++ {
		alpha := alphabets[rng.Intn(len(alphabets))]
		pairs = append(pairs, [2]string{random(alpha, rng.Intn(120)), random(alpha, rng.Intn(120))})
	}

	for _, p := range pairs {
		m := difflib.NewMatcher(byteElements(p[0]), byteElements(p[1]))
		require.Equal(t, m.QuickRatio(), QuickRatio(p[0], p[1]), "%q vs %q", p[0], p[1])
		require.LessOrEqual(t, MatchingBlocksRatio(p[0], p[1]), QuickRatio(p[0], p[1]), "%q vs %q", p[0], p[1])
	}
}

func TestInCharacterRegime(t *testing.T) {
	assert.True(t, InCharacterRegime("", "a b"))
	assert.True(t, InCharacterRegime("x x x", "a b"))
	assert.True(t, InCharacterRegime(" ", "a b"))
	assert.True(t, InCharacterRegime("a b", "minified"))
	assert.False(t, InCharacterRegime("a b", "c d"))
	assert.False(t, InCharacterRegime("a ", "c d"))
}

func TestParseCharacterMode(t *testing.T) {
	mode, err := ParseCharacterMode("blocks")
	require.NoError(t, err)
	assert.Equal(t, MatchingBlocksMode, mode)

	mode, err = ParseCharacterMode("")
	require.NoError(t, err)
	assert.Equal(t, QuickRatioMode, mode)

	_, err = ParseCharacterMode("levenshtein")
	assert.Error(t, err)

	for _, m := range []CharacterMode{QuickRatioMode, MatchingBlocksMode} {
		parsed, err := ParseCharacterMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}
