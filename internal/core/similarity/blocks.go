package similarity

import "github.com/pmezard/go-difflib/difflib"

// MatchingBlocksRatio scores two texts by greedy longest matching blocks,
// the sequence matcher ratio: find the longest common run, preferring the
// one starting earliest in a and then earliest in b, and repeat on the
// unmatched text left and right of it. The result is
// 2*matches/(len(a)+len(b)) where matches is the total size of all blocks.
//
// Texts are compared byte by byte and the automatic junk heuristic is off,
// so every byte counts regardless of how common it is. Worst case cost is
// O(len(a)*len(b)).
func MatchingBlocksRatio(a, b string) float64 {
	m := difflib.NewMatcherWithJunk(byteElements(a), byteElements(b), false, nil)
	return m.Ratio()
}

// byteElements splits s into one element per byte. Splitting on "" would
// yield runes and break the byte units shared with the bound table.
func byteElements(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i : i+1]
	}
	return out
}
