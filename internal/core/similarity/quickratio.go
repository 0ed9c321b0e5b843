package similarity

// QuickRatio scores two texts by the multiset intersection of their bytes:
// every byte of a that still has an unused copy in b counts as one match.
// The result is 2*matches/(len(a)+len(b)), and 1 for two empty texts.
//
// Byte order is ignored, so QuickRatio is an upper bound of any ordered
// matching score. It returns what the sequence matcher's QuickRatio returns
// for the same bytes, counted in a fixed array instead of a map of
// one-byte strings, so it runs in linear time without allocating.
func QuickRatio(a, b string) float64 {
	var avail [256]int
	for i := 0; i < len(b); i++ {
		avail[b[i]]++
	}
	matches := 0
	for i := 0; i < len(a); i++ {
		c := a[i]
		if avail[c] > 0 {
			avail[c]--
			matches++
		}
	}
	return matchRatio(matches, len(a)+len(b))
}

func matchRatio(matches, total int) float64 {
	if total == 0 {
		return 1
	}
	return 2.0 * float64(matches) / float64(total)
}
