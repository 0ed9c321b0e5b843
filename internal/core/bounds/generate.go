package bounds

import (
	"errors"
	"sort"
	"strings"

	"github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
)

// Default generator extents used for the shipped table.
const (
	DefaultLeftMax  = 40
	DefaultRightMax = 30
)

// Generate samples repeated-character pairs to build a bound table. For every
// k in [1, leftMax) and i in [1, rightMax), except k = i = 1, the scorer
// compares "m"*k with "m"*(k+i-1). Results are deduplicated, (1, 1) is
// added, and entries are sorted by ascending size ratio.
func Generate(scorer ports.Scorer, leftMax, rightMax int) ([]domain.Bound, error) {
	if leftMax < 1 || rightMax < 1 {
		return nil, errors.New("leftMax and rightMax must be positive")
	}

	seen := map[domain.Bound]struct{}{
		{SizeRatio: 1, MaxSimilarity: 1}: {},
	}
	for k := 1; k < leftMax; k++ {
		for i := 1; i < rightMax; i++ {
			if k == 1 && i == 1 {
				continue
			}
			short := strings.Repeat("m", k)
			long := short + strings.Repeat("m", i-1)
			seen[domain.Bound{
				SizeRatio:     float64(len(long)) / float64(len(short)),
				MaxSimilarity: scorer.Score(short, long),
			}] = struct{}{}
		}
	}

	entries := make([]domain.Bound, 0, len(seen))
	for b := range seen {
		entries = append(entries, b)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SizeRatio != entries[j].SizeRatio {
			return entries[i].SizeRatio < entries[j].SizeRatio
		}
		return entries[i].MaxSimilarity > entries[j].MaxSimilarity
	})
	return entries, nil
}
