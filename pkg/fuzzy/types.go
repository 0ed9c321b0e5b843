package fuzzy

import (
	"github.com/baditaflorin/go_fuzzy_compare/internal/adapters/stream"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/similarity"
	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
	"github.com/baditaflorin/go_fuzzy_compare/internal/warmup"
)

type (
	// Result is the detailed outcome of Compute.
	Result = domain.Result
	// Verdict is the outcome of Decide.
	Verdict = domain.Verdict
	// Bound is one row of a bound table.
	Bound = domain.Bound
	// Path names the decision branch that answered.
	Path = domain.Path
	// Normalizer rewrites a text before comparison.
	Normalizer = ports.Normalizer
	// CharacterMode selects the character fallback of the metric.
	CharacterMode = similarity.CharacterMode
	// WarmUpConfig configures Comparator.WarmUp.
	WarmUpConfig = warmup.WarmupConfig
)

// Character fallbacks.
const (
	QuickRatio     = similarity.QuickRatioMode
	MatchingBlocks = similarity.MatchingBlocksMode
)

// Decision paths.
const (
	PathZeroThreshold = domain.PathZeroThreshold
	PathExactMatch    = domain.PathExactMatch
	PathEmpty         = domain.PathEmpty
	PathIdentical     = domain.PathIdentical
	PathBeyondTable   = domain.PathBeyondTable
	PathTableBound    = domain.PathTableBound
	PathMetric        = domain.PathMetric
)

// ErrBodyTooLarge is returned by ComputeReaders for oversized bodies.
var ErrBodyTooLarge = stream.ErrBodyTooLarge

// DefaultWarmUpConfig returns the default warm-up configuration.
func DefaultWarmUpConfig() WarmUpConfig {
	return warmup.DefaultWarmupConfig()
}

// ParseCharacterMode parses "quick" or "blocks".
func ParseCharacterMode(s string) (CharacterMode, error) {
	return similarity.ParseCharacterMode(s)
}
