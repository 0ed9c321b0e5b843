package ports

import (
	"context"

	"github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"
)

// SimilarityCalculator defines the interface for computing similarity between texts.
type SimilarityCalculator interface {
	Compute(ctx context.Context, a, b string) domain.Result
}

// Scorer computes a similarity score in [0, 1] for two texts.
type Scorer interface {
	Score(a, b string) float64
}

// ScorerFunc adapts an ordinary function to the Scorer interface.
type ScorerFunc func(a, b string) float64

// Score calls f(a, b).
func (f ScorerFunc) Score(a, b string) float64 {
	return f(a, b)
}
