// Package decision decides whether two texts are similar enough without
// scoring them whenever their length ratio already settles the answer.
package decision

import (
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/bounds"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/similarity"
	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
)

// Decider answers "is similarity(a, b) >= threshold" using a bound table to
// skip the scorer when possible. It holds no mutable state.
type Decider struct {
	table  *bounds.Table
	scorer ports.Scorer
}

// New returns a Decider. A nil table means bounds.Default() and a nil scorer
// means the default similarity metric.
func New(table *bounds.Table, scorer ports.Scorer) *Decider {
	if table == nil {
		table = bounds.Default()
	}
	if scorer == nil {
		scorer = similarity.NewMetric(similarity.QuickRatioMode)
	}
	return &Decider{table: table, scorer: scorer}
}

// Table returns the bound table in use.
func (d *Decider) Table() *bounds.Table {
	return d.table
}

// Score scores a and b unconditionally.
func (d *Decider) Score(a, b string) float64 {
	return d.scorer.Score(a, b)
}

// IsSimilarEnough reports whether a and b are similar at threshold.
func (d *Decider) IsSimilarEnough(a, b string, threshold float64) bool {
	return d.Decide(a, b, threshold).Similar
}

// Decide runs the bounded decision and reports which path answered.
//
// For every threshold in [0, 1) the answer equals Score(a, b) >= threshold.
// A threshold of exactly 1 means byte equality. Thresholds outside [0, 1]
// are not special-cased: an empty and a non-empty text are never similar,
// and identical texts are only short-circuited up to a threshold of 1.
func (d *Decider) Decide(a, b string, threshold float64) domain.Verdict {
	if len(b) < len(a) {
		a, b = b, a
	}
	v := domain.Verdict{
		ShortLength: len(a),
		LongLength:  len(b),
		UpperBound:  1,
	}

	switch {
	case threshold == 0:
		v.Path = domain.PathZeroThreshold
		v.Similar = true
		return v
	case threshold == 1:
		v.Path = domain.PathExactMatch
		v.Similar = a == b
		if v.Similar {
			v.Score, v.ScoreComputed = 1, true
		}
		return v
	case len(a) == 0:
		v.Path = domain.PathEmpty
		v.Similar = len(b) == 0
		if v.Similar {
			v.Score, v.ScoreComputed = 1, true
		} else {
			v.UpperBound = 0
		}
		return v
	case threshold <= 1 && len(a) == len(b) && a == b:
		v.Path = domain.PathIdentical
		v.Similar = true
		v.Score, v.ScoreComputed = 1, true
		v.SizeRatio = 1
		return v
	}

	v.SizeRatio = float64(len(b)) / float64(len(a))

	// The table caps character level scores only. Token-set scores of two
	// multi-token texts do not depend on their lengths.
	if threshold >= d.table.Last().MaxSimilarity && similarity.InCharacterRegime(a, b) {
		bound, ok := d.table.Cap(v.SizeRatio)
		v.UpperBound = bound
		if !ok {
			v.Path = domain.PathBeyondTable
			return v
		}
		if bound < threshold {
			v.Path = domain.PathTableBound
			return v
		}
	}

	v.Path = domain.PathMetric
	v.Score = d.scorer.Score(a, b)
	v.ScoreComputed = true
	v.Similar = v.Score >= threshold
	return v
}
