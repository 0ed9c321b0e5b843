package domain

// Path names the branch of the bounded decision that produced an answer.
type Path string

const (
	PathZeroThreshold Path = "zero_threshold"
	PathExactMatch    Path = "exact_match"
	PathEmpty         Path = "empty"
	PathIdentical     Path = "identical"
	PathBeyondTable   Path = "beyond_table"
	PathTableBound    Path = "table_bound"
	PathMetric        Path = "metric"
)

// MetricSkipped reports whether the path answered without scoring the pair.
func (p Path) MetricSkipped() bool {
	return p != PathMetric
}

// Bound is one row of the upper bound table: at SizeRatio (longer length
// divided by shorter length) no pair scores above MaxSimilarity.
type Bound struct {
	SizeRatio     float64 `json:"size_ratio"`
	MaxSimilarity float64 `json:"max_similarity"`
}

// Verdict is the outcome of a bounded similarity decision.
type Verdict struct {
	Similar bool
	Path    Path
	// Score is only meaningful when ScoreComputed is true.
	Score         float64
	ScoreComputed bool
	// UpperBound is the best similarity the pair could reach given what the
	// decision learned; 1 when nothing was proven.
	UpperBound  float64
	ShortLength int
	LongLength  int
	SizeRatio   float64
}

// Result holds the outcome of a similarity computation.
type Result struct {
	Name          string
	Score         float64
	ScoreComputed bool
	Passed        bool
	ShortLength   int
	LongLength    int
	SizeRatio     float64
	Threshold     float64
	UpperBound    float64
	Path          Path
	Details       map[string]interface{}
}
