// Package fuzzy provides a configurable comparator deciding whether two
// response bodies are near duplicates.
package fuzzy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_fuzzy_compare/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_compare/internal/adapters/normalizer"
	"github.com/baditaflorin/go_fuzzy_compare/internal/adapters/stream"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/bounds"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/decision"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/similarity"
	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
	"github.com/baditaflorin/go_fuzzy_compare/internal/warmup"
	"github.com/baditaflorin/l"
	"golang.org/x/sync/errgroup"
)

// DefaultThreshold is the threshold used when none is configured.
const DefaultThreshold = 0.6

// ErrInvalidThreshold is returned for a configured threshold outside [0, 1].
var ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

// Comparator compares texts with a fixed configuration. It is immutable
// after New and safe for concurrent use.
type Comparator struct {
	decider    *decision.Decider
	threshold  float64
	mode       similarity.CharacterMode
	logger     ports.Logger
	normalizer ports.Normalizer
	reader     *stream.BodyReader
	ownsLogger bool
}

// Option defines a functional option for configuring a Comparator.
type Option func(*config)

type config struct {
	Threshold    float64
	Mode         similarity.CharacterMode
	Table        []domain.Bound
	Logger       ports.Logger
	LogConfig    *l.Config
	Normalizer   ports.Normalizer
	MaxBodySize  int64
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithThreshold sets the threshold used by Equal, NotEqual and Compute.
func WithThreshold(th float64) Option {
	return func(cfg *config) {
		cfg.Threshold = th
	}
}

// WithCharacterMode selects the character fallback of the metric.
func WithCharacterMode(mode similarity.CharacterMode) Option {
	return func(cfg *config) {
		cfg.Mode = mode
	}
}

// WithBoundTable replaces the generated bound table. The entries are
// validated by New.
func WithBoundTable(entries []domain.Bound) Option {
	return func(cfg *config) {
		cfg.Table = entries
	}
}

// WithLogger sets a custom logger. The caller keeps ownership: Close does
// not close it. A nil logger discards all output.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithLogConfig makes New create its logger from lc. The Comparator owns
// that logger and closes it on Close.
func WithLogConfig(lc l.Config) Option {
	return func(cfg *config) {
		cfg.Logger = nil
		cfg.LogConfig = &lc
	}
}

// WithNormalizer sets a normalizer applied to both texts before comparing.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithMarkupNormalizer splits markup and punctuation into lower-case words
// before comparing.
func WithMarkupNormalizer() Option {
	return func(cfg *config) {
		cfg.Normalizer = normalizer.Create(normalizer.MarkupType)
	}
}

// WithMaxBodySize caps the bodies read by ComputeReaders. Zero or less
// disables the limit.
func WithMaxBodySize(n int64) Option {
	return func(cfg *config) {
		cfg.MaxBodySize = n
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(wc warmup.WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a Comparator. Without WithLogger a stdout logger is created.
func New(opts ...Option) (*Comparator, error) {
	cfg := &config{
		Threshold:    DefaultThreshold,
		Mode:         similarity.QuickRatioMode,
		MaxBodySize:  stream.DefaultMaxBodySize,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, cfg.Threshold)
	}

	table := bounds.Default()
	if cfg.Table != nil {
		var err error
		table, err = bounds.New(cfg.Table)
		if err != nil {
			return nil, err
		}
	}

	ownsLogger := cfg.Logger == nil
	if ownsLogger {
		lc := logger.DefaultConfig(os.Stdout)
		if cfg.LogConfig != nil {
			lc = *cfg.LogConfig
		}
		var err error
		cfg.Logger, err = logger.NewCustomStdLogger(lc)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewIdentityNormalizer()
	}

	c := &Comparator{
		decider:    decision.New(table, similarity.NewMetric(cfg.Mode)),
		threshold:  cfg.Threshold,
		mode:       cfg.Mode,
		logger:     cfg.Logger,
		normalizer: cfg.Normalizer,
		reader:     stream.NewBodyReader(cfg.Logger, cfg.MaxBodySize),
		ownsLogger: ownsLogger,
	}

	if cfg.WarmUp {
		c.WarmUp(context.Background(), cfg.WarmUpConfig)
	}
	return c, nil
}

// Threshold returns the configured threshold.
func (c *Comparator) Threshold() float64 {
	return c.threshold
}

// Table returns the bound table in use.
func (c *Comparator) Table() *bounds.Table {
	return c.decider.Table()
}

// Similarity scores a and b after normalization.
func (c *Comparator) Similarity(a, b string) float64 {
	return c.decider.Score(c.normalizer.Normalize(a), c.normalizer.Normalize(b))
}

// Decide runs the bounded decision at threshold and reports the path taken.
func (c *Comparator) Decide(a, b string, threshold float64) domain.Verdict {
	return c.decider.Decide(c.normalizer.Normalize(a), c.normalizer.Normalize(b), threshold)
}

// IsSimilarEnough reports whether the similarity of a and b reaches threshold.
func (c *Comparator) IsSimilarEnough(a, b string, threshold float64) bool {
	return c.Decide(a, b, threshold).Similar
}

// Equal reports whether a and b are similar at the configured threshold.
func (c *Comparator) Equal(a, b string) bool {
	return c.IsSimilarEnough(a, b, c.threshold)
}

// NotEqual is the negation of Equal.
func (c *Comparator) NotEqual(a, b string) bool {
	return !c.Equal(a, b)
}

// Compute decides a and b at the configured threshold and returns a
// detailed result. A cancelled context yields a failed result.
func (c *Comparator) Compute(ctx context.Context, a, b string) domain.Result {
	details := make(map[string]interface{})

	select {
	case <-ctx.Done():
		c.logger.Error("Computation cancelled", "error", ctx.Err())
		details["error"] = "computation cancelled"
		return domain.Result{
			Name:      "fuzzy_similarity",
			Threshold: c.threshold,
			Details:   details,
		}
	default:
	}

	v := c.Decide(a, b, c.threshold)

	details["character_mode"] = c.mode.String()
	details["metric_skipped"] = v.Path.MetricSkipped()
	c.logger.Debug("Decided fuzzy similarity",
		"path", v.Path,
		"similar", v.Similar,
		"short_length", v.ShortLength,
		"long_length", v.LongLength,
		"size_ratio", v.SizeRatio,
		"upper_bound", v.UpperBound,
		"threshold", c.threshold,
	)

	return domain.Result{
		Name:          "fuzzy_similarity",
		Score:         v.Score,
		ScoreComputed: v.ScoreComputed,
		Passed:        v.Similar,
		ShortLength:   v.ShortLength,
		LongLength:    v.LongLength,
		SizeRatio:     v.SizeRatio,
		Threshold:     c.threshold,
		UpperBound:    v.UpperBound,
		Path:          v.Path,
		Details:       details,
	}
}

// ComputeReaders reads both bodies concurrently and then behaves like
// Compute. Bodies over the size limit fail with ErrBodyTooLarge.
//
// When one body fails the other read is cancelled. A reader blocked in Read
// is only interrupted if it implements io.Closer, in which case it is
// closed; wrap readers such as os.Stdin accordingly or expect the call to
// wait for them.
func (c *Comparator) ComputeReaders(ctx context.Context, ra, rb io.Reader) (domain.Result, error) {
	var bodies [2]string
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range []io.Reader{ra, rb} {
		g.Go(func() error {
			body, err := c.reader.ReadAll(gctx, r)
			bodies[i] = body
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Result{}, err
	}
	return c.Compute(ctx, bodies[0], bodies[1]), nil
}

// WarmUp exercises the comparator concurrently to prime the runtime.
func (c *Comparator) WarmUp(ctx context.Context, wc warmup.WarmupConfig) warmup.Stats {
	mgr := warmup.NewManager(c.logger, wc)
	mgr.RegisterCalculator(c)
	mgr.RegisterNormalizer(c.normalizer)
	return mgr.WarmUp(ctx)
}

// Close releases the logger if New created it. Loggers passed through
// WithLogger are left open for their owner.
func (c *Comparator) Close() error {
	if !c.ownsLogger {
		return nil
	}
	return c.logger.Close()
}
