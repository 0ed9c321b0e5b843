package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample body size for warmup
	SampleTextSize int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency:    runtime.NumCPU(),
		Iterations:     200,
		SampleTextSize: 4096,
		Duration:       5 * time.Second,
		ForceGC:        true,
	}
}

// Stats reports what a warmup run did.
type Stats struct {
	Comparisons int64
	Duration    time.Duration
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	calculators []ports.SimilarityCalculator
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterCalculator adds a calculator to be warmed up
func (wm *Manager) RegisterCalculator(calc ports.SimilarityCalculator) {
	wm.calculators = append(wm.calculators, calc)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) Stats {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.calculators)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	samples := newSamples(wm.config.SampleTextSize)
	var counts []int64
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := wm.run(ctx, samples)
			mu.Lock()
			counts = append(counts, n)
			mu.Unlock()
		}()
	}
	wg.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	stats := Stats{Duration: time.Since(startTime)}
	for _, n := range counts {
		stats.Comparisons += n
	}
	wm.logger.Info("System warmup completed",
		"duration", stats.Duration,
		"comparisons", stats.Comparisons,
	)
	return stats
}

// run cycles through the sample pairs so every decision path gets exercised.
func (wm *Manager) run(ctx context.Context, s samples) int64 {
	pairs := [][2]string{
		{s.page, s.page},
		{s.page, s.edited},
		{s.page, s.unrelated},
		{s.blob, s.longBlob},
		{s.blob, s.blob + "x"},
	}

	var n int64
	for j := 0; j < wm.config.Iterations; j++ {
		select {
		case <-ctx.Done():
			return n
		default:
		}

		for _, normalizer := range wm.normalizers {
			_ = normalizer.Normalize(s.page)
		}
		pair := pairs[j%len(pairs)]
		for _, calculator := range wm.calculators {
			_ = calculator.Compute(ctx, pair[0], pair[1])
			n++
		}
	}
	return n
}

type samples struct {
	page      string
	edited    string
	unrelated string
	blob      string
	longBlob  string
}

func newSamples(size int) samples {
	if size < 16 {
		size = 16
	}
	page := generateSampleText(size)
	return samples{
		page:      page,
		edited:    generateSimilarText(page, 0.1),
		unrelated: generateSimilarText(page, 0.9),
		blob:      strings.Repeat("x", size/2),
		longBlob:  strings.Repeat("x", size*2),
	}
}

// generateSampleText creates sample text of the specified size
func generateSampleText(size int) string {
	words := []string{
		"<html>", "<body>", "<div", "class=\"row\">", "id", "name", "price",
		"select", "from", "where", "order", "by", "</div>", "<span>", "</span>",
		"lorem", "ipsum", "dolor", "sit", "amet", "result", "found", "page",
	}

	var sb strings.Builder
	for i := 0; sb.Len() < size; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(words[i%len(words)])
	}
	return sb.String()[:size]
}

// generateSimilarText replaces the leading diffRatio share of the words.
func generateSimilarText(original string, diffRatio float64) string {
	words := strings.Fields(original)
	changeCount := int(float64(len(words)) * diffRatio)

	replacements := []string{
		"replaced", "modified", "changed", "altered", "updated",
		"different", "unique", "new", "fresh", "novel",
	}

	newWords := make([]string, len(words))
	copy(newWords, words)
	for i := 0; i < changeCount && i < len(newWords); i++ {
		newWords[i] = replacements[i%len(replacements)]
	}
	return strings.Join(newWords, " ")
}
