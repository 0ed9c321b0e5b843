package warmup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/baditaflorin/go_fuzzy_compare/internal/adapters/logger"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

type countingCalculator struct {
	calls atomic.Int64
}

func (c *countingCalculator) Compute(ctx context.Context, a, b string) domain.Result {
	c.calls.Add(1)
	return domain.Result{Name: "counting"}
}

func TestWarmUpRunsEveryCalculator(t *testing.T) {
	calc := &countingCalculator{}
	mgr := NewManager(logger.Nop(), WarmupConfig{
		Concurrency:    3,
		Iterations:     10,
		SampleTextSize: 128,
	})
	mgr.RegisterCalculator(calc)

	stats := mgr.WarmUp(context.Background())
	assert.EqualValues(t, 30, stats.Comparisons)
	assert.EqualValues(t, 30, calc.calls.Load())
}

func TestWarmUpStopsOnCancel(t *testing.T) {
	calc := &countingCalculator{}
	mgr := NewManager(logger.Nop(), WarmupConfig{
		Concurrency: 2,
		Iterations:  1000,
		Duration:    time.Nanosecond,
	})
	mgr.RegisterCalculator(calc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stats := mgr.WarmUp(ctx)
	assert.Zero(t, stats.Comparisons)
}

func TestGenerateSampleText(t *testing.T) {
	s := newSamples(256)
	assert.Len(t, s.page, 256)
	assert.NotEqual(t, s.page, s.edited)
	assert.Len(t, s.longBlob, 4*len(s.blob))
}
