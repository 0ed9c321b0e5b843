package bounds

import (
	"errors"
	"math"
	"testing"

	"github.com/baditaflorin/go_fuzzy_compare/internal/core/domain"
	"github.com/baditaflorin/go_fuzzy_compare/internal/core/similarity"
	"github.com/baditaflorin/go_fuzzy_compare/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesGenerator(t *testing.T) {
	generated, err := Generate(similarity.NewMetric(similarity.QuickRatioMode), DefaultLeftMax, DefaultRightMax)
	require.NoError(t, err)
	assert.Equal(t, generated, Default().Entries())

	viaFunc, err := Generate(ports.ScorerFunc(similarity.Similarity), DefaultLeftMax, DefaultRightMax)
	require.NoError(t, err)
	assert.Equal(t, generated, viaFunc)
}

func TestDefaultShape(t *testing.T) {
	table := Default()
	require.NoError(t, Validate(table.Entries()))
	assert.Equal(t, 677, table.Len())
	assert.Equal(t, domain.Bound{SizeRatio: 1, MaxSimilarity: 1}, table.Entries()[0])
	assert.Equal(t, domain.Bound{SizeRatio: 29, MaxSimilarity: 2.0 / 30.0}, table.Last())

	for _, b := range table.Entries() {
		assert.InDelta(t, 2/(1+b.SizeRatio), b.MaxSimilarity, 1e-12, "ratio %v", b.SizeRatio)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	entries := Default().Entries()
	entries[0].MaxSimilarity = 0
	assert.Equal(t, 1.0, Default().Entries()[0].MaxSimilarity)
}

func TestValidate(t *testing.T) {
	one := domain.Bound{SizeRatio: 1, MaxSimilarity: 1}
	tests := []struct {
		name    string
		entries []domain.Bound
		wantErr bool
	}{
		{"empty", nil, true},
		{"only origin", []domain.Bound{one}, false},
		{"wrong first entry", []domain.Bound{{SizeRatio: 1, MaxSimilarity: 0.9}}, true},
		{"unsorted", []domain.Bound{one, {SizeRatio: 3, MaxSimilarity: 0.5}, {SizeRatio: 2, MaxSimilarity: 0.4}}, true},
		{"duplicate ratio", []domain.Bound{one, {SizeRatio: 2, MaxSimilarity: 0.6}, {SizeRatio: 2, MaxSimilarity: 0.5}}, true},
		{"increasing bound", []domain.Bound{one, {SizeRatio: 2, MaxSimilarity: 0.5}, {SizeRatio: 3, MaxSimilarity: 0.6}}, true},
		{"negative bound", []domain.Bound{one, {SizeRatio: 2, MaxSimilarity: -0.1}}, true},
		{"nan ratio", []domain.Bound{one, {SizeRatio: math.NaN(), MaxSimilarity: 0.5}}, true},
		{"valid", []domain.Bound{one, {SizeRatio: 2, MaxSimilarity: 0.7}, {SizeRatio: 4, MaxSimilarity: 0.7}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.entries)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidTable), "got %v", err)
			_, err = New(tc.entries)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestCap(t *testing.T) {
	table, err := New([]domain.Bound{
		{SizeRatio: 1, MaxSimilarity: 1},
		{SizeRatio: 1.5, MaxSimilarity: 0.8},
		{SizeRatio: 2, MaxSimilarity: 0.6},
	})
	require.NoError(t, err)

	tests := []struct {
		ratio  float64
		want   float64
		wantOK bool
	}{
		{1, 1, true},
		{1.2, 1, true},
		{1.5, 0.8, true},
		{1.99, 0.8, true},
		{2, 0.6, true},
		{2.01, 0.6, false},
	}
	for _, tc := range tests {
		got, ok := table.Cap(tc.ratio)
		assert.Equal(t, tc.want, got, "ratio %v", tc.ratio)
		assert.Equal(t, tc.wantOK, ok, "ratio %v", tc.ratio)
	}
}

func TestGenerateRejectsBadExtents(t *testing.T) {
	_, err := Generate(similarity.NewMetric(similarity.QuickRatioMode), 0, 30)
	assert.Error(t, err)

	entries, err := Generate(similarity.NewMetric(similarity.QuickRatioMode), 1, 30)
	require.NoError(t, err)
	assert.Equal(t, []domain.Bound{{SizeRatio: 1, MaxSimilarity: 1}}, entries)
}
