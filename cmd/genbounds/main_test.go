package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMatchesCheckedInTable(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "internal", "core", "bounds", "upper_bounds_gen.go"))
	require.NoError(t, err)

	got, err := render(40, 30, "bounds")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "small_gen.go")
	require.NoError(t, run(3, 3, out, "small"))

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package small")
	assert.Contains(t, string(src), "{SizeRatio: 1, MaxSimilarity: 1},")
	assert.Contains(t, string(src), "{SizeRatio: 2, MaxSimilarity: 0.6666666666666666},")
}

func TestRenderRejectsBadExtents(t *testing.T) {
	_, err := render(0, 30, "bounds")
	assert.Error(t, err)
}
