package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/baditaflorin/go_fuzzy_compare/internal/core/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("server", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, similarity.QuickRatioMode, cfg.Mode())
}

func TestParseFileAndFlags(t *testing.T) {
	path := writeConfig(t, `
port: 9090
read_timeout: 5s
threshold: 0.8
character_mode: blocks
markup: true
`)

	cfg, err := Parse("server", []string{"-config", path, "-threshold", "0.7"})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, 0.7, cfg.Threshold, "flags override the file")
	assert.True(t, cfg.Markup)
	assert.Equal(t, similarity.MatchingBlocksMode, cfg.Mode())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("server", []string{"-threshold", "1.2"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse("server", []string{"-character-mode", "levenshtein"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse("server", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	_, err = Parse("server", []string{"-config", writeConfig(t, "port: [1, 2]")})
	assert.Error(t, err)

	_, err = Parse("server", []string{"-port", "0"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
