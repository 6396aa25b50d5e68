package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 7, cfg.BoardWidth)
	assert.Equal(t, 7, cfg.BoardHeight)
	assert.Equal(t, 150*time.Millisecond, cfg.GameClock)
	assert.Equal(t, 10*time.Millisecond, cfg.TimerMargin)
	assert.Equal(t, "alphabeta", cfg.Method)
	assert.Equal(t, "mobility", cfg.Heuristic)
	assert.True(t, cfg.Iterative)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ISOLATION_SEARCH_METHOD", "minimax")
	t.Setenv("ISOLATION_GAME_CLOCK", "500ms")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "minimax", cfg.Method)
	assert.Equal(t, 500*time.Millisecond, cfg.GameClock)
	// Untouched keys keep defaults.
	assert.Equal(t, 7, cfg.BoardWidth)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isolation.yaml")
	data := []byte("board:\n  width: 9\n  height: 9\nsearch:\n  depth: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.BoardWidth)
	assert.Equal(t, 9, cfg.BoardHeight)
	assert.Equal(t, 5, cfg.SearchDepth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
