package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FITTRACK_DB", "")
	t.Setenv("FITTRACK_ADDR", "")
	t.Setenv("FITTRACK_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fittrack.db", cfg.DBPath)
	assert.Equal(t, ":8222", cfg.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("FITTRACK_DB", "/tmp/w.db")
	t.Setenv("FITTRACK_ADDR", ":9000")
	t.Setenv("FITTRACK_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/w.db", cfg.DBPath)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_BadLevel(t *testing.T) {
	t.Setenv("FITTRACK_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}
