package utils

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

	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, time.Second/60, cfg.TickPeriod)
	assert.Greater(t, cfg.ArenaWidth, cfg.PaddleWidth*2)
	assert.Greater(t, cfg.ArenaHeight, cfg.PaddleHeight)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PONG_SETTINGS_PATH", "/tmp/other.pong")
	t.Setenv("PONG_TICK_HZ", "30")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.pong", cfg.SettingsPath)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, time.Second/30, cfg.TickPeriod)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PONG_SPECTATOR_ADDR=:9999\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PONG_SPECTATOR_ADDR") })

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.SpectatorAddr)
}

func TestLoadConfig_InvalidTickRate(t *testing.T) {
	t.Setenv("PONG_TICK_HZ", "fast")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
