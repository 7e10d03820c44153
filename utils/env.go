package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadConfig returns DefaultConfig with environment overrides applied.
// Variables from the given .env files are loaded first; missing files are
// ignored, existing variables are never overwritten.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := DefaultConfig()
	cfg.SettingsPath = GetEnv("PONG_SETTINGS_PATH", cfg.SettingsPath)
	cfg.SpectatorAddr = GetEnv("PONG_SPECTATOR_ADDR", cfg.SpectatorAddr)
	cfg.SSHAddr = GetEnv("PONG_SSH_ADDR", cfg.SSHAddr)
	cfg.SSHHostKey = GetEnv("PONG_SSH_HOST_KEY", cfg.SSHHostKey)
	cfg.LogLevel = GetEnv("PONG_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = GetEnv("PONG_LOG_FILE", cfg.LogFile)

	if raw, ok := os.LookupEnv("PONG_TICK_HZ"); ok {
		hz, err := strconv.Atoi(raw)
		if err != nil || hz <= 0 {
			return Config{}, fmt.Errorf("PONG_TICK_HZ must be a positive integer, got %q", raw)
		}
		cfg.TickRate = hz
		cfg.TickPeriod = time.Second / time.Duration(hz)
	}
	return cfg, nil
}
