package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	DBPath   string
	Addr     string
	LogLevel slog.Level
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	getEnv := func(key, defaultValue string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return defaultValue
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(getEnv("FITTRACK_LOG_LEVEL", "info")))); err != nil {
		return nil, fmt.Errorf("invalid FITTRACK_LOG_LEVEL: %w", err)
	}

	return &Config{
		DBPath:   getEnv("FITTRACK_DB", "fittrack.db"),
		Addr:     getEnv("FITTRACK_ADDR", ":8222"),
		LogLevel: level,
	}, nil
}
