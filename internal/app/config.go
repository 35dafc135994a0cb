package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Input       string    // input path, "-" for stdin
	LogLevel    string    // debug, info, warn or error
	JSON        bool      // print a JSON summary instead of the bare total
	MetricsFile string    // optional Prometheus textfile path
	LogOutput   io.Writer // optional; defaults to os.Stderr
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Input:    "-",
		LogLevel: "warn",
	}
}

// FromEnv overlays FLATLAND_* environment variables on cfg.
func FromEnv(cfg Config) Config {
	if v := os.Getenv("FLATLAND_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FLATLAND_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
	return cfg
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
