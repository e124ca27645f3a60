// Package config loads runtime configuration from the environment.
// Every knob is optional; values below the stated minimum are clamped
// up with a warning rather than rejected.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds the supervisor and server settings for a process.
type Config struct {
	Port int

	// Run guards.
	RunWallClock time.Duration
	StreamIdle   time.Duration

	// Budgets.
	MaxRunTotalTokens               int
	MaxToolUsesPerRun               int
	MaxToolUsesPerTool              int
	MaxPersistedStreamEventsPerNode int

	AWSRegion  string
	SessionDir string
}

const (
	defaultPort             = 3000
	defaultRunWallClockMs   = 300_000
	minRunWallClockMs       = 10_000
	defaultStreamIdleMs     = 60_000
	minStreamIdleMs         = 5_000
	defaultRunTotalTokens   = 100_000
	minRunTotalTokens       = 1_000
	defaultToolUsesPerRun   = 24
	defaultToolUsesPerTool  = 8
	defaultPersistedPerNode = 120
	defaultAWSRegion        = "us-west-2"
	defaultSessionDir       = "sessions"
)

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Port:                            envInt("PORT", defaultPort, 1),
		RunWallClock:                    time.Duration(envInt("MAX_RUN_WALL_CLOCK_MS", defaultRunWallClockMs, minRunWallClockMs)) * time.Millisecond,
		StreamIdle:                      time.Duration(envInt("MAX_STREAM_IDLE_MS", defaultStreamIdleMs, minStreamIdleMs)) * time.Millisecond,
		MaxRunTotalTokens:               envInt("MAX_RUN_TOTAL_TOKENS", defaultRunTotalTokens, minRunTotalTokens),
		MaxToolUsesPerRun:               envInt("MAX_TOOL_USES_PER_RUN", defaultToolUsesPerRun, 1),
		MaxToolUsesPerTool:              envInt("MAX_TOOL_USES_PER_TOOL", defaultToolUsesPerTool, 1),
		MaxPersistedStreamEventsPerNode: envInt("MAX_PERSISTED_STREAM_EVENTS_PER_NODE", defaultPersistedPerNode, 1),
		AWSRegion:                       envOrDefault("AWS_REGION", defaultAWSRegion),
		SessionDir:                      envOrDefault("SESSION_DIR", defaultSessionDir),
	}
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal, min int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Ignoring non-numeric environment value", "key", key, "value", raw, "default", defaultVal)
		return defaultVal
	}
	if val < min {
		slog.Warn("Environment value below minimum, clamping", "key", key, "value", val, "minimum", min)
		return min
	}
	return val
}
