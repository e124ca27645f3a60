package config

import "time"

// RetentionConfig controls history retention and cleanup behavior.
type RetentionConfig struct {
	// RunRetentionDays is how many days to keep terminal runs before
	// soft-deleting them (setting deleted_at).
	RunRetentionDays int

	// PurgeGraceDays is how long soft-deleted runs linger before the hard
	// delete removes them together with their events and metrics.
	PurgeGraceDays int

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		RunRetentionDays: 90,
		PurgeGraceDays:   30,
		CleanupInterval:  12 * time.Hour,
	}
}

// LoadRetentionConfig reads retention settings from the environment.
func LoadRetentionConfig() RetentionConfig {
	defaults := DefaultRetentionConfig()
	return RetentionConfig{
		RunRetentionDays: envInt("RUN_RETENTION_DAYS", defaults.RunRetentionDays, 1),
		PurgeGraceDays:   envInt("RUN_PURGE_GRACE_DAYS", defaults.PurgeGraceDays, 1),
		CleanupInterval:  time.Duration(envInt("CLEANUP_INTERVAL_MS", int(defaults.CleanupInterval/time.Millisecond), 60_000)) * time.Millisecond,
	}
}
