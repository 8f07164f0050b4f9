package config

import "os"

const (
	EnvServerURL    = "SHIELD_API_URL"
	EnvDatabasePath = "SHIELD_DB_PATH"
	EnvLogLevel     = "SHIELD_LOG_LEVEL"
)

// parseEnv overrides Config with the SHIELD_* variables that are set and
// non-empty.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
