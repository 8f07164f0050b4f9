// Package config loads runtime configuration for the SHIELD CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//  3. Environment variables SHIELD_API_URL, SHIELD_DB_PATH, SHIELD_LOG_LEVEL.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the detection API
//	-d string   path of the local SQLite database
//	-i int      status check interval (seconds)
//	-l string   log level
//
// # File format
//
// Files ending in .yaml or .yml are decoded as YAML, everything else as
// JSON. Intervals use timex.Duration, so values can be either strings like
// "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "database_path": "shield.db",
//	  "status_check_interval": "10s",
//	  "log_level": "info"
//	}
//
// Keys missing from the file keep their previous value.
package config
