package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval reports a status check interval that is not positive.
var ErrInvalidInterval = errors.New("status check interval must be positive")

// Config holds runtime settings for the SHIELD CLI.
//
// Fields:
//   - ServerURL: base URL of the detection API.
//   - DatabasePath: SQLite file that keeps the credential between runs.
//   - StatusCheckInterval: how often the client checks API reachability.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL           string
	DatabasePath        string
	StatusCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.DatabasePath = "shield.db"
	c.StatusCheckInterval = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given), the environment and command-line flags. Later
// sources take precedence over earlier ones. An invalid result panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the values that cannot be used as given.
func (c *Config) Validate() error {
	if c.StatusCheckInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.StatusCheckInterval)
	}
	return nil
}
