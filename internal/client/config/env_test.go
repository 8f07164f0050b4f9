package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Setenv(EnvServerURL, "https://env.example.com")
	t.Setenv(EnvDatabasePath, "/env/shield.db")
	t.Setenv(EnvLogLevel, "")

	cfg := defaults()
	parseEnv(cfg)

	assert.Equal(t, "https://env.example.com", cfg.ServerURL)
	assert.Equal(t, "/env/shield.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel, "empty variables are ignored")
}
