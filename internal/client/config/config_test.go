package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"shield"}, args...)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvServerURL, EnvDatabasePath, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.ServerURL)
	assert.Equal(t, "shield.db", c.DatabasePath)
	assert.Equal(t, 10*time.Second, c.StatusCheckInterval)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	setArgs(t)
	clearEnv(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "shield.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server_url: http://file:8000\n"+
			"database_path: /var/lib/shield/file.db\n"+
			"status_check_interval: 30s\n"+
			"log_level: warn\n"), 0o600))

	// file < env < flags
	t.Setenv(EnvServerURL, "http://env:8000")
	t.Setenv(EnvLogLevel, "debug")
	setArgs(t, "-c", path, "-l", "error")

	cfg := LoadConfig()

	want := &Config{
		ServerURL:           "http://env:8000",
		DatabasePath:        "/var/lib/shield/file.db",
		StatusCheckInterval: 30 * time.Second,
		LogLevel:            "error",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_RejectsNonPositiveInterval(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		file     string
		args     []string
		want     string
	}{
		{name: "zero in json file", fileName: "shield.json", file: `{"status_check_interval":"0s"}`, want: "0s"},
		{name: "negative in yaml file", fileName: "shield.yaml", file: "status_check_interval: -5s\n", want: "-5s"},
		{name: "zero flag", args: []string{"-i", "0"}, want: "0s"},
		{name: "negative flag", args: []string{"-i=-3"}, want: "-3s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			args := tt.args
			if tt.file != "" {
				path := filepath.Join(t.TempDir(), tt.fileName)
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o600))
				args = append([]string{"-c", path}, args...)
			}
			setArgs(t, args...)

			assert.PanicsWithError(t, ErrInvalidInterval.Error()+": "+tt.want, func() { LoadConfig() })
		})
	}
}

func TestValidate(t *testing.T) {
	var c Config
	c.LoadDefaults()
	require.NoError(t, c.Validate())

	c.StatusCheckInterval = 0
	require.ErrorIs(t, c.Validate(), ErrInvalidInterval)
}
