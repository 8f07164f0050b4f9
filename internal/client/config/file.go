package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Priyanshu7318/SHIELD/internal/flagx"
	"github.com/Priyanshu7318/SHIELD/internal/timex"
	"github.com/goccy/go-yaml"
)

// FileConfig is the on-disk form of Config, shared by the JSON and YAML
// loaders. Pointer fields tell "absent" apart from "empty": only keys present
// in the file override earlier values.
type FileConfig struct {
	ServerURL           *string         `json:"server_url" yaml:"server_url"`
	DatabasePath        *string         `json:"database_path" yaml:"database_path"`
	StatusCheckInterval *timex.Duration `json:"status_check_interval" yaml:"status_check_interval"`
	LogLevel            *string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays Config with values loaded from the file named by -c or
// -config. Files ending in .yaml or .yml are read as YAML, anything else as
// JSON. Read or decode errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.ServerURL != nil {
		cfg.ServerURL = *fc.ServerURL
	}
	if fc.DatabasePath != nil {
		cfg.DatabasePath = *fc.DatabasePath
	}
	if fc.StatusCheckInterval != nil {
		cfg.StatusCheckInterval = fc.StatusCheckInterval.Duration
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
}
