// Package config loads portal settings from defaults, an optional config
// file, an optional .env file and TEACHERHUB_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "TEACHERHUB"

// Backends accepted by the backend key.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	Backend     string
	DataPath    string
	ContentFile string
	LogLevel    slog.Level
}

// Load builds the configuration. configFile may be empty; flags may be nil.
// Flags that were set on the command line win over every other source.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetDefault("backend", BackendJSON)
	v.SetDefault("data_path", "")
	v.SetDefault("content_file", "")
	v.SetDefault("log_level", "warn")

	// load .env if it exists (ignore if it does not)
	if wd, err := os.Getwd(); err == nil {
		dotEnvPath := filepath.Join(wd, ".env")
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return nil, fmt.Errorf("config.godotenv(%s): %w", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config.os.Stat(%s): %w", dotEnvPath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"backend":      "backend",
			"data_path":    "data",
			"content_file": "content",
			"log_level":    "log-level",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	c := &Config{
		Backend:     strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		DataPath:    v.GetString("data_path"),
		ContentFile: v.GetString("content_file"),
	}
	switch c.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return nil, fmt.Errorf("unknown backend %q (want json, sqlite or memory)", c.Backend)
	}
	if err := c.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	return c, nil
}
