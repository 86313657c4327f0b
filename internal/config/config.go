// Package config loads layered CLI configuration (flags > environment > config file >
// defaults) for the vntrhmm binary. Grounded on jinterlante1206-AleutianLocal's
// cmd/aleutian/config/loader.go (package-level singleton, default-on-first-run loading),
// adapted here to use viper instead of hand-rolled yaml.Unmarshal so flag/env layering
// comes for free.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved settings for a vntrhmm invocation.
type Config struct {
	// DBPath is the SQLite run-history database path. Env: VNTRHMM_DB.
	DBPath string
	// LogLevel is one of debug, info, warn, error. Env: VNTRHMM_LOG_LEVEL.
	LogLevel string
	// LogFormat is "text" or "json". Env: VNTRHMM_LOG_FORMAT.
	LogFormat string
	// RepeatBandPasses is the default relaxation pass count for the Viterbi repeat band.
	// Env: VNTRHMM_REPEAT_BAND_PASSES.
	RepeatBandPasses int
}

func defaults() map[string]any {
	return map[string]any{
		"db":                 defaultDBPath(),
		"log_level":          "info",
		"log_format":         "text",
		"repeat_band_passes": 2,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vntrhmm.db"
	}
	return filepath.Join(home, ".vntrhmm", "history.db")
}

// Load resolves configuration from, in increasing precedence: built-in defaults, an
// optional config file at configPath (if non-empty and present), VNTRHMM_*
// environment variables, and finally any values already bound onto v by the caller's
// pflag set (e.g. cobra's PersistentFlags via v.BindPFlags).
func Load(v *viper.Viper, configPath string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	for key, val := range defaults() {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix("VNTRHMM")
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("config: read %s: %w", configPath, err)
			}
		}
	}

	cfg := Config{
		DBPath:           v.GetString("db"),
		LogLevel:         v.GetString("log_level"),
		LogFormat:        v.GetString("log_format"),
		RepeatBandPasses: v.GetInt("repeat_band_passes"),
	}
	if cfg.RepeatBandPasses < 1 {
		return Config{}, fmt.Errorf("config: repeat_band_passes must be >= 1, got %d", cfg.RepeatBandPasses)
	}
	return cfg, nil
}
