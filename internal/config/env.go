package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by New.
const (
	EnvHome      = "AMPACITY_HOME"
	EnvLogLevel  = "AMPACITY_LOG_LEVEL"
	EnvLogFormat = "AMPACITY_LOG_FORMAT"
	EnvMaxDrop   = "AMPACITY_MAX_DROP"
	EnvOutput    = "AMPACITY_OUTPUT"
)

const dotEnvFile = ".env"

// loadDotEnv loads .env from the working directory and then from the config
// directory. Variables already set in the environment are kept.
func loadDotEnv() {
	paths := []string{dotEnvFile}
	if dir, err := GetConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, dotEnvFile))
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger().Warn().Err(err).Str("path", p).Msg("ignoring unreadable .env file")
		}
	}
}

// applyEnv overrides fields from AMPACITY_* variables. Unparseable values are
// logged and skipped.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvMaxDrop); v != "" {
		pct, err := strconv.ParseFloat(v, 64)
		if err != nil {
			logger().Warn().Err(err).Str(EnvMaxDrop, v).Msg("ignoring invalid maximum drop")
		} else {
			c.Defaults.MaxDropPercent = pct
		}
	}
}
