package config

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rshade/ampacity/internal/logging"
)

// logger is used for problems found while loading configuration, before the
// command logger exists.
func logger() *zerolog.Logger {
	l := log.Logger.With().Str("component", "config").Logger()
	return &l
}

// ToLoggingConfig converts the logging section to a logging.Config. A file
// path switches output to that file; otherwise logs go to stderr.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns the logging section of the global configuration.
// Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
