package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

//nolint:gochecknoglobals // Process-wide configuration singleton.
var (
	globalConfig     *Config
	globalConfigMu   sync.Mutex
	globalConfigInit bool
)

// InitGlobalConfig loads the global configuration once.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if globalConfigInit {
		return
	}
	globalConfig = New()
	globalConfigInit = true
}

// ResetGlobalConfigForTest discards the global configuration.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	globalConfig = nil
	globalConfigInit = false
}

// GetGlobalConfig returns the global configuration, loading it if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	return globalConfig
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// GetOutputPrecision returns the configured number of decimals.
func GetOutputPrecision() int {
	return GetGlobalConfig().Output.Precision
}

// GetConfigDir returns the ampacity configuration directory: $AMPACITY_HOME if
// set, otherwise ~/.ampacity.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ampacity"), nil
}

// EnsureConfigDir creates the configuration directory.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// EnsureLogDir creates the directory of the configured log file, if any.
func EnsureLogDir() error {
	file := GetGlobalConfig().Logging.File
	if file == "" {
		return nil
	}
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", dir, err)
	}
	return nil
}
