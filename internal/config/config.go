// Package config loads, validates and saves the ampacity configuration file
// and applies environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ampacity/internal/nec"
	"github.com/rshade/ampacity/internal/units"
	"github.com/rshade/ampacity/internal/vdrop"
)

// SchemaVersion is the configuration schema written by this build.
const SchemaVersion = "1.0.0"

// supportedSchema is the range of schema versions this build reads.
const supportedSchema = ">= 1.0.0, < 2.0.0"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const (
	configFileName   = "config.yaml"
	defaultPrecision = 2
	maxPrecision     = 6
)

// Config is the ampacity configuration.
type Config struct {
	Version  string         `yaml:"version"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`

	configPath string
}

// DefaultsConfig holds the circuit parameters used when a command or circuit
// file leaves them out.
type DefaultsConfig struct {
	SourceVoltage  float64 `yaml:"source_voltage"`
	Phases         int     `yaml:"phases"`
	Sets           int     `yaml:"sets"`
	PowerFactor    float64 `yaml:"power_factor"`
	MaxDropPercent float64 `yaml:"max_drop"`
	Metal          string  `yaml:"metal"`
	Insulation     string  `yaml:"insulation"`
	Conduit        string  `yaml:"conduit"`
	AmbientF       int     `yaml:"ambient_f"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := vdrop.DefaultParams()
	return &Config{
		Version: SchemaVersion,
		Defaults: DefaultsConfig{
			SourceVoltage:  p.SourceVoltage,
			Phases:         p.Phases,
			Sets:           p.Sets,
			PowerFactor:    p.PowerFactor,
			MaxDropPercent: p.MaxDropPercent,
			Metal:          nec.Copper.String(),
			Insulation:     nec.THW.String(),
			Conduit:        nec.PVC.String(),
			AmbientF:       units.NormalAmbientF,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     defaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New returns the effective configuration: defaults, overlaid by the config
// file when one exists, then by .env files and environment variables. Errors
// reading the file are logged and the defaults kept.
func New() *Config {
	cfg := Default()
	if path, err := DefaultConfigPath(); err == nil {
		cfg.configPath = path
	}
	if cfg.configPath != "" {
		if _, err := os.Stat(cfg.configPath); err == nil {
			if mergeErr := ShallowMergeYAML(cfg, cfg.configPath); mergeErr != nil {
				logger().Warn().Err(mergeErr).Str("path", cfg.configPath).Msg("ignoring unreadable config file")
			}
		}
	}
	loadDotEnv()
	cfg.applyEnv()
	return cfg
}

// Load reads the config file at path on top of the defaults. Environment
// overrides are not applied.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigPath returns the path of config.yaml in the config directory.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// ConfigPath returns the file this configuration is saved to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file this configuration is saved to.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return ErrNoConfigPath
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks the schema version and every default.
func (c *Config) Validate() error {
	var errs []error
	if err := checkSchemaVersion(c.Version); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, c.Defaults.validate()...)

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: output.default_format %q", ErrInvalidValue, c.Output.DefaultFormat))
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("%w: output.precision %d not in [0, %d]",
			ErrInvalidValue, c.Output.Precision, maxPrecision))
	}
	return errors.Join(errs...)
}

func checkSchemaVersion(v string) error {
	if v == "" {
		return fmt.Errorf("%w: version is empty", ErrUnsupportedVersion)
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, v, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, ver, supportedSchema)
	}
	return nil
}

func (d DefaultsConfig) validate() []error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...))
	}
	if d.SourceVoltage <= 0 || d.SourceVoltage > vdrop.MaxSourceVoltage {
		bad("defaults.source_voltage %g", d.SourceVoltage)
	}
	if d.Phases != vdrop.SinglePhase && d.Phases != vdrop.ThreePhase {
		bad("defaults.phases %d", d.Phases)
	}
	if d.Sets < vdrop.MinSets || d.Sets > vdrop.MaxSets {
		bad("defaults.sets %d", d.Sets)
	}
	if d.PowerFactor < vdrop.MinPowerFactor || d.PowerFactor > vdrop.MaxPowerFactor {
		bad("defaults.power_factor %g", d.PowerFactor)
	}
	if d.MaxDropPercent <= 0 || d.MaxDropPercent > vdrop.MaxDropLimit {
		bad("defaults.max_drop %g", d.MaxDropPercent)
	}
	if _, ok := nec.ParseMetal(d.Metal); !ok {
		bad("defaults.metal %q", d.Metal)
	}
	if !nec.IsValidInsulationName(d.Insulation) {
		bad("defaults.insulation %q", d.Insulation)
	}
	if _, ok := nec.ParseConduitMaterial(d.Conduit); !ok {
		bad("defaults.conduit %q", d.Conduit)
	}
	return errs
}

// Params returns the default circuit parameters. Current is left at 0.
func (d DefaultsConfig) Params() vdrop.Params {
	return vdrop.Params{
		SourceVoltage:  d.SourceVoltage,
		Phases:         d.Phases,
		Sets:           d.Sets,
		PowerFactor:    d.PowerFactor,
		MaxDropPercent: d.MaxDropPercent,
	}
}
