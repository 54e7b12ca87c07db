// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-rank/voting"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "QUICKLY_RANK"

// Flag names
const (
	FlagConfig    = "config"
	FlagSaveDir   = "save-dir"
	FlagFormat    = "format"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagJSON      = "json"
)

// Log output formats
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	SaveDir       string `yaml:"saveDir"       envconfig:"SAVE_DIR"`
	DefaultFormat string `yaml:"defaultFormat" envconfig:"FORMAT"`
	LogLevel      string `yaml:"logLevel"      envconfig:"LOG_LEVEL"`
	LogFormat     string `yaml:"logFormat"     envconfig:"LOG_FORMAT"`
	JSON          bool   `yaml:"json"          envconfig:"JSON"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		SaveDir:       ".",
		DefaultFormat: voting.FormatReduced.String(),
		LogLevel:      "warn",
		LogFormat:     LogFormatAuto,
	}
}

// BindFlags registers the configuration flags on fs
func BindFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String(FlagConfig, "", "path to YAML config file")
	flags.String(FlagSaveDir, d.SaveDir, "directory for new round files")
	flags.StringP(FlagFormat, "f", d.DefaultFormat, "voting format (full, reduced, ranked)")
	flags.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	flags.String(FlagLogFormat, d.LogFormat, "log format (auto, text, json)")
	flags.Bool(FlagJSON, false, "print results as JSON")
}

// ParseFlags resolves the configuration. Precedence, lowest first:
// defaults, YAML file, .env file, environment, flags set on the command line.
func ParseFlags(flags *pflag.FlagSet) (Config, error) {
	configFile, _ := flags.GetString(FlagConfig)
	cfg, err := Load(configFile)
	if err != nil {
		return Config{}, err
	}

	if flags.Changed(FlagSaveDir) {
		cfg.SaveDir, _ = flags.GetString(FlagSaveDir)
	}
	if flags.Changed(FlagFormat) {
		cfg.DefaultFormat, _ = flags.GetString(FlagFormat)
	}
	if flags.Changed(FlagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(FlagLogLevel)
	}
	if flags.Changed(FlagLogFormat) {
		cfg.LogFormat, _ = flags.GetString(FlagLogFormat)
	}
	if flags.Changed(FlagJSON) {
		cfg.JSON, _ = flags.GetBool(FlagJSON)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file (or ~/.quickly-rank/config.yaml when none is
// given), then .env and the environment
func Load(configFile string) (Config, error) {
	cfg := Defaults()

	if configFile == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			userPath := filepath.Join(homeDir, ".quickly-rank", "config.yaml")
			if _, err := os.Stat(userPath); err == nil {
				configFile = userPath
			}
		}
	}

	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return Config{}, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	// .env never overrides variables already present in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("error processing environment: %w", err)
	}

	return cfg, nil
}

// Validate checks enumerated settings
func (c Config) Validate() error {
	if !voting.ParseFormat(c.DefaultFormat).Valid() {
		return fmt.Errorf("invalid format %q (must be full, reduced or ranked)", c.DefaultFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.SaveDir == "" {
		return errors.New("save directory cannot be empty")
	}
	return nil
}

// Format returns the configured default voting format
func (c Config) Format() voting.Format {
	return voting.ParseFormat(c.DefaultFormat)
}

type ctxKey string

const configContextKey ctxKey = "quickly-rank.config"

func WithContext(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

// FromContext returns the Config stored by WithContext, or Defaults
func FromContext(ctx context.Context) Config {
	if ctx == nil {
		return Defaults()
	}
	cfg, ok := ctx.Value(configContextKey).(Config)
	if !ok {
		return Defaults()
	}
	return cfg
}
