// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/jobboard/internal/localstore"
	"github.com/jonathan/jobboard/internal/logger"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "JOBBOARD"

// Default store locations per persistent backend.
const (
	DefaultFilePath   = "jobboard.json"
	DefaultSQLitePath = "jobboard.db"
)

// Config represents the CLI configuration. Values come from an optional
// config file (JSON or YAML), JOBBOARD_* environment variables and defaults,
// in increasing order of precedence: defaults, file, environment.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// StoreConfig selects the local store backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // memory, file or sqlite
	Path    string `mapstructure:"path"`    // ignored for memory
}

// LogConfig controls the logrus logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"` // empty disables the export
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Store: StoreConfig{Backend: localstore.BackendFile, Path: DefaultFilePath},
		Log:   LogConfig{Level: "info", Format: logger.FormatText},
	}
}

// DefaultStorePath returns the default path for a backend, or "" for
// backends that do not persist.
func DefaultStorePath(backend string) string {
	switch backend {
	case localstore.BackendFile:
		return DefaultFilePath
	case localstore.BackendSQLite:
		return DefaultSQLitePath
	default:
		return ""
	}
}

// LoadConfig loads configuration from the file at path (optional) and the
// environment. An empty path reads only the environment and defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if path != "" {
		// Resolve path relative to current directory if not absolute
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = DefaultStorePath(cfg.Store.Backend)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("metrics.textfile", "")
}

// bindEnv registers keys without defaults so Unmarshal sees them.
func bindEnv(v *viper.Viper) error {
	for _, key := range []string{"store.path"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case localstore.BackendMemory:
	case localstore.BackendFile, localstore.BackendSQLite:
		if strings.TrimSpace(c.Store.Path) == "" {
			return fmt.Errorf("config error: 'store.path' is required for the %s backend", c.Store.Backend)
		}
	default:
		return fmt.Errorf("config error: unknown store backend %q (want memory, file or sqlite)", c.Store.Backend)
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("config error: unknown log format %q", c.Log.Format)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. The CLI uses it to lay flag values over the loaded config.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Store.Backend == "" {
		result.Store.Backend = defaults.Store.Backend
	}
	if result.Store.Path == "" {
		result.Store.Path = defaults.Store.Path
		// A backend switch without a path gets that backend's default.
		if c.Store.Backend != "" && c.Store.Backend != defaults.Store.Backend {
			result.Store.Path = DefaultStorePath(result.Store.Backend)
		}
	}
	if result.Log.Level == "" {
		result.Log.Level = defaults.Log.Level
	}
	if result.Log.Format == "" {
		result.Log.Format = defaults.Log.Format
	}
	if result.Metrics.Textfile == "" {
		result.Metrics.Textfile = defaults.Metrics.Textfile
	}

	return result
}
