// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/expense-tracker/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration,
// e.g. EXPENSES_STORAGE_FILE or EXPENSES_LOG_LEVEL.
const EnvPrefix = "EXPENSES"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Storage struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"storage" yaml:"storage"`

	CSV struct {
		LegacyEscape bool `mapstructure:"legacy_escape" yaml:"legacy_escape"`
	} `mapstructure:"csv" yaml:"csv"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"report" yaml:"report"`
}

// DefaultSearchPaths lists the directories searched for config.yaml.
func DefaultSearchPaths() []string {
	return []string{"$HOME/.expense-tracker", ".expense-tracker", "."}
}

// NewViper returns a viper instance with defaults, the config file search
// paths and environment variable binding set up. Callers may bind command
// line flags on it before calling Load.
func NewViper(searchPaths ...string) *viper.Viper {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file of v, unmarshals and validates the
// result. A missing config file is not an error; an explicitly set file
// (v.SetConfigFile) that cannot be read is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Storage.File = filepath.Clean(strings.TrimSpace(config.Storage.File))

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("storage.file", "expenses.csv")

	v.SetDefault("csv.legacy_escape", false)

	v.SetDefault("report.format", "text")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	switch strings.ToLower(config.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Storage.File == "" || config.Storage.File == "." {
		return fmt.Errorf("storage.file must not be empty")
	}

	switch strings.ToLower(config.Report.Format) {
	case "text", "csv", "json", "yaml":
	default:
		return fmt.Errorf("invalid report format: %s (must be 'text', 'csv', 'json' or 'yaml')", config.Report.Format)
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from config.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
