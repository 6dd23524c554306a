// Package config provides Viper-based configuration for the htmlhelper CLI
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete htmlhelper configuration
type Config struct {
	Limit   LimitConfig   `mapstructure:"limit"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LimitConfig contains defaults for the limit command
type LimitConfig struct {
	Length int    `mapstructure:"length"`
	End    string `mapstructure:"end"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and environment variables.
// A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".htmlhelper")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/htmlhelper")
	}

	// HTMLHELPER_LIMIT_LENGTH, HTMLHELPER_LOGGING_LEVEL, ...
	v.SetEnvPrefix("HTMLHELPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Limit:   LimitConfig{Length: 100, End: "..."},
		Logging: LoggingConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("limit.length", d.Limit.Length)
	v.SetDefault("limit.end", d.Limit.End)
	v.SetDefault("logging.level", d.Logging.Level)
}

func validate(cfg *Config) error {
	if cfg.Limit.Length < 0 {
		return fmt.Errorf("limit.length must not be negative, got %d", cfg.Limit.Length)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q: must be debug, info, warn, or error", cfg.Logging.Level)
	}

	return nil
}
