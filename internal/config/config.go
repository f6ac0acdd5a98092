// Package config loads csvcat defaults from an optional config file and
// environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the tool's non-query settings. Query expressions always come
// from the command line; these are defaults the flags can override.
type Config struct {
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from csvcat.yaml (current directory or
// $HOME/.config/csvcat) and CSVCAT_* environment variables. A missing
// config file is not an error; defaults apply.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("format", "table")
	v.SetDefault("log_level", "info")

	v.SetConfigName("csvcat")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/csvcat")

	v.SetEnvPrefix("csvcat")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
