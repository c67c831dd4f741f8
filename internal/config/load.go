package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied before any file or environment source.
const (
	defaultCDNBaseURL = "https://cdn.pulsecoach.app"
	defaultLogLevel   = "info"
)

// Load builds the configuration from defaults, an optional config file, and
// environment variables, in increasing order of precedence. Environment
// variables use the COACHKIT prefix with underscores for nesting
// (COACHKIT_CDN_BASE_URL). Returns a validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("cdn.base_url", defaultCDNBaseURL)
	v.SetDefault("api.base_url", "")
	v.SetDefault("log.level", defaultLogLevel)

	v.SetConfigName("coachkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.coachkit")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has a default or an
		// environment override. Any other read failure is real.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("COACHKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
