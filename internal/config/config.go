// Package config loads service settings from the environment and an optional
// config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the service reads.
const EnvPrefix = "CARDPRINT"

// Config holds the service settings.
type Config struct {
	MaxCharsPerCard    int    `mapstructure:"max_chars_per_card" validate:"gt=0"`
	RebalanceThreshold int    `mapstructure:"rebalance_threshold" validate:"gte=0"`
	LogLevel           string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Environment        string `mapstructure:"environment" validate:"required"`
	// RendererPrefix names the downstream renderer Lambdas.
	RendererPrefix string `mapstructure:"renderer_prefix" validate:"required"`
}

// Load reads configuration from CARDPRINT_* environment variables and, when
// present, a cardprint.yaml file in the working directory or
// /etc/cardprint. Environment variables win over the file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("max_chars_per_card", 320)
	v.SetDefault("rebalance_threshold", 60)
	v.SetDefault("log_level", "info")
	v.SetDefault("environment", "dev")
	v.SetDefault("renderer_prefix", "cardprint-renderer")

	v.SetConfigName("cardprint")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/cardprint")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// ENVIRONMENT is set on every deployed function.
	if err := v.BindEnv("environment", EnvPrefix+"_ENVIRONMENT", "ENVIRONMENT"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
